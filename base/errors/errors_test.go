// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"bytes"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLog(t *testing.T) {
	buf := captureLog(t)
	assert.NoError(t, Log(nil))
	assert.Empty(t, buf.String())

	err := New("bad step")
	assert.Equal(t, err, Log(err))
	assert.Contains(t, buf.String(), "bad step")
}

func TestLog1(t *testing.T) {
	buf := captureLog(t)
	assert.Equal(t, 12, Log1(strconv.Atoi("12")))
	assert.Empty(t, buf.String())

	assert.Equal(t, 0, Log1(strconv.Atoi("x")))
	assert.Contains(t, buf.String(), "invalid syntax")
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(New("fail")) })
	assert.Equal(t, 3, Must1(strconv.Atoi("3")))
	assert.Panics(t, func() { Must1(strconv.Atoi("three")) })
}

func TestJoin(t *testing.T) {
	a, b := New("a"), New("b")
	err := Join(a, b)
	assert.True(t, Is(err, a))
	assert.True(t, Is(err, b))

	var ne *strconv.NumError
	_, perr := strconv.Atoi("z")
	assert.True(t, As(perr, &ne))
	assert.Equal(t, "z", ne.Num)
}
