// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, true, true))
}

func TestSetDefault(t *testing.T) {
	prevLogger, prevLevel := slog.Default(), UserLevel
	t.Cleanup(func() {
		slog.SetDefault(prevLogger)
		UserLevel = prevLevel
	})

	var buf bytes.Buffer
	UserLevel = slog.LevelWarn
	SetDefault(&buf)
	slog.Info("hidden info")
	slog.Warn("shown warn")
	assert.NotContains(t, buf.String(), "hidden info")
	assert.Contains(t, buf.String(), "shown warn")

	// the handler follows later changes to UserLevel
	UserLevel = slog.LevelDebug
	slog.Debug("shown debug")
	assert.Contains(t, buf.String(), "shown debug")
}
