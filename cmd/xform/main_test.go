// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cogentcore.org/vkmath/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const translatePipeline = `
name = "move"

[[steps]]
op = "translate"
vector = [1.0, 2.0, 3.0]
`

func writePipeline(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(data), 0666))
	return fn
}

func TestRunCompose(t *testing.T) {
	fn := writePipeline(t, "move.toml", translatePipeline)

	var got, want bytes.Buffer
	require.NoError(t, runCompose(&got, fn, &options{}))
	printMatrix(&want, math32.Matrix4Translation(math32.Vec3(1, 2, 3)))
	assert.Equal(t, want.String(), got.String())

	got.Reset()
	require.NoError(t, runCompose(&got, fn, &options{bits: true}))
	lines := strings.Split(strings.TrimSpace(got.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "3f800000 00000000 00000000 00000000", lines[0])
	assert.Equal(t, "3f800000 40000000 40400000 3f800000", lines[3])
}

func TestRunComposeBounds(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runCompose(&out, "../../xform/testdata/arm.toml", &options{}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[4], "bounds "), lines[4])
}

func TestRootCmd(t *testing.T) {
	fn := writePipeline(t, "move.yaml", "steps:\n  - op: scale\n    vector: [2, 2, 2]\n")

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"compose", "-v", fn})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "(2, 0, 0, 0)")
	assert.Contains(t, errOut.String(), "composing pipeline")

	out.Reset()
	errOut.Reset()
	root = newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"compose", "-q", writePipeline(t, "bad.yaml", "steps:\n  - op: shear\n    vector: [1, 0, 0]\n")})
	assert.Error(t, root.Execute())
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "step 0")

	root = newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs([]string{"compose"})
	assert.Error(t, root.Execute())
}
