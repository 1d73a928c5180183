// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "strconv"

// Dims is a list of vector dimension (component) names.
// It indexes vector components: X is 0 and W is 3.
type Dims int32

const (
	X Dims = iota
	Y
	Z
	W

	// DimsN is the number of dimensions.
	DimsN
)

var dimsNames = [DimsN]string{"X", "Y", "Z", "W"}

func (d Dims) String() string {
	if d >= 0 && d < DimsN {
		return dimsNames[d]
	}
	return "Dims(" + strconv.Itoa(int(d)) + ")"
}
