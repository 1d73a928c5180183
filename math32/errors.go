// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is matched by every [IndexError] through [errors.Is].
var ErrIndexOutOfRange = errors.New("math32: index out of range")

// IndexError is the panic value for a vector component, matrix row or
// matrix column index that is not in [0, Len). Indexes are never
// clamped or wrapped.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("math32: index %d out of range [0, %d)", e.Index, e.Len)
}

// Is reports whether target is [ErrIndexOutOfRange].
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// checkIndex panics with an [*IndexError] if i is not in [0, n).
func checkIndex(i, n int) {
	if i < 0 || i >= n {
		panic(&IndexError{Index: i, Len: n})
	}
}
