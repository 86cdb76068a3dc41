// Copyright 2026 The numcrab Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides a minimal N-dimensional array for host environments.
//
// # Overview
//
// An array is built from nested numeric input. The builder:
//   - Infers the shape from the nesting (one dimension per level)
//   - Infers a dtype unless one is given (Int32 for integral data, else Float64)
//   - Packs the values into a little-endian byte buffer
//
// # Basic Usage
//
//	a, err := ndarray.Array([][]float64{{1, 2.5}, {3, 4}})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(a.Dtype())         // dtype('f8')
//	fmt.Println(a.Shape())         // [2, 2]
//	s, _ := a.PrettyPrint()        // "[1, 2.5, 3, 4]"
//
// # Supported Data Types
//
//   - Int8, Int16, Int32 (signed little-endian integers, 1/2/4 bytes)
//   - Float64 (IEEE 754 double, 8 bytes)
//
// Int8 and Int16 are never inferred; request them with NewDtype.
//
// # Host Input
//
// Any host can feed the builder by implementing Value. Array wraps Go slices
// and arrays, and FromJSON accepts a JSON document.
package ndarray
