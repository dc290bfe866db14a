// This file contains a cut-down version of math.Mod that only handles the
// values U2XFromFloat64 feeds it.
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"math"
)

// modpos returns x mod y for x >= 0 and y > 0, both finite. It skips the
// special-case handling of math.Mod, and is exact in the same way.
func modpos(x, y float64) float64 {
	yfr, yexp := math.Frexp(y)

	r := x
	for r >= y {
		rfr, rexp := math.Frexp(r)
		if rfr < yfr {
			rexp--
		}
		r -= math.Ldexp(y, rexp-yexp)
	}
	return r
}
