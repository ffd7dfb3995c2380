// Copyright 2025 The Glyph Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"math"
	"strconv"

	"github.com/glyph-lang/glyph/config"
)

// Num is a numeric scalar. All glyph arithmetic is done in float64; there
// is no separate integer representation, so results keep the full
// precision of the type and integers up to 2^53 are exact.
type Num float64

func (n Num) String() string {
	return n.Sprint(debugConf)
}

func (n Num) Sprint(conf *config.Config) string {
	if format := conf.Format(); format != "" {
		return fmt.Sprintf(format, float64(n))
	}
	f := float64(n)
	if f == 0 {
		// Fold negative zero; it only confuses.
		return "0"
	}
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func (n Num) Rank() int {
	return 0
}

// ParseNum converts the text of a number literal. The scanner has already
// vetted the syntax loosely; strconv does the precise check.
func ParseNum(text string) (Num, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("bad number syntax: %s", text)
	}
	return Num(f), nil
}

// asIndex converts a scalar to a non-negative integer, for shapes and
// counts. The op name seasons the error message.
func asIndex(v Value, op string) int {
	n, ok := v.(Num)
	if !ok {
		Errorf(Type, "%s: non-numeric count %s", op, v)
	}
	f := float64(n)
	if f != math.Trunc(f) || f < 0 || f > 1e9 {
		Errorf(Domain, "%s: bad count %s", op, n)
	}
	return int(f)
}
