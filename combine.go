// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"math"

	"github.com/pkg/errors"
)

// ErrOverflow is returned by LCM when the result does not fit in an int.
//
var ErrOverflow = errors.New("least common multiple overflows int")

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of ns. All values must be positive.
//
func LCM(ns ...int) (int, error) {
	if len(ns) == 0 {
		return 0, errors.New("no value")
	}
	r := 1
	for _, n := range ns {
		if n <= 0 {
			return 0, errors.Errorf("invalid value %d", n)
		}
		a := r / gcd(r, n)
		if a > math.MaxInt/n {
			return 0, errors.WithStack(ErrOverflow)
		}
		r = a * n
	}
	return r, nil
}

// CombinePeriods returns the first press where all feeders emit a high pulse
// together, that is the least common multiple of their periods.
//
func CombinePeriods(ps []Period) (int, error) {
	ns := make([]int, len(ps))
	for i, p := range ps {
		ns[i] = p.Every
	}
	r, err := LCM(ns...)
	return r, errors.Wrap(err, "combine periods")
}
