// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package pulsesim

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
)

// Graph construction errors. NewGraph wraps them with the offending module
// name; use errors.Cause to compare.
//
var (
	ErrMissingBroadcaster   = errors.New("no " + Broadcaster + " module")
	ErrDuplicateBroadcaster = errors.New("more than one " + Broadcaster + " module")
	ErrDuplicateModule      = errors.New("duplicate module name")
	ErrBroadcastKind        = errors.New("only " + Broadcaster + " can be a broadcast module")
)

// CycleNotFoundError is returned when a feeder module did not emit enough
// high pulses within the press bound for a period to be measured.
//
type CycleNotFoundError struct {
	Feeder string
	Bound  int
	Hits   []int // presses where the feeder emitted a high pulse
}

func (e *CycleNotFoundError) Error() string {
	return fmt.Sprintf("no cycle found for %s within %d presses (%d occurrences)", e.Feeder, e.Bound, len(e.Hits))
}

// InconsistentPeriodError is returned when the gaps between the high pulses
// of a feeder module are not all equal. The first gap is measured from press
// 0.
//
type InconsistentPeriodError struct {
	Feeder string
	Gaps   []int
}

func (e *InconsistentPeriodError) Error() string {
	return fmt.Sprintf("inconsistent period for %s: gaps %v", e.Feeder, e.Gaps)
}

// PulseLimitError is returned by Press when the circuit did not settle after
// processing Limit pulses.
//
type PulseLimitError struct {
	Press int
	Limit int
}

func (e *PulseLimitError) Error() string {
	return "press " + strconv.Itoa(e.Press) + ": circuit did not settle after " + strconv.Itoa(e.Limit) + " pulses"
}
