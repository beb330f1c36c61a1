// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"context"
	"time"

	"github.com/gogama/taskx/transient"
)

// An Execution represents the state of a single retry sequence.
//
// When a composite retry task is run, an Execution is created for it.
// The Execution is updated as the sequence progresses (for example when
// an attempt fails, or when a retry begins) and is visible to retry
// policies, timeout policies, and event handlers.
//
// Policies and event handlers may attach values to an Execution using
// its SetValue method and read them back using the Value method.
// However, they should treat the structure's exported field values as
// immutable and leave them unmodified, as the execution state is vital
// to the correct functioning of the retry loop.
type Execution struct {
	// Start is the start time of the retry sequence. It is assigned a
	// non-zero value once, when the sequence starts, and this value
	// remains constant thereafter. All duration-based retry decisions
	// are made relative to Start.
	Start time.Time

	// End is the end time of the retry sequence. It contains the zero
	// value until the sequence ends, when it is set to the current time.
	End time.Time

	// Attempt is the zero-based number of the current task attempt
	// within the sequence. It is zero on the initial attempt, one on the
	// first retry, and so on.
	Attempt int

	// AttemptTimeouts is the count of the number of times a task attempt
	// timed out during the sequence.
	AttemptTimeouts int

	// Err is the error received from the most recent task attempt. It is
	// nil if the most recent attempt succeeded, if an attempt is
	// underway, or before the sequence starts.
	//
	// While a sequence is in flight, Err may fluctuate between nil and
	// various non-nil values. Once the sequence has Ended, Err will not
	// change.
	Err error

	// Clock supplies the sequence's view of time. Policies read elapsed
	// time and sleep through it, so a fake Clock controls every
	// time-dependent decision in the sequence.
	//
	// If Clock is nil, DefaultClock is used.
	Clock Clock

	// data contains arbitrary user data attached via SetValue.
	data context.Context
}

// Duration returns the elapsed duration of the sequence.
//
// If the sequence has not yet started, the duration is zero. If the
// sequence has Ended, the duration is End minus Start. Otherwise it is
// the clock's current time minus Start, so the return value is
// monotonically increasing over the life of the sequence and becomes
// static when the sequence ends.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return time.Duration(0)
	} else if !e.Ended() {
		return e.clock().Now().Sub(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Started indicates whether the sequence has started. If the return
// value is true, Start is a non-zero time.
func (e *Execution) Started() bool {
	return e.Start != (time.Time{})
}

// Ended indicates whether the sequence has ended. If the return value is
// true, End is a non-zero time and there will be no further changes to
// the execution.
func (e *Execution) Ended() bool {
	return e.End != (time.Time{})
}

// Timeout indicates whether Err currently contains a non-nil value which
// indicates a timeout.
func (e *Execution) Timeout() bool {
	return transient.Categorize(e.Err) == transient.Timeout
}

// Sleep pauses on the execution's clock for duration d or until ctx is
// done, whichever comes first. Policies that delay between attempts
// sleep through this method so that the delay is visible to the
// execution's clock.
func (e *Execution) Sleep(ctx context.Context, d time.Duration) error {
	return e.clock().Sleep(ctx, d)
}

// SetValue attaches an arbitrary data value to the execution.
//
// The key must follow the same rules as the key parameter in
// context.WithValue: it may not be nil; it must be comparable; and it
// should not be of type string or any other built-in type to avoid
// collisions between different handlers putting data into the same
// execution.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}

	e.data = context.WithValue(ctx, key, value)
}

// Value returns the data value associated with this execution for key,
// or nil if there is no value associated with key.
func (e *Execution) Value(key interface{}) interface{} {
	ctx := e.data
	if ctx == nil {
		return nil
	}

	return ctx.Value(key)
}

func (e *Execution) clock() Clock {
	if e.Clock == nil {
		return DefaultClock
	}

	return e.Clock
}
