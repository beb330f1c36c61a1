// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package taskx

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Retrier to extend it with custom
// functionality.
type Event int

const (
	// BeforeExecutionStart identifies the event that occurs before the
	// retry sequence starts.
	//
	// When the Retrier fires BeforeExecutionStart, the execution is
	// non-nil but its start time has not yet been captured.
	BeforeExecutionStart Event = iota
	// BeforeAttempt identifies the event that occurs before each
	// individual task attempt during the retry sequence.
	//
	// When the Retrier fires BeforeAttempt, the execution's Attempt
	// field is set to the zero-based number of the attempt that WILL BE
	// made after all BeforeAttempt handlers have finished, and its Err
	// field is nil.
	BeforeAttempt
	// AfterAttemptTimeout identifies the event that occurs after a task
	// attempt failed because of a timeout error.
	//
	// When the Retrier fires AfterAttemptTimeout, the execution's Err
	// field is set to the timeout error, and its attempt timeout
	// counter has been incremented.
	AfterAttemptTimeout
	// AfterAttempt identifies the event that occurs after a task attempt
	// failed, before the policy round that decides the sequence's fate.
	//
	// When the Retrier fires AfterAttempt, the execution's Err field is
	// set to the attempt error. AfterAttempt does not fire for a
	// successful attempt; success ends the sequence directly with
	// AfterExecutionEnd.
	AfterAttempt
	// AfterStop identifies the event that occurs after a policy halts
	// the retry sequence.
	//
	// When the Retrier fires AfterStop, the execution's Err field is set
	// to the attempt error the sequence will fail with. Policies later
	// in the list than the stopping policy were never consulted in the
	// final round.
	AfterStop
	// AfterExecutionEnd identifies the event that occurs after the retry
	// sequence ends, whether in success or failure.
	//
	// When the Retrier fires AfterExecutionEnd, the execution's end time
	// is set and its Err field holds the error the sequence fails with,
	// or nil on success.
	AfterExecutionEnd
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events typed as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecutionStart",
	"BeforeAttempt",
	"AfterAttemptTimeout",
	"AfterAttempt",
	"AfterStop",
	"AfterExecutionEnd",
}

// Events returns a slice containing all events which can occur in a
// retry sequence run by Retrier, in the order in which they would occur.
func Events() []Event {
	return []Event{
		BeforeExecutionStart,
		BeforeAttempt,
		AfterAttemptTimeout,
		AfterAttempt,
		AfterStop,
		AfterExecutionEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
