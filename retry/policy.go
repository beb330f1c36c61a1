// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"context"
	"time"

	"github.com/gogama/taskx/task"
)

// A Policy decides what happens after a failed task attempt within a
// retry sequence: whether the sequence stops or continues, and which
// policy value takes its place for the next round.
//
// Policies are immutable values. A policy never mutates itself or the
// execution; instead, it "evolves" by returning a replacement policy
// inside the Continuation. Because of this, a Policy value may be safely
// reused across any number of concurrent retry sequences.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	// Decide is invoked after a failed task attempt, with the attempt
	// error available in e.Err. It returns Stop to terminate the
	// sequence (the engine then fails with the attempt error) or
	// Continue(next) to proceed with next in this policy's list
	// position.
	//
	// Decide may suspend, for example to sleep between attempts via
	// e.Sleep. The error return is non-nil only when ctx ended such a
	// suspension early; it is never a policy-manufactured failure.
	Decide(ctx context.Context, e *task.Execution) (Continuation, error)
}

// A Continuation is the outcome of a policy decision: either Stop or
// Continue(next).
type Continuation struct {
	next Policy
}

// Stop is the continuation that terminates the retry sequence. The
// sequence fails with the error from the most recent task attempt, never
// with an error manufactured by the stopping policy.
var Stop = Continuation{}

// Continue returns the continuation that proceeds with next as the
// replacement policy for the following round. Continue panics if next is
// nil; use Stop to terminate the sequence.
func Continue(next Policy) Continuation {
	if next == nil {
		panic("taskx/retry: nil next policy")
	}
	return Continuation{next: next}
}

// Retry reports whether the continuation proceeds with another round.
func (c Continuation) Retry() bool {
	return c.next != nil
}

// Next returns the replacement policy carried by the continuation, or
// nil for Stop.
func (c Continuation) Next() Policy {
	return c.next
}

// Never is a policy that stops on the first failure. It is useful if you
// want the other features of the retry engine, such as event handlers
// and attempt timeouts, but do not want retries.
var Never Policy = MaxRetries(0)

// DefaultRetries is the number of retries allowed by DefaultPolicies.
const DefaultRetries = 5

// DefaultPolicies returns the policy list the engine uses when none is
// configured: up to DefaultRetries retries with a jittered exponential
// backoff starting at 50 milliseconds and capped at 1 second.
//
// The bounding policy is listed first so that an exhausted sequence
// fails without sleeping one final time.
func DefaultPolicies() []Policy {
	return []Policy{
		MaxRetries(DefaultRetries),
		ExponentialBackoff(50*time.Millisecond, 1*time.Second),
	}
}
