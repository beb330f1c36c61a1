// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"time"

	"github.com/gogama/taskx/task"
)

// A Policy defines a timeout policy which may be plugged into the retry
// engine (taskx.Retrier) to direct how to set the timeout for the
// initial task attempt, as well as for any subsequent retries.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	// Timeout returns the timeout to set on the next task attempt
	// within the retry sequence.
	//
	// Parameter e contains the current state of the sequence. The
	// return value is the timeout to set on the next attempt.
	Timeout(e *task.Execution) time.Duration
}

// Infinite is a built-in timeout policy which never times out. It is the
// default when no timeout policy is configured, since a generic task has
// no universally sensible deadline.
var Infinite Policy = Fixed(1<<63 - 1)

// Fixed constructs a timeout policy that uses the same value to set
// every attempt timeout. The return value is a timeout policy that
// always returns the value d.
//
// Use Fixed to create the typical timeout behavior supported by most
// retrying client software.
func Fixed(d time.Duration) Policy {
	return policy([]time.Duration{d})
}

// Adaptive constructs a timeout policy that varies the next timeout
// value if the previous attempt timed out.
//
// Use Adaptive if the operation often exhibits one-off slowness that can
// be cured by quickly timing out and retrying, but you also need to
// protect against bursts of slowness where most attempts during the
// burst are slower than your usual quick timeout.
//
// Parameter usual represents the timeout value the policy will return
// for an initial attempt and for any retry where the immediately
// preceding attempt did not time out.
//
// Parameter after contains timeout values the policy will return if the
// previous attempt timed out. If this was the first timeout of the
// sequence, after[0] is returned; if the second, after[1], and so on.
// If more attempts have timed out within the sequence than after has
// elements, then the last element of after is returned.
//
// Consider the following timeout policy:
//
//	p := timeout.Adaptive(200*time.Millisecond, time.Second, 10*time.Second)
//
// The policy p will use 200 milliseconds as the usual timeout but if the
// preceding attempt timed out and was the first timeout of the sequence,
// it will use 1 second; and for any later timeout, 10 seconds.
func Adaptive(usual time.Duration, after ...time.Duration) Policy {
	p := make([]time.Duration, 1, 1+len(after))
	p[0] = usual
	return policy(append(p, after...))
}

type policy []time.Duration

func (p policy) Timeout(e *task.Execution) time.Duration {
	if !e.Timeout() {
		return p[0]
	}

	i := e.AttemptTimeouts
	if i > len(p)-1 {
		i = len(p) - 1
	}

	return p[i]
}
