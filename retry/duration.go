// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"context"
	"time"

	"github.com/gogama/taskx/task"
)

// MaxDuration returns a policy which allows retries until duration d has
// elapsed since the sequence started, measured on the execution's clock.
// It stops at the first failure where the elapsed time is at least d,
// regardless of how many attempts have occurred, and otherwise continues
// unchanged. It never suspends or delays by itself.
//
// MaxDuration panics if d is negative.
func MaxDuration(d time.Duration) Policy {
	if d < 0 {
		panic("taskx/retry: d must be non-negative")
	}
	return maxDuration(d)
}

type maxDuration time.Duration

func (p maxDuration) Decide(_ context.Context, e *task.Execution) (Continuation, error) {
	if e.Duration() >= time.Duration(p) {
		return Stop, nil
	}
	return Continue(p), nil
}
