// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"context"

	"github.com/gogama/taskx/task"
)

// MaxRetries returns a policy which allows up to n retries, so up to n+1
// total task attempts. The policy counts down by evolving: each
// continued round replaces it with its decrement, and it stops once the
// budget is exhausted. It never suspends and makes no use of the clock.
//
// MaxRetries panics if n is negative.
func MaxRetries(n int) Policy {
	if n < 0 {
		panic("taskx/retry: n must be non-negative")
	}
	return maxRetries(n)
}

type maxRetries int

func (p maxRetries) Decide(_ context.Context, _ *task.Execution) (Continuation, error) {
	if p <= 0 {
		return Stop, nil
	}
	return Continue(p - 1), nil
}
