// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"context"
	"time"

	"github.com/gogama/taskx/task"
)

// ConstantInterval returns a policy which sleeps for duration d after
// every failed attempt and then continues unchanged. It never stops on
// its own, so it must be paired with a bounding policy such as
// MaxRetries or MaxDuration for the sequence to terminate on a
// persistently failing task.
//
// ConstantInterval panics if d is negative.
func ConstantInterval(d time.Duration) Policy {
	if d < 0 {
		panic("taskx/retry: d must be non-negative")
	}
	return constantInterval(d)
}

type constantInterval time.Duration

func (p constantInterval) Decide(ctx context.Context, e *task.Execution) (Continuation, error) {
	if err := e.Sleep(ctx, time.Duration(p)); err != nil {
		return Stop, err
	}
	return Continue(p), nil
}
