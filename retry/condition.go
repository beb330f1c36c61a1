// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"context"

	"github.com/gogama/taskx/task"
	"github.com/gogama/taskx/transient"
)

// If returns a policy which continues unchanged while cond reports the
// attempt error as retryable, and stops as soon as cond returns false.
// The sequence still fails with the attempt error itself, never with an
// error derived from the condition. If panics if cond is nil.
//
// Like every policy, If never bounds the sequence on its own: pair it
// with MaxRetries or MaxDuration unless cond is guaranteed to eventually
// return false.
func If(cond func(error) bool) Policy {
	if cond == nil {
		panic("taskx/retry: nil cond")
	}
	return condition(cond)
}

type condition func(error) bool

func (p condition) Decide(_ context.Context, e *task.Execution) (Continuation, error) {
	if p(e.Err) {
		return Continue(p), nil
	}
	return Stop, nil
}

// Transient is a policy that continues only while the attempt error is
// transient according to transient.Categorize. Compose it with bounding
// and delay policies to retry flaky operations while failing fast on
// errors that have no prospect of succeeding on retry.
var Transient = If(transientErr)

func transientErr(err error) bool {
	return transient.Categorize(err) != transient.Not
}
