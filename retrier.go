// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package taskx

import (
	"context"

	"github.com/gogama/taskx/retry"
	"github.com/gogama/taskx/task"
	"github.com/gogama/taskx/timeout"
)

var emptyHandlers = HandlerGroup{}

// A Retrier drives retry sequences for fallible tasks. Its zero value is
// a valid configuration.
//
// The zero value retrier uses retry.DefaultPolicies() as the policy
// list, timeout.Infinite as the timeout policy, task.DefaultClock as the
// clock, and an empty handler group (no event handlers).
//
// A Retrier holds no per-sequence state, so a single Retrier may drive
// any number of sequences, concurrently or otherwise, and the sequences
// never interact: each owns its own execution state and its own policy
// list lineage.
//
// On each run of a composite task, the Retrier captures the sequence
// start time once, then attempts the target task. A successful attempt
// ends the sequence with the attempt's value. After a failed attempt,
// every policy in the current list is consulted in list order, each
// decision fully resolving (including any sleep) before the next policy
// is consulted. If any policy stops, the policies after it in the list
// are skipped for that round and the sequence fails with the attempt's
// error. If every policy continues, the list is replaced pointwise with
// the policies' successors, order and length preserved, and the task is
// re-attempted. The loop is unbounded unless some policy eventually
// stops, so a policy list without a bounding policy retries a
// persistently failing task forever.
type Retrier struct {
	// Policies is the ordered policy list consulted after each failed
	// attempt.
	//
	// If Policies is nil, retry.DefaultPolicies() is used.
	Policies []retry.Policy
	// TimeoutPolicy specifies how to set timeouts on individual task
	// attempts.
	//
	// If TimeoutPolicy is nil, timeout.Infinite is used.
	TimeoutPolicy timeout.Policy
	// Clock supplies the sequence's view of time: the start timestamp,
	// elapsed-duration reads, and policy sleeps all flow through it.
	//
	// If Clock is nil, task.DefaultClock is used.
	Clock task.Clock
	// Handlers allows custom handler chains to be invoked when
	// designated events occur during a retry sequence.
	//
	// If Handlers is nil, no custom handlers will be run.
	Handlers *HandlerGroup
}

// With applies the policies to t and returns the composite task. Each
// run of the returned task is an independent retry sequence with a fresh
// start time and the originally supplied policy values.
//
// The policy list is taken literally: an empty or nil list means every
// round vacuously continues, so the composite task re-attempts a
// persistently failing t immediately and forever (until the context is
// done). Combine at least one bounding policy (retry.MaxRetries or
// retry.MaxDuration) with any number of delay policies for the expected
// behavior.
func With[T any](policies []retry.Policy, t task.Task[T]) task.Task[T] {
	r := &Retrier{}
	return func(ctx context.Context) (T, error) {
		return execute(ctx, r, t, policies)
	}
}

// Do runs one retry sequence for t under r's configuration and returns
// the final value or error. A nil r behaves like a zero-value Retrier.
func Do[T any](ctx context.Context, r *Retrier, t task.Task[T]) (T, error) {
	if r == nil {
		r = &Retrier{}
	}
	return execute(ctx, r, t, r.policies())
}

// Wrap binds t to r and returns the composite task, so that the
// sequence's configuration can be fixed once and the task run later, any
// number of times. Each run is an independent sequence.
func Wrap[T any](r *Retrier, t task.Task[T]) task.Task[T] {
	if r == nil {
		r = &Retrier{}
	}
	return func(ctx context.Context) (T, error) {
		return execute(ctx, r, t, r.policies())
	}
}

func execute[T any](ctx context.Context, r *Retrier, t task.Task[T], policies []retry.Policy) (T, error) {
	clock := r.clock()
	timeoutPolicy := r.timeoutPolicy()
	handlers := r.handlers()

	// The caller's slice is never written to: each sequence evolves its
	// own copy by pointwise replacement.
	active := make([]retry.Policy, len(policies))
	copy(active, policies)

	e := &task.Execution{Clock: clock}
	handlers.run(BeforeExecutionStart, e)
	e.Start = clock.Now()

	var zero T
	for {
		v, err := attempt(ctx, t, e, timeoutPolicy, handlers)
		if err == nil {
			finish(e, clock, handlers)
			return v, nil
		}

		e.Err = err
		if e.Timeout() {
			e.AttemptTimeouts++
			handlers.run(AfterAttemptTimeout, e)
		}
		handlers.run(AfterAttempt, e)

		if ctxErr := ctx.Err(); ctxErr != nil {
			e.Err = ctxErr
			finish(e, clock, handlers)
			return zero, ctxErr
		}

		for i, p := range active {
			c, decideErr := p.Decide(ctx, e)
			if decideErr != nil {
				// The context ended a policy sleep early. This is the
				// one case where the surfaced error is not the attempt
				// error.
				e.Err = decideErr
				finish(e, clock, handlers)
				return zero, decideErr
			}
			if !c.Retry() {
				handlers.run(AfterStop, e)
				finish(e, clock, handlers)
				return zero, err
			}
			active[i] = c.Next()
		}

		e.Attempt++
	}
}

func attempt[T any](ctx context.Context, t task.Task[T], e *task.Execution, timeoutPolicy timeout.Policy, handlers *HandlerGroup) (T, error) {
	// Consult the timeout policy before clearing Err so it can see
	// whether the previous attempt timed out.
	actx, cancel := context.WithTimeout(ctx, timeoutPolicy.Timeout(e))
	defer cancel()
	e.Err = nil
	handlers.run(BeforeAttempt, e)
	return t(actx)
}

func finish(e *task.Execution, clock task.Clock, handlers *HandlerGroup) {
	e.End = clock.Now()
	handlers.run(AfterExecutionEnd, e)
}

func (r *Retrier) policies() []retry.Policy {
	if r.Policies == nil {
		return retry.DefaultPolicies()
	}

	return r.Policies
}

func (r *Retrier) timeoutPolicy() timeout.Policy {
	if r.TimeoutPolicy == nil {
		return timeout.Infinite
	}

	return r.TimeoutPolicy
}

func (r *Retrier) clock() task.Clock {
	if r.Clock == nil {
		return task.DefaultClock
	}

	return r.Clock
}

func (r *Retrier) handlers() *HandlerGroup {
	if r.Handlers == nil {
		return &emptyHandlers
	}

	return r.Handlers
}
