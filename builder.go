// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package taskx

import (
	"context"
	"time"

	"github.com/gogama/taskx/retry"
	"github.com/gogama/taskx/task"
	"github.com/gogama/taskx/timeout"
)

// A Builder stages a task together with an accumulating policy list and
// retrier configuration, for readable call-site chaining. It carries no
// logic of its own: finalizing the builder with Task or Run is
// semantically identical to calling With or Do with the accumulated
// list.
//
// Each policy method prepends, so the most recently added policy is
// consulted first in every round. The builder starts with an empty
// policy list, which the engine takes literally; add at least one
// bounding policy unless unbounded retry is intended.
//
// A Builder is not safe for concurrent use.
type Builder[T any] struct {
	task    task.Task[T]
	retrier Retrier
}

// Start returns a builder staging t with an empty policy list. Start
// panics if t is nil.
func Start[T any](t task.Task[T]) *Builder[T] {
	if t == nil {
		panic("taskx: nil task")
	}
	return &Builder[T]{
		task:    t,
		retrier: Retrier{Policies: []retry.Policy{}},
	}
}

// Policy prepends p to the staged policy list. Policy panics if p is
// nil.
func (b *Builder[T]) Policy(p retry.Policy) *Builder[T] {
	if p == nil {
		panic("taskx: nil policy")
	}
	b.retrier.Policies = append([]retry.Policy{p}, b.retrier.Policies...)
	return b
}

// MaxRetries prepends retry.MaxRetries(n).
func (b *Builder[T]) MaxRetries(n int) *Builder[T] {
	return b.Policy(retry.MaxRetries(n))
}

// MaxDuration prepends retry.MaxDuration(d).
func (b *Builder[T]) MaxDuration(d time.Duration) *Builder[T] {
	return b.Policy(retry.MaxDuration(d))
}

// ConstantInterval prepends retry.ConstantInterval(d).
func (b *Builder[T]) ConstantInterval(d time.Duration) *Builder[T] {
	return b.Policy(retry.ConstantInterval(d))
}

// ExponentialBackoff prepends retry.ExponentialBackoff(interval, max).
func (b *Builder[T]) ExponentialBackoff(interval, max time.Duration) *Builder[T] {
	return b.Policy(retry.ExponentialBackoff(interval, max))
}

// TimeoutPolicy sets the per-attempt timeout policy on the staged
// retrier.
func (b *Builder[T]) TimeoutPolicy(p timeout.Policy) *Builder[T] {
	b.retrier.TimeoutPolicy = p
	return b
}

// Clock sets the clock on the staged retrier.
func (b *Builder[T]) Clock(c task.Clock) *Builder[T] {
	b.retrier.Clock = c
	return b
}

// Handlers sets the event handler group on the staged retrier.
func (b *Builder[T]) Handlers(g *HandlerGroup) *Builder[T] {
	b.retrier.Handlers = g
	return b
}

// Task finalizes the builder into a composite task. Later changes to the
// builder do not affect the returned task.
func (b *Builder[T]) Task() task.Task[T] {
	r := b.retrier
	r.Policies = append([]retry.Policy(nil), b.retrier.Policies...)
	t := b.task
	return func(ctx context.Context) (T, error) {
		return execute(ctx, &r, t, r.Policies)
	}
}

// Run finalizes the builder and runs one retry sequence.
func (b *Builder[T]) Run(ctx context.Context) (T, error) {
	return b.Task()(ctx)
}
