// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"context"
)

// A Task is an asynchronous computation that eventually succeeds with a
// value of type T or fails with an error. Running a Task may block the
// calling goroutine; the context carries cancellation and deadline
// signals into the computation, and a well-behaved Task returns promptly
// with ctx.Err() once the context is done.
//
// A Task may be run any number of times. Each run is independent: a Task
// carries no execution state of its own.
type Task[T any] func(ctx context.Context) (T, error)

// Run executes the task. It is equivalent to calling the task directly.
func (t Task[T]) Run(ctx context.Context) (T, error) {
	return t(ctx)
}

// Succeed returns a task that immediately succeeds with v.
func Succeed[T any](v T) Task[T] {
	return func(_ context.Context) (T, error) {
		return v, nil
	}
}

// Fail returns a task that immediately fails with err. Fail panics if
// err is nil.
func Fail[T any](err error) Task[T] {
	if err == nil {
		panic("taskx/task: nil error")
	}
	return func(_ context.Context) (T, error) {
		var zero T
		return zero, err
	}
}

// Map returns a task that runs t and, on success, transforms its value
// with f. A failure of t passes through unchanged and f is not called.
func Map[T, U any](t Task[T], f func(T) U) Task[U] {
	return func(ctx context.Context) (U, error) {
		v, err := t(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v), nil
	}
}

// Then returns a task that runs t and, on success, runs the dependent
// task produced by f from t's value. A failure of t short-circuits: f is
// not called and the error passes through unchanged.
func Then[T, U any](t Task[T], f func(T) Task[U]) Task[U] {
	return func(ctx context.Context) (U, error) {
		v, err := t(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v)(ctx)
	}
}

// Catch returns a task that runs t and, on failure, substitutes the
// recovery task produced by f from t's error. A success of t passes
// through unchanged and f is not called.
func Catch[T any](t Task[T], f func(error) Task[T]) Task[T] {
	return func(ctx context.Context) (T, error) {
		v, err := t(ctx)
		if err == nil {
			return v, nil
		}
		return f(err)(ctx)
	}
}

// Sequence returns a task that runs the given tasks one at a time, in
// order, and succeeds with their values in the same order. The first
// failure stops the run immediately: later tasks are not started and the
// failing task's error is surfaced unchanged.
func Sequence[T any](tasks []Task[T]) Task[[]T] {
	return func(ctx context.Context) ([]T, error) {
		vs := make([]T, 0, len(tasks))
		for _, t := range tasks {
			v, err := t(ctx)
			if err != nil {
				return nil, err
			}
			vs = append(vs, v)
		}
		return vs, nil
	}
}
