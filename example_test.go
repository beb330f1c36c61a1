// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package taskx_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogama/taskx"
	"github.com/gogama/taskx/retry"
	"github.com/gogama/taskx/task"
)

func ExampleWith() {
	attempts := 0
	flaky := task.Task[string](func(_ context.Context) (string, error) {
		attempts++
		if attempts < 3 {
			return "", errors.New("transient failure")
		}
		return "it worked", nil
	})

	composite := taskx.With([]retry.Policy{retry.MaxRetries(5)}, flaky)
	v, err := composite.Run(context.Background())

	fmt.Println(v, err, attempts)
	// Output: it worked <nil> 3
}

func ExampleDo() {
	r := &taskx.Retrier{
		Policies: []retry.Policy{retry.MaxRetries(2)},
	}
	attempts := 0
	_, err := taskx.Do(context.Background(), r, task.Task[int](func(_ context.Context) (int, error) {
		attempts++
		return 0, errors.New("broken")
	}))

	fmt.Println(err, attempts)
	// Output: broken 3
}

func ExampleStart() {
	attempts := 0
	v, err := taskx.Start(task.Task[int](func(_ context.Context) (int, error) {
		attempts++
		if attempts < 2 {
			return 0, errors.New("not yet")
		}
		return 42, nil
	})).
		MaxRetries(3).
		Run(context.Background())

	fmt.Println(v, err)
	// Output: 42 <nil>
}
