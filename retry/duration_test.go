// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gogama/taskx/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxDuration(t *testing.T) {
	t.Run("negative panics", func(t *testing.T) {
		assert.Panics(t, func() { MaxDuration(-1) })
	})
	t.Run("continues unchanged before the deadline", func(t *testing.T) {
		clk := &fakeClock{now: time.Unix(0, 0)}
		e := &task.Execution{Start: clk.Now(), Clock: clk, Err: errors.New("boom")}
		p := MaxDuration(10 * time.Second)
		c, err := p.Decide(context.Background(), e)
		require.NoError(t, err)
		require.True(t, c.Retry())
		assert.Equal(t, p, c.Next())
		assert.Empty(t, clk.sleeps, "MaxDuration must never sleep")
	})
	t.Run("stops once elapsed time reaches d", func(t *testing.T) {
		clk := &fakeClock{now: time.Unix(0, 0)}
		e := &task.Execution{Start: clk.Now(), Clock: clk, Err: errors.New("boom")}
		p := MaxDuration(10 * time.Second)
		require.NoError(t, e.Sleep(context.Background(), 10*time.Second))
		c, err := p.Decide(context.Background(), e)
		require.NoError(t, err)
		assert.False(t, c.Retry(), "elapsed == d stops")
	})
	t.Run("zero stops on the first failure", func(t *testing.T) {
		clk := &fakeClock{now: time.Unix(0, 0)}
		e := &task.Execution{Start: clk.Now(), Clock: clk, Err: errors.New("boom")}
		c, err := MaxDuration(0).Decide(context.Background(), e)
		require.NoError(t, err)
		assert.False(t, c.Retry())
	})
}
