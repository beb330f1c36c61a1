// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gogama/taskx/task"
	"github.com/stretchr/testify/require"
)

// fakeClock advances only when slept on, so policy decisions can be
// driven without real sleeps.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
	return nil
}

// delays evolves p through rounds consecutive continued decisions and
// returns the sleep recorded for each round.
func delays(t *testing.T, p Policy, rounds int) []time.Duration {
	t.Helper()
	clk := &fakeClock{now: time.Unix(0, 0)}
	e := &task.Execution{Start: clk.Now(), Clock: clk}
	out := make([]time.Duration, 0, rounds)
	for i := 0; i < rounds; i++ {
		before := len(clk.sleeps)
		c, err := p.Decide(context.Background(), e)
		require.NoError(t, err)
		require.True(t, c.Retry())
		require.Len(t, clk.sleeps, before+1)
		out = append(out, clk.sleeps[before])
		p = c.Next()
	}
	return out
}
