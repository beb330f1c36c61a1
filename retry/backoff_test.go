// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gogama/taskx/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExponentialBackoff(t *testing.T) {
	t.Run("invalid interval", func(t *testing.T) {
		assert.Panics(t, func() {
			ExponentialBackoff(time.Duration(-1), time.Hour)
		}, "negative interval")
		assert.Panics(t, func() {
			ExponentialBackoff(time.Duration(0), time.Hour)
		}, "zero interval")
	})
	t.Run("invalid max", func(t *testing.T) {
		assert.Panics(t, func() {
			ExponentialBackoff(time.Duration(2), time.Duration(1))
		}, "max less than interval")
	})
	t.Run("first delay equals interval", func(t *testing.T) {
		ds := delays(t, ExponentialBackoff(500*time.Millisecond, 3*time.Second), 1)
		assert.Equal(t, 500*time.Millisecond, ds[0])
	})
	t.Run("delays never exceed max", func(t *testing.T) {
		ds := delays(t, ExponentialBackoff(500*time.Millisecond, 3*time.Second), 30)
		longest := time.Duration(0)
		for i, d := range ds {
			assert.LessOrEqual(t, d, 3*time.Second, "round %d", i)
			assert.Greater(t, d, time.Duration(0), "round %d", i)
			if d > longest {
				longest = d
			}
		}
		// Growth outpaces jitter, so the cap is reached within 30 rounds.
		assert.Equal(t, 3*time.Second, longest)
	})
	t.Run("identical construction yields identical sequences", func(t *testing.T) {
		a := delays(t, ExponentialBackoff(500*time.Millisecond, 3*time.Second), 20)
		b := delays(t, ExponentialBackoff(500*time.Millisecond, 3*time.Second), 20)
		assert.Equal(t, a, b)
	})
	t.Run("cancelled sleep surfaces the context error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		clk := &fakeClock{now: time.Unix(0, 0)}
		e := &task.Execution{Start: clk.Now(), Clock: clk, Err: errors.New("boom")}
		c, err := ExponentialBackoff(time.Second, time.Minute).Decide(ctx, e)
		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, c.Retry())
	})
}

func TestExponentialBackoffSeed(t *testing.T) {
	interval, max := 500*time.Millisecond, 3*time.Second
	t.Run("invalid seed", func(t *testing.T) {
		assert.Panics(t, func() {
			ExponentialBackoffSeed(interval, max, float64(1))
		}, "float64")
		var nilRand *rand.Rand
		assert.Panics(t, func() {
			ExponentialBackoffSeed(interval, max, nilRand)
		}, "nil *rand.Rand")
	})
	t.Run("nil seed matches default", func(t *testing.T) {
		a := delays(t, ExponentialBackoffSeed(interval, max, nil), 20)
		b := delays(t, ExponentialBackoff(interval, max), 20)
		assert.Equal(t, a, b)
	})
	t.Run("same seed, same sequence", func(t *testing.T) {
		seeds := []interface{}{
			int(7),
			int64(7),
			uint64(7),
			time.Unix(0, 7),
		}
		first := delays(t, ExponentialBackoffSeed(interval, max, seeds[0]), 20)
		for i, seed := range seeds[1:] {
			t.Run(fmt.Sprintf("seeds[%d]=%T", i+1, seed), func(t *testing.T) {
				assert.Equal(t, first, delays(t, ExponentialBackoffSeed(interval, max, seed), 20))
			})
		}
	})
	t.Run("different seeds diverge", func(t *testing.T) {
		a := delays(t, ExponentialBackoffSeed(interval, max, 1), 20)
		b := delays(t, ExponentialBackoffSeed(interval, max, 2), 20)
		assert.NotEqual(t, a, b)
	})
	t.Run("generator seeds", func(t *testing.T) {
		a := delays(t, ExponentialBackoffSeed(interval, max, rand.NewPCG(9, 9)), 20)
		b := delays(t, ExponentialBackoffSeed(interval, max, rand.New(rand.NewPCG(9, 9))), 20)
		assert.Equal(t, a, b)
	})
	t.Run("delays stay within the jitter envelope", func(t *testing.T) {
		// Each next interval lies in [0.75*cur, 2.25*cur + 1.5ms] before
		// the cap, so consecutive delays never shrink below three
		// quarters of the previous one.
		ds := delays(t, ExponentialBackoffSeed(interval, max, time.Now()), 30)
		assert.Equal(t, interval, ds[0])
		for i := 1; i < len(ds); i++ {
			lower := time.Duration(float64(ds[i-1])*3/4) - time.Nanosecond
			assert.GreaterOrEqual(t, ds[i], lower, "round %d", i)
			assert.LessOrEqual(t, ds[i], max, "round %d", i)
		}
	})
}
