// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gogama/taskx/task"
)

const (
	// backoffRandomization sets the width of the jitter window around
	// the current interval: the window spans [interval*(1-r), interval*(1+r)]
	// with r = 0.5.
	backoffRandomization = 0.5
	// backoffGrowth is the multiplier applied to the jittered window
	// value to produce the next interval.
	backoffGrowth = 1.5
)

// defaultSeed seeds the jitter generator when ExponentialBackoff is
// constructed without an explicit seed, making delay sequences
// reproducible across identical constructions.
const defaultSeed uint64 = 0x9e3779b97f4a7c15

// ExponentialBackoff returns a policy which sleeps for its current base
// interval after every failed attempt and then continues with a grown,
// jittered interval, capped at max. It is equivalent to
// ExponentialBackoffSeed(interval, max, nil).
//
// The jitter generator is seeded with a fixed constant at construction,
// so two policies constructed with identical parameters produce
// identical delay sequences. Use ExponentialBackoffSeed to supply
// entropy instead.
func ExponentialBackoff(interval, max time.Duration) Policy {
	return ExponentialBackoffSeed(interval, max, nil)
}

// ExponentialBackoffSeed returns an exponential backoff policy whose
// jitter generator is seeded from seed.
//
// Parameters interval and max control the delay range. The first sleep
// lasts exactly interval; after each round the base interval is
// multiplied by 1.5 and randomized within a half-width window around it,
// then capped at max. The jittered value computed in a round only
// affects the next round's sleep, never the current one. The policy
// never stops on its own, so it must be paired with a bounding policy
// such as MaxRetries or MaxDuration.
//
// Interval and max must be positive, and max must be at least equal to
// interval, or ExponentialBackoffSeed panics.
//
// Seed may be nil, to use the fixed default seed (fully deterministic
// delay sequences); an int, int64, uint64, or time.Time, to seed a new
// generator (pass time.Now() for per-construction entropy); a
// rand.Source; or a *rand.Rand to use directly. Any other type panics.
func ExponentialBackoffSeed(interval, max time.Duration, seed interface{}) Policy {
	if interval < 1 {
		panic("taskx/retry: interval must be positive")
	}
	if max < interval {
		panic("taskx/retry: max must be at least interval")
	}
	return &expBackoff{
		interval: durationToMillis(interval),
		max:      durationToMillis(max),
		rng:      seedToRand(seed),
		mu:       new(sync.Mutex),
	}
}

type expBackoff struct {
	interval float64 // current base interval, milliseconds
	max      float64 // interval ceiling, milliseconds
	rng      *rand.Rand
	mu       *sync.Mutex
}

func (p *expBackoff) Decide(ctx context.Context, e *task.Execution) (Continuation, error) {
	p.mu.Lock()
	r := p.rng.Float64()
	p.mu.Unlock()

	minWindow := p.interval * backoffRandomization
	maxWindow := p.interval * backoffGrowth
	candidate := backoffGrowth * (minWindow + r*(maxWindow-minWindow+1))

	// Sleep for the pre-update interval; the jittered candidate only
	// applies from the next round.
	if err := e.Sleep(ctx, millisToDuration(p.interval)); err != nil {
		return Stop, err
	}

	return Continue(&expBackoff{
		interval: math.Min(candidate, p.max),
		max:      p.max,
		rng:      p.rng,
		mu:       p.mu,
	}), nil
}

func seedToRand(seed interface{}) *rand.Rand {
	var n uint64
	switch s := seed.(type) {
	case nil:
		n = defaultSeed
	case int:
		n = uint64(s)
	case int64:
		n = uint64(s)
	case uint64:
		n = s
	case time.Time:
		n = uint64(s.UnixNano())
	case *rand.Rand:
		if s == nil {
			panic("taskx/retry: seed may not be a typed nil")
		}
		return s
	case rand.Source:
		if s == nil {
			panic("taskx/retry: seed may not be a typed nil")
		}
		return rand.New(s)
	default:
		panic("taskx/retry: invalid seed type")
	}
	return rand.New(rand.NewPCG(n, n))
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func millisToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
