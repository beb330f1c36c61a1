// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package task

import (
	"context"
	"time"
)

// A Clock supplies the two time capabilities a retry sequence consumes:
// reading the current time and delaying without blocking other work.
//
// Implementations of Clock must be safe for concurrent use by multiple
// goroutines. Substitute a fake Clock in tests to drive time-dependent
// behavior without real sleeps.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// Sleep pauses the calling goroutine for duration d or until ctx is
	// done, whichever comes first. It returns nil after a full sleep and
	// ctx.Err() if the context ended the sleep early.
	Sleep(ctx context.Context, d time.Duration) error
}

// DefaultClock is the system clock. It reads time.Now and sleeps on a
// timer that is released early when the context is done.
var DefaultClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return ctx.Err()
	}
}
