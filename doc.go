// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package taskx adds configurable, composable retry behavior to fallible
asynchronous tasks.

Wrap a task in a policy list to get a composite task that re-attempts on
failure until it succeeds or a policy stops the sequence:

	t := taskx.With([]retry.Policy{
		retry.MaxDuration(30 * time.Second),
		retry.ExponentialBackoff(50*time.Millisecond, 5*time.Second),
	}, fetch)
	v, err := t.Run(ctx)

Or stage the same thing with the builder, for readable call sites:

	v, err := taskx.Start(fetch).
		MaxDuration(30 * time.Second).
		ExponentialBackoff(50*time.Millisecond, 5*time.Second).
		Run(ctx)

After every failed attempt, each policy in the list is consulted in
order and either stops the sequence or continues with an evolved
replacement policy. If any policy stops, the composite task fails with
the error from the last real attempt; the policies after it in the list
are not consulted for that round. Delay policies
(retry.ConstantInterval, retry.ExponentialBackoff) never stop on their
own, and bounding policies (retry.MaxRetries, retry.MaxDuration) never
delay, so the expected usage pattern combines one of each. See package
retry for the policy protocol and the built-in policies.

Create a Retrier for control beyond the policy list. Its zero value is a
valid configuration:

	r := &taskx.Retrier{
		Policies:      policies,
		TimeoutPolicy: timeout.Adaptive(200*time.Millisecond, time.Second),
		Clock:         clock, // fake it in tests
	}
	v, err := taskx.Do(ctx, r, fetch)

To hook into the fine-grained details of the retry loop, install a
handler into the appropriate handler chain:

	log := log.New(os.Stdout, "", log.LstdFlags)
	handlers := &taskx.HandlerGroup{}
	handlers.PushBack(taskx.AfterAttempt, taskx.HandlerFunc(
		func(_ taskx.Event, e *task.Execution) {
			log.Printf("attempt %d failed after %s: %v", e.Attempt, e.Duration(), e.Err)
		}))
	r := &taskx.Retrier{Handlers: handlers}

The core performs no logging and emits no metrics of its own; handlers
are the seam where the host wires in observability.

Cancellation flows through the context. Abandoning a composite task by
cancelling its context interrupts whichever suspension is pending, the
attempt itself or a policy sleep, and the sequence fails with the
context's error.
*/
package taskx
