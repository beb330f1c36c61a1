// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retry provides composable policies that decide whether, and
// after what delay, a failed task attempt is retried.
//
// The interface Policy defines the decision protocol: after every failed
// attempt, each policy in the sequence's list is asked to Decide, and
// answers with Stop or Continue(next), where next is the policy value
// that takes its place for the following round. Built-in policies cover
// the common concerns:
//
//	retry.MaxRetries(5)                       // bound the attempt count
//	retry.MaxDuration(30 * time.Second)       // bound the elapsed time
//	retry.ConstantInterval(time.Second)       // fixed delay between attempts
//	retry.ExponentialBackoff(50*time.Millisecond, 5*time.Second)
//	retry.If(isRetryable)                     // stop on non-retryable errors
//	retry.Transient                           // stop on non-transient errors
//
// Delay policies never stop on their own and bounding policies never
// delay, so a useful list combines at least one of each:
//
//	policies := []retry.Policy{
//		retry.MaxDuration(30 * time.Second),
//		retry.ExponentialBackoff(50*time.Millisecond, 5*time.Second),
//	}
//
// If the built-in functionality is insufficient, implement Policy
// directly: return Continue with an evolved value to carry state from
// round to round, and Stop to end the sequence.
package retry
