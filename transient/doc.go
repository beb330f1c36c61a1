// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transient categorizes errors by whether they are transient,
// from the perspective of retrying the task attempt that produced them.
//
// The retry engine uses Categorize to detect attempt timeouts, and the
// built-in policy retry.Transient uses it to stop retry sequences on
// errors that have no prospect of succeeding on retry.
package transient
