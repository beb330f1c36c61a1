// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package task provides the asynchronous task primitive consumed by the
// taskx retry engine, along with the small set of combinators needed to
// build composite tasks: immediate success and failure (Succeed, Fail),
// value mapping (Map), dependent sequencing (Then), failure recovery
// (Catch), and ordered short-circuiting list execution (Sequence).
//
// The package also defines the Clock abstraction through which all
// time-dependent retry behavior flows, and the Execution type, which
// carries the state of one retry sequence and is shared with retry
// policies, timeout policies, and event handlers.
package task
