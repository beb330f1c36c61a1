// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout provides policies for setting timeouts on individual
// task attempts within a retry sequence.
//
// Use Fixed for a constant per-attempt timeout, Adaptive to lengthen the
// timeout after attempts that themselves timed out, and Infinite (the
// engine default) to leave attempt deadlines entirely to the caller's
// context.
package timeout
