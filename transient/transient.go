// Copyright 2026 The taskx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"context"
	"errors"
	"syscall"
)

// A Category is the transience category of a particular error, as
// reported by function Categorize.
//
// The category Not means the error is not transient from the perspective
// of completing a task attempt successfully, or in other words that a
// retry after encountering this error is very unlikely to succeed.
//
// All other categories indicate the error is transient, or in other
// words that a retry after encountering this error has some prospect of
// success.
type Category int

const (
	// Not indicates any non-transient error.
	Not Category = iota
	// Timeout indicates the attempt timed out. The resource the task
	// depends on may be going through a temporary period of slowness, or
	// the attempt may succeed given a longer deadline.
	//
	// Function Categorize returns Timeout if the error or any of its
	// wrapped causes has a Timeout() function that reports true.
	Timeout
	// ConnRefused indicates a remote host refused a connection, and
	// corresponds to the POSIX error code ECONNREFUSED.
	//
	// Although connection refusal may be a permanent condition, it is
	// classified as transient because it can happen while the service on
	// the remote host is starting or restarting. In that case the
	// service is temporarily not listening on the specified port, but
	// will be once its startup is complete.
	//
	// Function Categorize returns ConnRefused if the error is not a
	// Timeout, and the error or any of its wrapped causes is equal to
	// syscall.ECONNREFUSED.
	ConnRefused
	// ConnReset indicates a remote host reset a previously active TCP
	// connection, and corresponds to the POSIX error code ECONNRESET.
	//
	// Connection reset is not uncommon if a service comes down while it
	// is still responding to a request, and may also occur when the
	// remote host is a load balancer. A connection reset therefore tends
	// to indicate a high probability of success on retry.
	//
	// Function Categorize returns ConnReset if the error is not a
	// Timeout, and the error or any of its wrapped causes is equal to
	// syscall.ECONNRESET.
	ConnReset
)

// Categorize returns the transience category of the given error. A nil
// error, and an error that gives no indication of being transient, both
// produce the return value Not.
//
// In assessing transience, Categorize looks at wrapped cause errors
// contained within err, not just err itself. Context cancellation is
// never transient: the caller abandoned the work, so a retry cannot
// succeed. Categorize never checks whether an error has a Temporary()
// function that returns true, as the semantics of Temporary() aren't
// entirely clear.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	if errors.Is(err, context.Canceled) {
		return Not
	}

	var hasTimeout hasTimeout
	if errors.As(err, &hasTimeout) && hasTimeout.Timeout() {
		return Timeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		if errno == syscall.ECONNRESET {
			return ConnReset
		} else if errno == syscall.ECONNREFUSED {
			return ConnRefused
		}
	}

	return Not
}

type hasTimeout interface {
	Timeout() bool
}
