// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers coordinates the asynchronous operations started by the
// user interface.
//
// Every user action runs on its own goroutine and reports back to the UI
// loop. A [Superseder] hands out tickets in start order. A newer read
// cancels the older in-flight read; mutations cancel nothing. A finished
// operation may replace the display only if no operation started after it
// has replaced the display already.
package workers

import "context"

// Coordinator is the contract the UI depends on.
type Coordinator interface {
	// Begin starts a display-replacing read. The returned context is
	// cancelled as soon as another read begins.
	Begin(parent context.Context) (context.Context, Ticket)
	// Next starts a mutation. Mutations are never cancelled and never
	// cancel a read.
	Next() Ticket
	// Accept reports whether a display produced under t may be shown, and
	// records t as the newest shown when it may.
	Accept(t Ticket) bool
	// Stop cancels the in-flight read, if any.
	Stop()
}
