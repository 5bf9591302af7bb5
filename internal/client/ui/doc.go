// Package ui holds the display and input abstractions the sync controller
// renders into and reads from.
//
// A Container receives rendered lines; a TextField holds the pending user
// input. Both are plain values owned by whoever constructs the controller,
// and both must only be touched from the event loop goroutine (see package
// loop). In-memory implementations back the tests; TerminalContainer backs
// the interactive client.
package ui
