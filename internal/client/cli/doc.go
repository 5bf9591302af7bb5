// Package cli provides the interactive recordsync terminal client.
//
// It wires configuration, logging, metrics, tracing, the HTTP backend client
// and the sync controller, then runs a REPL on top of the event loop. Stdin
// is read on its own goroutine; every line is posted to the loop, so the
// display and the input field are only touched there.
//
// On start the client loads and shows the current record list. Commands:
//   - list / l      reload the list
//   - add <text>    submit a record, then reload
//   - show          print the current list again
//   - help, exit    as usual
//
// Any other line is submitted as a record. Failed requests are logged to
// stderr and otherwise ignored; the display keeps its last good state.
package cli
