// Package controller keeps a display container in sync with the backend
// record list.
//
// Load reads the full list and renders it, Submit writes the pending input
// and then reloads. Both start their network call with loop.Await and apply
// the result in a continuation on the loop, so the container and the text
// field are only ever touched from the loop goroutine.
//
// Failures are logged and counted, never shown: a failed Load leaves the
// display as it was, a failed Submit keeps the user's input.
package controller
