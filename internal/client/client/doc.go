// Package client talks to the recordsync backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): list all
//     records and add a new one.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) for
//     GET /api/data and POST /api/add-data. Requests carry an X-Request-ID
//     and go through an OpenTelemetry-instrumented transport.
//
// # Error Handling
//
// Failures are reported as wrapped errors that callers can match with
// errors.Is / errors.As:
//   - ErrUnavailable: the request never got a response (dial, reset, timeout).
//   - *StatusError: the backend answered with a non-2xx status.
//   - ErrDecode: a 2xx body that could not be decoded.
//
// The client does not retry. Each call is one request.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context and honour its cancellation.
package client
