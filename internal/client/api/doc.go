// Package api is the client's single point of outbound communication with
// the advisory backend.
//
// # Overview
//
// The package provides:
//  1. HTTPClient, a REST client bound to a configured base URL. A cookie jar
//     attaches the server session cookie to every request.
//  2. A global 401 interceptor: any call answered with HTTP 401 clears the
//     durable identity cache (via an injected callback) and redirects to the
//     login view unless it is already showing (via an injected Redirector).
//     Both hooks are injectable so tests can assert on them without a real
//     navigation environment.
//  3. Typed wrappers for every endpoint the client consumes: auth, profile,
//     avatar upload, prediction and prediction history.
//
// # Error Handling
//
// Failures normalize into a single human-readable message. Server-provided
// {"message": ...} text wins; otherwise each endpoint substitutes its
// deterministic default. Callers can still match conditions structurally:
// errors.Is(err, ErrUnavailable) for transport failures, errors.Is(err,
// ErrUnauthorized) for 401, errors.As(&ServerError{}) for everything with a
// status code. UserMessage collapses any of these into display text.
//
// All operations accept a context.Context and honor cancellation.
package api
