// Package fakestore provides the HTTP client and wire types for the remote
// product catalog endpoint.
//
// The endpoint is treated as an opaque JSON resource: one GET returns the
// complete catalog as an array of products. The client performs no retries
// and no caching; callers decide when to re-fetch. Failures are surfaced as
// one of three typed errors so the presentation layer can distinguish them:
//
//   - *TransportError: the request never produced a response (DNS failure,
//     refused connection, no connectivity)
//   - *StatusError: the response status fell outside 200-299
//   - *DecodeError: the body could not be parsed as a product array
//
// All three unwrap (where applicable) and are checkable with errors.As.
package fakestore
