package fakestore

import "fmt"

// StatusError reports a response whose status code fell outside the 2xx range.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog endpoint returned status %d", e.Code)
}

// DecodeError reports a response body that could not be parsed as a product list.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode catalog response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TransportError reports a network-level failure (DNS, refused connection,
// no connectivity) before any response arrived.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("reach catalog endpoint: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
