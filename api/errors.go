package api

import (
	"errors"
	"fmt"
)

// ErrNoSourceAddresses is returned by SendBalance when no source address is given
var ErrNoSourceAddresses = errors.New("at least one source address is required")

// RPCError is an error reported by the node in the response envelope
type RPCError struct {
	Code    int64
	Message string
	Data    any
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
}

// TransportError means the call did not produce a usable response body:
// the request failed, timed out, or the body was not valid JSON.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// TypeError means a response field is missing or has an unexpected JSON type
type TypeError struct {
	Path string
	Want string
	Got  string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("invalid response: %s: expected %s, got %s", e.Path, e.Want, e.Got)
}

// ConsistencyError is returned when listunspent reports an output belonging to
// an address other than the one queried. The node broke its contract; the
// result must not be used.
type ConsistencyError struct {
	Want string
	Got  string
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("listunspent returned output for address %q while querying %q", e.Got, e.Want)
}
