package uno

import (
	"fmt"
	"strings"
)

// BadEnumError reports a pool, token, or currency value outside its
// allow-list. It is returned before any request is issued.
type BadEnumError struct {
	Kind  string
	Value string
	Valid []string
}

func (e *BadEnumError) Error() string {
	return fmt.Sprintf("invalid %s %q, valid values: %s", e.Kind, e.Value, strings.Join(e.Valid, ", "))
}

// FetchError reports a transport failure or a non-success HTTP status. Status
// is zero when the request never produced a response.
type FetchError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.Endpoint, e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not valid JSON or lacks an
// expected field.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
