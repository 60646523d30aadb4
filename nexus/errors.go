package nexus

import "fmt"

// InvalidAPIKeyError is the well-formed error body the API returns when
// the apikey header is missing or wrong.
type InvalidAPIKeyError struct {
	Message string `json:"message"`
}

func (e *InvalidAPIKeyError) Error() string {
	return e.Message
}

// ModNotFoundError is the error body returned when a track request names
// a mod the game does not have.
type ModNotFoundError struct {
	Message string `json:"message"`
}

func (e *ModNotFoundError) Error() string {
	return e.Message
}

// UntrackedOrInvalidError is the error body returned when an untrack
// request names a mod that is not tracked or does not exist.
type UntrackedOrInvalidError struct {
	Message string `json:"message"`
}

func (e *UntrackedOrInvalidError) Error() string {
	return e.Message
}

// DecodeError reports a response body that does not match the JSON shape
// documented for the status code received. This is distinct from a
// well-formed error body, which decodes into one of the typed errors
// above.
type DecodeError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decoding status %d body: %v", e.Endpoint, e.Status, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ContractViolationError reports a status code outside the endpoint's
// documented set. The upstream API changed beneath the client; this is
// not a recoverable runtime condition and must not be retried or
// guessed at.
type ContractViolationError struct {
	Endpoint string
	Status   int
	Body     []byte
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("%s: status %d is outside the documented contract", e.Endpoint, e.Status)
}

// UnobservedStatusError reports a status code that is documented for the
// endpoint but has never been observed in practice, so no decoding for
// it exists. It is surfaced as-is rather than coerced into another
// outcome.
type UnobservedStatusError struct {
	Endpoint string
	Status   int
}

func (e *UnobservedStatusError) Error() string {
	return fmt.Sprintf("%s: status %d is documented but its handling is not implemented", e.Endpoint, e.Status)
}
