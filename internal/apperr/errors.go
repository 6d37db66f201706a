// Package apperr defines the error kinds returned by the gateways and the
// HTTP status each kind maps to at the request boundary.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a gateway failure.
type Kind string

const (
	KindInvalidRequest Kind = "invalid_request"
	KindConfiguration  Kind = "configuration_error"
	KindUpstream       Kind = "upstream_error"
	KindDelivery       Kind = "delivery_error"
	KindInternal       Kind = "internal_error"
)

// Error is the single error type surfaced by services. Message is safe to
// show to clients; Err is the underlying cause and is only logged.
type Error struct {
	Kind    Kind
	Message string
	// Status is the upstream HTTP status for KindUpstream, zero otherwise.
	Status  int
	Details any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus returns the response status for the error.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidRequest:
		return http.StatusBadRequest
	case KindUpstream:
		if e.Status >= 400 && e.Status <= 599 {
			return e.Status
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ClientFault reports whether the caller caused the error.
func (e *Error) ClientFault() bool { return e.Kind == KindInvalidRequest }

func InvalidRequest(msg string) *Error {
	return &Error{Kind: KindInvalidRequest, Message: msg}
}

func Configuration(msg string) *Error {
	return &Error{Kind: KindConfiguration, Message: msg}
}

func Upstream(msg string, status int, details any, cause error) *Error {
	return &Error{Kind: KindUpstream, Message: msg, Status: status, Details: details, Err: cause}
}

func Delivery(msg string, cause error) *Error {
	return &Error{Kind: KindDelivery, Message: msg, Err: cause}
}

func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: cause}
}

// From converts any error into an *Error, treating unknown errors as internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
