package greeting

import (
	"context"
	"errors"
	"fmt"
)

// Service errors
var (
	ErrUnavailable       = errors.New("greeting service unavailable")
	ErrUnexpectedStatus  = errors.New("greeting service returned unexpected status")
	ErrMalformedResponse = errors.New("greeting response malformed")
)

// UpstreamErrorKind classifies greeting fetch failures.
type UpstreamErrorKind string

const (
	UpstreamErrorKindUnavailable UpstreamErrorKind = "unavailable"
	UpstreamErrorKindStatus      UpstreamErrorKind = "unexpected_status"
	UpstreamErrorKindMalformed   UpstreamErrorKind = "malformed"
)

// UpstreamError carries the response metadata of a failed fetch.
// Status is zero when no response was received.
type UpstreamError struct {
	Kind   UpstreamErrorKind
	Status int
	Detail string
	cause  error
	err    error
}

func (e *UpstreamError) Error() string {
	if e == nil {
		return "greeting upstream error"
	}
	msg := fmt.Sprintf("greeting upstream error (kind=%s status=%d)", e.Kind, e.Status)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel and the underlying transport or decode
// error, so errors.Is matches ErrUnavailable and context.Canceled alike.
func (e *UpstreamError) Unwrap() []error {
	if e == nil {
		return nil
	}
	errs := make([]error, 0, 2)
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	if e.err != nil {
		errs = append(errs, e.err)
	}
	return errs
}

// Reason is a short human-readable description for display.
func (e *UpstreamError) Reason() string {
	switch e.Kind {
	case UpstreamErrorKindUnavailable:
		return "servicio no disponible"
	case UpstreamErrorKindStatus:
		return fmt.Sprintf("respuesta inesperada (HTTP %d)", e.Status)
	default:
		return "respuesta con formato inválido"
	}
}

// Greeting is the decoded payload of GET /hello.
type Greeting struct {
	Message string
}

// Service fetches the greeting from the backend.
type Service interface {
	Hello(ctx context.Context) (*Greeting, error)
}
