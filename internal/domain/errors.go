package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNetwork is matched by failures to reach the lookup provider.
	ErrNetwork = errors.New("airport lookup unreachable")

	// ErrAirportNotFound is matched when the provider reports the code as unknown.
	ErrAirportNotFound = errors.New("airport not found")

	// ErrLookupFailed is matched by unexpected provider statuses and unreadable responses.
	ErrLookupFailed = errors.New("airport lookup failed")

	// ErrInvalidAirportCode is matched when a lookup yields no usable coordinates.
	ErrInvalidAirportCode = errors.New("invalid airport code")
)

// NetworkError reports a transport-level failure (including a lookup timeout)
// while resolving Code.
type NetworkError struct {
	Code string
	Err  error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%v for %q: %v", ErrNetwork, e.Code, e.Err)
}

func (e *NetworkError) Unwrap() []error { return []error{ErrNetwork, e.Err} }

// AirportNotFoundError reports that the provider explicitly answered "not found".
type AirportNotFoundError struct {
	Code string
}

func (e *AirportNotFoundError) Error() string {
	return fmt.Sprintf("%v for IATA code %q", ErrAirportNotFound, e.Code)
}

func (e *AirportNotFoundError) Unwrap() error { return ErrAirportNotFound }

// LookupFailedError reports a non-success status other than 404, or a
// response body that could not be interpreted. Status is 0 for parse errors.
type LookupFailedError struct {
	Code   string
	Status int
	Detail string
	Err    error
}

func (e *LookupFailedError) Error() string {
	parts := []string{fmt.Sprintf("%v for IATA code %q", ErrLookupFailed, e.Code)}
	if e.Status > 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.Status))
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}
	if e.Err != nil {
		parts = append(parts, fmt.Sprintf("cause=%v", e.Err))
	}
	return strings.Join(parts, "; ")
}

func (e *LookupFailedError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrLookupFailed}
	}
	return []error{ErrLookupFailed, e.Err}
}

// InvalidAirportCodeError names every code for which no coordinates could be
// produced although the provider answered successfully.
type InvalidAirportCodeError struct {
	Codes []string
}

func (e *InvalidAirportCodeError) Error() string {
	quoted := make([]string, 0, len(e.Codes))
	for _, c := range e.Codes {
		quoted = append(quoted, fmt.Sprintf("%q", c))
	}
	return fmt.Sprintf("%v: %s", ErrInvalidAirportCode, strings.Join(quoted, ", "))
}

func (e *InvalidAirportCodeError) Unwrap() error { return ErrInvalidAirportCode }
