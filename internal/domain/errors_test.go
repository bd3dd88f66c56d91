package domain

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestErrorsMatchSentinels(t *testing.T) {
	cause := context.DeadlineExceeded

	tests := []struct {
		name     string
		err      error
		sentinel error
		contains string
	}{
		{"network", &NetworkError{Code: "LHR", Err: cause}, ErrNetwork, `"LHR"`},
		{"not found", &AirportNotFoundError{Code: "ZZZ"}, ErrAirportNotFound, `"ZZZ"`},
		{"lookup failed", &LookupFailedError{Code: "JFK", Status: 503}, ErrLookupFailed, "status=503"},
		{"invalid", &InvalidAirportCodeError{Codes: []string{"AAA", "BBB"}}, ErrInvalidAirportCode, `"AAA", "BBB"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Fatalf("errors.Is(%v, %v) = false", tt.err, tt.sentinel)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Fatalf("error %q does not contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}

func TestNetworkErrorKeepsCause(t *testing.T) {
	err := &NetworkError{Code: "LHR", Err: context.DeadlineExceeded}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected cause to be matchable, got %v", err)
	}
}

func TestLookupFailedErrorKeepsCause(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &LookupFailedError{Code: "JFK", Detail: "decode response", Err: cause}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be matchable, got %v", err)
	}
	if strings.Contains(err.Error(), "status=") {
		t.Fatalf("parse failure should not print a status: %q", err.Error())
	}
}
