package airports

import (
	"airport-distance-service/internal/domain"
	"airport-distance-service/internal/platform/obs"
	"airport-distance-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.api-ninjas.com/v1"
	DefaultTimeout = 5 * time.Second
)

// NinjasResolver implements AirportResolver against the API Ninjas airports endpoint.
//
// Every call issues exactly one GET; there is no retry and no caching.
// The resolver holds no per-request state and is safe for concurrent use.
type NinjasResolver struct {
	session *http.Client
	apiKey  string
	baseURL string
	timeout time.Duration
}

type Option func(*NinjasResolver)

// WithBaseURL overrides the provider root (e.g. a test server).
func WithBaseURL(baseURL string) Option {
	return func(r *NinjasResolver) {
		r.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the shared HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(r *NinjasResolver) {
		if c != nil {
			r.session = c
		}
	}
}

// WithTimeout bounds each individual lookup. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(r *NinjasResolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

func NewNinjasResolver(apiKey string, opts ...Option) (*NinjasResolver, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("airports api key is empty")
	}

	r := &NinjasResolver{
		session: &http.Client{},
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}

	if _, err := url.Parse(r.baseURL); err != nil {
		return nil, fmt.Errorf("airports base url %q: %w", r.baseURL, err)
	}

	return r, nil
}

// normalize produces the query form of an IATA code.
func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Resolve queries the provider for code and takes the first candidate as authoritative.
func (r *NinjasResolver) Resolve(ctx context.Context, code string) (_ ports.Resolution, err error) {
	norm := normalize(code)
	defer obs.Time(ctx, "airports.Resolve", "code", norm)(&err)

	if norm == "" {
		return ports.Resolution{}, &domain.InvalidAirportCodeError{Codes: []string{code}}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := r.newRequest(ctx, norm)
	if err != nil {
		return ports.Resolution{}, &domain.LookupFailedError{Code: norm, Detail: "build request", Err: err}
	}

	resp, err := r.do(req)
	if err != nil {
		return ports.Resolution{}, classify(norm, err)
	}
	defer resp.Body.Close()

	coords, found, err := decodeFirstCandidate(resp.Body)
	if err != nil {
		// A body cut short by the deadline is a transport failure, not bad data.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ports.Resolution{}, &domain.NetworkError{Code: norm, Err: ctxErr}
		}
		return ports.Resolution{}, &domain.LookupFailedError{Code: norm, Detail: "parse response", Err: err}
	}

	if !found {
		return ports.Resolution{Found: false}, nil
	}

	return ports.Resolution{
		Airport: domain.Airport{Code: norm, Coordinates: coords},
		Found:   true,
	}, nil
}
