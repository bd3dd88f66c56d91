package airports

import (
	"airport-distance-service/internal/domain"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"
)

const maxErrorBodyPreview = 300

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

func (r *NinjasResolver) newRequest(ctx context.Context, code string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/airports", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("iata", code)
	req.URL.RawQuery = q.Encode()

	req.Header.Set("X-Api-Key", r.apiKey)
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// do executes req once. Non-2xx responses are drained into an httpStatusError.
func (r *NinjasResolver) do(req *http.Request) (*http.Response, error) {
	resp, err := r.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: compactBodyPreview(string(b)),
		}
	}
	return resp, nil
}

// classify maps an error from do into the domain error taxonomy.
func classify(code string, err error) error {
	var he *httpStatusError
	if errors.As(err, &he) {
		if he.Code == http.StatusNotFound {
			return &domain.AirportNotFoundError{Code: code}
		}
		return &domain.LookupFailedError{Code: code, Status: he.Code, Detail: he.Body}
	}
	return &domain.NetworkError{Code: code, Err: err}
}

func compactBodyPreview(body string) string {
	body = strings.Join(strings.Fields(body), " ")
	if len(body) > maxErrorBodyPreview {
		cut := maxErrorBodyPreview
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		return body[:cut] + "..."
	}
	return body
}
