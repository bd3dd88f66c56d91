package api

import (
	"airport-distance-service/internal/adapters/airports"
	"airport-distance-service/internal/api/dto"
	"airport-distance-service/internal/domain"
	"airport-distance-service/internal/services"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	resolver := airports.NewStaticResolver(map[string]domain.Coordinates{
		"LHR": {Lat: 51.4706, Lon: -0.461941},
		"JFK": {Lat: 40.6398, Lon: -73.7789},
	}).FailWith("XXX", &domain.AirportNotFoundError{Code: "XXX"})

	svc, err := services.NewDistanceService(resolver)
	if err != nil {
		t.Fatal(err)
	}
	return NewRouter(svc)
}

func TestRouterDistance(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/AirportDistance/lhr/JFK", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get(requestIDHeader) == "" {
		t.Fatal("expected a request id header")
	}

	var res dto.DistanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.From != "LHR" || res.To != "JFK" {
		t.Fatalf("unexpected codes %+v", res)
	}
	// Heathrow to JFK is roughly 5540 km.
	if math.Abs(res.DistanceKm-5540) > 15 {
		t.Fatalf("distance = %.1f", res.DistanceKm)
	}
}

func TestRouterErrorStatuses(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		path   string
		status int
		want   string
	}{
		{"/api/AirportDistance/LHR/XXX", http.StatusNotFound, "XXX"},
		{"/api/AirportDistance/QQQ/JFK", http.StatusBadRequest, "QQQ"},
		{"/api/AirportDistance/LHR", http.StatusNotFound, "route not found"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d; body = %s", rec.Code, tt.status, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Fatalf("body %q does not mention %q", rec.Body.String(), tt.want)
			}
		})
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/AirportDistance/LHR/JFK", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestRouterKeepsIncomingRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, req)

	if got := rec.Header().Get(requestIDHeader); got != "trace-42" {
		t.Fatalf("request id = %q, want trace-42", got)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("unexpected health body %q", rec.Body.String())
	}
}

func TestRouterServesOpenAPI(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/v1/swagger.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var doc map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("openapi document is not valid json: %v", err)
	}
	if doc["openapi"] == nil {
		t.Fatal("missing openapi version field")
	}
}
