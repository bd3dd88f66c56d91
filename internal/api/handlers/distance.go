package handlers

import (
	"airport-distance-service/internal/api/dto"
	"airport-distance-service/internal/domain"
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// DistanceCalculator is the capability the distance endpoint depends on.
type DistanceCalculator interface {
	GetDistance(ctx context.Context, code1, code2 string) (float64, error)
}

type DistanceHandler struct {
	Service DistanceCalculator
}

// Get serves GET /api/AirportDistance/{code1}/{code2}.
func (h *DistanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	code1 := strings.TrimSpace(chi.URLParam(r, "code1"))
	code2 := strings.TrimSpace(chi.URLParam(r, "code2"))
	if code1 == "" || code2 == "" {
		writeError(w, r, http.StatusBadRequest, "both airport codes are required")
		return
	}

	km, err := h.Service.GetDistance(r.Context(), code1, code2)
	if err != nil {
		status, msg := errorResponse(r.Context(), err)
		log.Printf("get distance failed: from=%s to=%s status=%d err=%v", code1, code2, status, err)
		writeError(w, r, status, msg)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DistanceResponse{
		From:       strings.ToUpper(code1),
		To:         strings.ToUpper(code2),
		DistanceKm: km,
	})
}

// errorResponse maps the domain error taxonomy onto HTTP statuses.
func errorResponse(ctx context.Context, err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidAirportCode):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrAirportNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrLookupFailed):
		return http.StatusBadGateway, err.Error()
	case errors.Is(err, domain.ErrNetwork):
		if ctx.Err() != nil {
			return http.StatusServiceUnavailable, "request canceled"
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout, err.Error()
		}
		return http.StatusBadGateway, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
