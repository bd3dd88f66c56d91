package services

import (
	"airport-distance-service/internal/domain"
	"airport-distance-service/internal/platform/obs"
	"airport-distance-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DistanceService resolves two airport codes and computes the great-circle
// distance between them. It keeps no state between calls.
type DistanceService struct {
	resolver ports.AirportResolver
}

func NewDistanceService(resolver ports.AirportResolver) (*DistanceService, error) {
	if resolver == nil {
		return nil, errors.New("distance service: resolver is nil")
	}
	return &DistanceService{resolver: resolver}, nil
}

// GetDistance returns the distance in kilometers between code1 and code2.
//
// Both lookups run concurrently and are joined before any computation. The
// first outright lookup failure cancels the other and is returned unchanged.
// If both lookups succeed but either yields no candidate, an
// InvalidAirportCodeError naming the offending codes is returned.
func (s *DistanceService) GetDistance(ctx context.Context, code1, code2 string) (_ float64, err error) {
	defer obs.Time(ctx, "distance.GetDistance", "from", code1, "to", code2)(&err)

	var blank []string
	for _, c := range []string{code1, code2} {
		if strings.TrimSpace(c) == "" {
			blank = append(blank, c)
		}
	}
	if len(blank) > 0 {
		return 0, &domain.InvalidAirportCodeError{Codes: blank}
	}

	var res1, res2 ports.Resolution

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.resolver.Resolve(gctx, code1)
		if err != nil {
			return fmt.Errorf("resolve %q: %w", code1, err)
		}
		res1 = r
		return nil
	})
	g.Go(func() error {
		r, err := s.resolver.Resolve(gctx, code2)
		if err != nil {
			return fmt.Errorf("resolve %q: %w", code2, err)
		}
		res2 = r
		return nil
	})

	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("get distance: %w", err)
	}

	var missing []string
	if !res1.Found {
		missing = append(missing, code1)
	}
	if !res2.Found {
		missing = append(missing, code2)
	}
	if len(missing) > 0 {
		return 0, &domain.InvalidAirportCodeError{Codes: missing}
	}

	return domain.DistanceKm(res1.Airport.Coordinates, res2.Airport.Coordinates), nil
}
