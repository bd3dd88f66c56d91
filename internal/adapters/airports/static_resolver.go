package airports

import (
	"airport-distance-service/internal/domain"
	"airport-distance-service/internal/ports"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"
)

// StaticResolver serves coordinates from memory. Unknown codes resolve to
// Found=false, matching a provider that returned an empty candidate list.
type StaticResolver struct {
	m     map[string]domain.Coordinates
	fail  map[string]error
	calls atomic.Int64
}

func NewStaticResolver(airports map[string]domain.Coordinates) *StaticResolver {
	m := make(map[string]domain.Coordinates, len(airports))
	for code, c := range airports {
		m[normalize(code)] = c
	}
	return &StaticResolver{m: m, fail: map[string]error{}}
}

// FailWith makes every lookup of code return err.
// It must be called before the resolver is shared between goroutines.
func (s *StaticResolver) FailWith(code string, err error) *StaticResolver {
	s.fail[normalize(code)] = err
	return s
}

// Calls reports how many lookups have been served.
func (s *StaticResolver) Calls() int { return int(s.calls.Load()) }

func (s *StaticResolver) Resolve(ctx context.Context, code string) (ports.Resolution, error) {
	s.calls.Add(1)

	norm := normalize(code)
	if err := ctx.Err(); err != nil {
		return ports.Resolution{}, &domain.NetworkError{Code: norm, Err: err}
	}

	if err, ok := s.fail[norm]; ok {
		return ports.Resolution{}, err
	}

	c, ok := s.m[norm]
	if !ok {
		return ports.Resolution{Found: false}, nil
	}

	return ports.Resolution{
		Airport: domain.Airport{Code: norm, Coordinates: c},
		Found:   true,
	}, nil
}

type fixtureAirport struct {
	Latitude  coordinate `json:"latitude"`
	Longitude coordinate `json:"longitude"`
}

// LoadStaticResolver reads a JSON object of the form
// {"LHR": {"latitude": 51.47, "longitude": -0.46}, ...}.
func LoadStaticResolver(path string) (*StaticResolver, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load airport fixture: read %q: %w", path, err)
	}

	var data map[string]fixtureAirport
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load airport fixture: parse json: %w", err)
	}

	airports := make(map[string]domain.Coordinates, len(data))
	for code, a := range data {
		if normalize(code) == "" {
			return nil, fmt.Errorf("load airport fixture: empty airport code")
		}
		airports[code] = domain.Coordinates{Lat: float64(a.Latitude), Lon: float64(a.Longitude)}
	}

	return NewStaticResolver(airports), nil
}
