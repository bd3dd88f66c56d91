package airports

import (
	"airport-distance-service/internal/domain"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const maxResponseBytes = 1 << 20

// coordinate accepts both JSON numbers and numeric strings; the provider
// serves latitude/longitude as strings.
type coordinate float64

func (c *coordinate) UnmarshalJSON(data []byte) error {
	var value float64

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		value, err = strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return fmt.Errorf("parse coordinate %q: %w", text, err)
		}
	} else if err := json.Unmarshal(data, &value); err != nil {
		return errors.New("coordinate must be a string or number")
	}

	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("coordinate %s is not finite", string(data))
	}

	*c = coordinate(value)
	return nil
}

type airportCandidate struct {
	Latitude  *coordinate `json:"latitude"`
	Longitude *coordinate `json:"longitude"`
}

// decodeFirstCandidate reads a JSON array of airports and returns the
// coordinates of the first element. found is false for an empty array.
func decodeFirstCandidate(body io.Reader) (_ domain.Coordinates, found bool, _ error) {
	raw, err := io.ReadAll(io.LimitReader(body, maxResponseBytes))
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("read airports response: %w", err)
	}

	// Unmarshal rejects trailing data after the array.
	var candidates []airportCandidate
	if err := json.Unmarshal(raw, &candidates); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("decode airports response: %w", err)
	}

	// A JSON null leaves the slice nil; only a real empty array means no candidate.
	if candidates == nil {
		return domain.Coordinates{}, false, errors.New("airports response is not an array")
	}

	if len(candidates) == 0 {
		return domain.Coordinates{}, false, nil
	}

	first := candidates[0]
	if first.Latitude == nil {
		return domain.Coordinates{}, false, errors.New("first candidate has no latitude")
	}
	if first.Longitude == nil {
		return domain.Coordinates{}, false, errors.New("first candidate has no longitude")
	}

	return domain.Coordinates{
		Lat: float64(*first.Latitude),
		Lon: float64(*first.Longitude),
	}, true, nil
}
