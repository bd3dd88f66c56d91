package ports

import (
	"airport-distance-service/internal/domain"
	"context"
)

// Outcome of a successful exchange with the lookup provider.
// Found is false when the provider answered but had no candidate for the code;
// Airport is then zero-valued and must not be used.
type Resolution struct {
	Airport domain.Airport
	Found   bool
}

// Contract for translating an airport code into coordinates.
type AirportResolver interface {
	// Resolve looks up one airport code. Transport and provider failures are
	// returned as errors from the domain error taxonomy.
	Resolve(ctx context.Context, code string) (Resolution, error)
}
