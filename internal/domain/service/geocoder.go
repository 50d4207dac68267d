package service

import (
	"context"

	"github.com/paulmach/orb"
)

// Geocoder resolves a formatted address line into coordinates through an
// external provider. Implementations perform a single attempt per call;
// callers treat any error as a soft failure and never retry automatically.
type Geocoder interface {
	// Geocode resolves the given address line (without country suffix;
	// the implementation appends its configured locale) into a lon/lat
	// point. Only the provider's first candidate is used.
	Geocode(ctx context.Context, address string) (orb.Point, error)
}
