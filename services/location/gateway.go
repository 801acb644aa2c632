package location

import (
	"context"
	"errors"

	"github.com/caronalabs/carona/internal/pkg/models"
)

// ErrNoRoute is returned by Distance when the maps provider cannot find
// a route between the two points.
var ErrNoRoute = errors.New("no route between origin and destination")

// Geocoder defines the interface for reverse geocoding coordinates
//
//go:generate mockgen -destination=mocks/mock_geocoder.go -package=mocks github.com/caronalabs/carona/services/location Geocoder
type Geocoder interface {
	ReverseGeocode(ctx context.Context, latitude, longitude float64) (*models.GeocodedLocation, error)
}

// DistanceMatrix defines the interface for route distance lookups
//
//go:generate mockgen -destination=mocks/mock_distance.go -package=mocks github.com/caronalabs/carona/services/location DistanceMatrix
type DistanceMatrix interface {
	Distance(ctx context.Context, origin, destination string) (*models.DistanceResult, error)
}
