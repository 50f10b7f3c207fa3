package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/rickshawlabs/dispatch/internal/pkg/models"
)

// GeohashPrecision is the cell precision stored alongside each driver
// location. Precision 6 cells are roughly 1.2km x 0.6km.
const GeohashPrecision = 6

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// CalculateDistance returns the great-circle distance between two points in
// kilometers using the Haversine formula with an Earth radius of 6371 km
func CalculateDistance(point1, point2 models.Location) float64 {
	const earthRadius = 6371.0

	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// CalculateFare returns the estimated fare for a ride of the given distance.
// The fare never drops below the configured minimum.
func CalculateFare(distanceKm float64, pricing models.PricingConfig) float64 {
	return math.Max(pricing.MinimumFare, distanceKm*pricing.PerKmRate)
}
