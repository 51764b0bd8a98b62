package geo

import (
	"math"

	"github.com/angkutin/angkutin/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

// earthRadiusKm is the mean Earth radius
const earthRadiusKm = 6371.0

// DistanceKm calculates the great-circle distance between two coordinates
// in kilometers using the Haversine formula
func DistanceKm(a, b models.Coordinate) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// EncodeLocation converts a coordinate to a geohash bucket string
func EncodeLocation(c models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(c.Latitude, c.Longitude, precision)
}
