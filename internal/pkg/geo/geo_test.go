package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/angkutin/angkutin/internal/pkg/models"
)

func TestDistanceKm(t *testing.T) {
	jakarta := models.Coordinate{Latitude: -6.2088, Longitude: 106.8456}
	bandung := models.Coordinate{Latitude: -6.9175, Longitude: 107.6191}

	assert.Zero(t, DistanceKm(jakarta, jakarta))
	// Jakarta to Bandung is roughly 117 km as the crow flies
	assert.InDelta(t, 117, DistanceKm(jakarta, bandung), 3)
	assert.InDelta(t, DistanceKm(jakarta, bandung), DistanceKm(bandung, jakarta), 0.001)
}

func TestEncodeLocation(t *testing.T) {
	monas := models.Coordinate{Latitude: -6.1754, Longitude: 106.8272}

	bucket := EncodeLocation(monas, 5)
	assert.Len(t, bucket, 5)
	assert.Equal(t, "qqguy", bucket)

	// A nearby point lands in the same coarse bucket
	nearby := models.Coordinate{Latitude: -6.1755, Longitude: 106.8273}
	assert.Equal(t, bucket, EncodeLocation(nearby, 5))

	// Higher precision refines, never rewrites, the prefix
	assert.Equal(t, bucket, EncodeLocation(monas, 7)[:5])
}
