package usecase

import (
	"github.com/angkutin/angkutin/internal/pkg/fare"
	"github.com/angkutin/angkutin/internal/pkg/keylock"
	"github.com/angkutin/angkutin/internal/pkg/models"
	"github.com/angkutin/angkutin/services/trips"
)

// TripsUC implements the trips use case interface
type TripsUC struct {
	cfg       *models.Config
	tripsRepo trips.TripsRepo
	tripsGW   trips.TripsGW
	fareCalc  *fare.Calculator

	// Per-request mutual exclusion: transitions for the same request are
	// serialized so side effects run at most once.
	requestLocks *keylock.KeyLock
}

// NewTripsUC creates a new trips use case
func NewTripsUC(
	cfg *models.Config,
	tripsRepo trips.TripsRepo,
	tripsGW trips.TripsGW,
) *TripsUC {
	return &TripsUC{
		cfg:          cfg,
		tripsRepo:    tripsRepo,
		tripsGW:      tripsGW,
		fareCalc:     fare.NewCalculator(cfg.Pricing),
		requestLocks: keylock.New(),
	}
}
