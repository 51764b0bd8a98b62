package usecase

import (
	"github.com/angkutin/angkutin/internal/pkg/keylock"
	"github.com/angkutin/angkutin/internal/pkg/models"
	"github.com/angkutin/angkutin/services/dispatch"
)

// DispatchUC implements the dispatch use case interface
type DispatchUC struct {
	cfg          *models.Config
	dispatchRepo dispatch.DispatchRepo
	dispatchGW   dispatch.DispatchGW

	// Per-provider and per-group mutual exclusion. Assignments for
	// different providers and joins for different groups proceed in
	// parallel.
	providerLocks *keylock.KeyLock
	groupLocks    *keylock.KeyLock
}

// NewDispatchUC creates a new dispatch use case
func NewDispatchUC(
	cfg *models.Config,
	dispatchRepo dispatch.DispatchRepo,
	dispatchGW dispatch.DispatchGW,
) *DispatchUC {
	return &DispatchUC{
		cfg:           cfg,
		dispatchRepo:  dispatchRepo,
		dispatchGW:    dispatchGW,
		providerLocks: keylock.New(),
		groupLocks:    keylock.New(),
	}
}
