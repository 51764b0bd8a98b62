package usecase

import (
	"github.com/angkutin/angkutin/internal/pkg/fare"
	"github.com/angkutin/angkutin/internal/pkg/keylock"
	"github.com/angkutin/angkutin/internal/pkg/models"
	"github.com/angkutin/angkutin/services/billing"
)

// BillingUC implements the billing usecase
type BillingUC struct {
	cfg         *models.Config
	billingRepo billing.BillingRepo
	billingGW   billing.BillingGW
	fareCalc    *fare.Calculator

	// Per-request mutual exclusion so the same settlement event delivered
	// twice cannot create two payments.
	settleLocks *keylock.KeyLock
}

// NewBillingUC creates a new billing usecase
func NewBillingUC(cfg *models.Config, billingRepo billing.BillingRepo, billingGW billing.BillingGW) *BillingUC {
	return &BillingUC{
		cfg:         cfg,
		billingRepo: billingRepo,
		billingGW:   billingGW,
		fareCalc:    fare.NewCalculator(cfg.Pricing),
		settleLocks: keylock.New(),
	}
}
