package models

import (
	"time"

	"github.com/google/uuid"
)

// ServiceType describes a bookable service offering: its vertical, base
// pricing and the platform's commission cut.
type ServiceType struct {
	ID             string          `json:"id" db:"id"`
	Vertical       ServiceVertical `json:"vertical" db:"vertical"`
	Name           string          `json:"name" db:"name"`
	BasePrice      float64         `json:"base_price" db:"base_price"`
	PerKmRate      float64         `json:"per_km_rate" db:"per_km_rate"`
	PerMinuteRate  float64         `json:"per_minute_rate" db:"per_minute_rate"`
	CommissionRate float64         `json:"commission_rate" db:"commission_rate"`
}

// Zone represents a metered-taxi pricing zone
type Zone struct {
	ID        string  `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	BasePrice float64 `json:"base_price" db:"base_price"`
}

// MoveItemCategory classifies house-moving cargo for volume estimation
type MoveItemCategory string

const (
	MoveItemFurniture   MoveItemCategory = "furniture"
	MoveItemBox         MoveItemCategory = "box"
	MoveItemAppliance   MoveItemCategory = "appliance"
	MoveItemElectronics MoveItemCategory = "electronics"
)

// MoveItem represents one line of a house-moving inventory
type MoveItem struct {
	Category        MoveItemCategory `json:"category"`
	Quantity        int              `json:"quantity"`
	SpecialHandling bool             `json:"special_handling"`
}

// DeliveryItem represents one purchased item on a store delivery
type DeliveryItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// FareBreakdown is the priced decomposition of a request. It is derived
// from request attributes and never stored apart from the payment record
// it prices.
type FareBreakdown struct {
	Base             float64 `json:"base"`
	DistanceCharge   float64 `json:"distance_charge"`
	TimeCharge       float64 `json:"time_charge"`
	HelperSurcharge  float64 `json:"helper_surcharge"`
	SpecialSurcharge float64 `json:"special_surcharge"`
	ZoneSurcharge    float64 `json:"zone_surcharge"`
	ItemsSubtotal    float64 `json:"items_subtotal"`
	DiscountPct      float64 `json:"discount_pct"`
	Subtotal         float64 `json:"subtotal"`
	Tax              float64 `json:"tax"`
	Total            float64 `json:"total"`
	PlatformFee      float64 `json:"platform_fee"`
	ProviderEarnings float64 `json:"provider_earnings"`
}

// Commission records the platform/provider split of a settled request
type Commission struct {
	RequestID        uuid.UUID `json:"request_id" db:"request_id"`
	PlatformFee      float64   `json:"platform_fee" db:"platform_fee"`
	ProviderEarnings float64   `json:"provider_earnings" db:"provider_earnings"`
	PartnerFee       float64   `json:"partner_fee" db:"partner_fee"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// Payment status values
const (
	PaymentProcessed = "PROCESSED"
	PaymentFailed    = "FAILED"
)

// Payment represents a settled payment record for a request
type Payment struct {
	ID               uuid.UUID `json:"id" db:"id"`
	RequestID        uuid.UUID `json:"request_id" db:"request_id"`
	Amount           float64   `json:"amount" db:"amount"`
	PlatformFee      float64   `json:"platform_fee" db:"platform_fee"`
	ProviderEarnings float64   `json:"provider_earnings" db:"provider_earnings"`
	Currency         string    `json:"currency" db:"currency"`
	Status           string    `json:"status" db:"status"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}
