// Package fare computes vertical-specific price breakdowns and the
// platform/provider commission split. All calculations are pure; the
// calculator only carries pricing configuration.
package fare

import (
	"math"

	"github.com/angkutin/angkutin/internal/pkg/models"
)

const (
	// House-moving pricing constants
	movingBaseFee        = 50.0
	movingPerKmRate      = 2.0
	movingPerCubicMeter  = 10.0
	movingPerHelper      = 25.0
	movingPerSpecialItem = 15.0

	// Zone-to-zone taxi trips crossing into another zone pay a surcharge
	// proportional to the destination zone's base price
	zoneCrossingSurchargeRate = 0.5

	// DefaultCommissionRate is the platform cut applied when the service
	// type does not carry its own rate
	DefaultCommissionRate = 0.18
)

// Per-category unit volumes in cubic meters for house-moving inventory
var itemVolumes = map[models.MoveItemCategory]float64{
	models.MoveItemFurniture:   0.5,
	models.MoveItemBox:         0.1,
	models.MoveItemAppliance:   0.3,
	models.MoveItemElectronics: 0.2,
}

const defaultItemVolume = 0.2

// Calculator prices requests using the configured rates
type Calculator struct {
	pricing models.PricingConfig
}

// NewCalculator creates a fare calculator from pricing configuration
func NewCalculator(pricing models.PricingConfig) *Calculator {
	return &Calculator{pricing: pricing}
}

// RideFare prices a ride or metered-taxi trip. For zone-to-zone taxi trips
// both zones are provided and the zone base price replaces the service-type
// base; crossing zones adds half the destination zone's base price.
func (c *Calculator) RideFare(serviceType *models.ServiceType, distanceKm, durationMin float64, originZone, destZone *models.Zone) models.FareBreakdown {
	breakdown := models.FareBreakdown{
		Base:           serviceType.BasePrice,
		DistanceCharge: round2(distanceKm * serviceType.PerKmRate),
		TimeCharge:     round2(durationMin * serviceType.PerMinuteRate),
	}

	if originZone != nil && destZone != nil {
		breakdown.Base = originZone.BasePrice
		if originZone.ID != destZone.ID {
			breakdown.ZoneSurcharge = round2(destZone.BasePrice * zoneCrossingSurchargeRate)
		}
	}

	breakdown.Subtotal = round2(breakdown.Base + breakdown.DistanceCharge + breakdown.TimeCharge + breakdown.ZoneSurcharge)
	breakdown.Total = breakdown.Subtotal
	return c.applyCommission(breakdown, serviceType)
}

// DeliveryFare prices a store delivery: the purchased items subtotal plus a
// delivery fee of base + per-km, with tax on top.
func (c *Calculator) DeliveryFare(serviceType *models.ServiceType, items []models.DeliveryItem, distanceKm float64) models.FareBreakdown {
	var itemsSubtotal float64
	for _, item := range items {
		itemsSubtotal += item.UnitPrice * float64(item.Quantity)
	}

	breakdown := models.FareBreakdown{
		Base:           c.pricing.DeliveryBaseFee,
		DistanceCharge: round2(distanceKm * c.pricing.DeliveryPerKmRate),
		ItemsSubtotal:  round2(itemsSubtotal),
	}
	breakdown.Subtotal = round2(breakdown.ItemsSubtotal + breakdown.Base + breakdown.DistanceCharge)
	breakdown.Tax = round2(breakdown.Subtotal * c.pricing.TaxRate)
	breakdown.Total = round2(breakdown.Subtotal + breakdown.Tax)
	return c.applyCommission(breakdown, serviceType)
}

// MovingFare prices a house move from distance, estimated cargo volume,
// helper count and special-handling items.
func (c *Calculator) MovingFare(serviceType *models.ServiceType, distanceKm float64, items []models.MoveItem, helpers int) models.FareBreakdown {
	volume := EstimatedVolume(items)

	specialItems := 0
	for _, item := range items {
		if item.SpecialHandling {
			specialItems += item.Quantity
		}
	}

	breakdown := models.FareBreakdown{
		Base:             movingBaseFee,
		DistanceCharge:   round2(distanceKm * movingPerKmRate),
		HelperSurcharge:  round2(float64(helpers) * movingPerHelper),
		SpecialSurcharge: round2(float64(specialItems) * movingPerSpecialItem),
	}
	volumeCharge := round2(volume * movingPerCubicMeter)
	breakdown.Subtotal = round2(breakdown.Base + breakdown.DistanceCharge + volumeCharge + breakdown.HelperSurcharge + breakdown.SpecialSurcharge)
	breakdown.Tax = round2(breakdown.Subtotal * c.pricing.TaxRate)
	breakdown.Total = round2(breakdown.Subtotal + breakdown.Tax)
	return c.applyCommission(breakdown, serviceType)
}

// SharedRideFare prices one leg of a pooled ride along the group's direct
// route, with the pooling discount applied multiplicatively.
func (c *Calculator) SharedRideFare(serviceType *models.ServiceType, directDistanceKm, discountPct float64) models.FareBreakdown {
	breakdown := models.FareBreakdown{
		Base:           c.pricing.SharedBaseFare,
		DistanceCharge: round2(directDistanceKm * c.pricing.SharedPerKmRate),
		DiscountPct:    discountPct,
	}
	breakdown.Subtotal = round2(breakdown.Base + breakdown.DistanceCharge)
	breakdown.Total = round2(breakdown.Subtotal * (1 - discountPct/100))
	return c.applyCommission(breakdown, serviceType)
}

// EstimatedVolume sums per-item-category unit volumes times quantity, in
// cubic meters.
func EstimatedVolume(items []models.MoveItem) float64 {
	var volume float64
	for _, item := range items {
		unit, ok := itemVolumes[item.Category]
		if !ok {
			unit = defaultItemVolume
		}
		volume += unit * float64(item.Quantity)
	}
	return round2(volume)
}

// CommissionSplit computes the platform fee and provider earnings for a
// settled price. The service type's commission rate wins over the
// configured default.
func (c *Calculator) CommissionSplit(price float64, serviceType *models.ServiceType) (platformFee, providerEarnings float64) {
	rate := c.commissionRate(serviceType)
	platformFee = round2(price * rate)
	providerEarnings = round2(price - platformFee)
	return platformFee, providerEarnings
}

// DayBookingCancellationFee computes the tiered cancellation fee for a
// day-booking cancelled hoursUntilScheduled hours before its start.
func DayBookingCancellationFee(estimatedPrice, hoursUntilScheduled float64) float64 {
	switch {
	case hoursUntilScheduled < 24:
		return round2(estimatedPrice * 0.50)
	case hoursUntilScheduled < 48:
		return round2(estimatedPrice * 0.25)
	case hoursUntilScheduled < 72:
		return round2(estimatedPrice * 0.10)
	default:
		return 0
	}
}

func (c *Calculator) applyCommission(breakdown models.FareBreakdown, serviceType *models.ServiceType) models.FareBreakdown {
	breakdown.PlatformFee, breakdown.ProviderEarnings = c.CommissionSplit(breakdown.Total, serviceType)
	return breakdown
}

func (c *Calculator) commissionRate(serviceType *models.ServiceType) float64 {
	if serviceType != nil && serviceType.CommissionRate > 0 {
		return serviceType.CommissionRate
	}
	if c.pricing.CommissionRate > 0 {
		return c.pricing.CommissionRate
	}
	return DefaultCommissionRate
}

func round2(val float64) float64 {
	return math.Round(val*100) / 100
}
