package fare

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/angkutin/angkutin/internal/pkg/models"
)

func testPricing() models.PricingConfig {
	return models.PricingConfig{
		Currency:          "USD",
		SharedBaseFare:    5.0,
		SharedPerKmRate:   1.5,
		DeliveryBaseFee:   3.0,
		DeliveryPerKmRate: 1.0,
		TaxRate:           0.05,
		CommissionRate:    0.18,
	}
}

func TestRideFare_ServiceTypePricing(t *testing.T) {
	calc := NewCalculator(testPricing())
	st := &models.ServiceType{
		Vertical:      models.VerticalRide,
		BasePrice:     2.5,
		PerKmRate:     1.2,
		PerMinuteRate: 0.3,
	}

	breakdown := calc.RideFare(st, 10, 20, nil, nil)

	assert.Equal(t, 2.5, breakdown.Base)
	assert.Equal(t, 12.0, breakdown.DistanceCharge)
	assert.Equal(t, 6.0, breakdown.TimeCharge)
	assert.Equal(t, 20.5, breakdown.Total)
	assert.Equal(t, 3.69, breakdown.PlatformFee)
	assert.Equal(t, 16.81, breakdown.ProviderEarnings)
}

func TestRideFare_ZoneCrossingSurcharge(t *testing.T) {
	calc := NewCalculator(testPricing())
	st := &models.ServiceType{Vertical: models.VerticalTaxi, BasePrice: 2.0}
	origin := &models.Zone{ID: "zone-north", BasePrice: 4.0}
	dest := &models.Zone{ID: "zone-south", BasePrice: 6.0}

	breakdown := calc.RideFare(st, 0, 0, origin, dest)

	// Zone base replaces the service-type base; crossing adds half the
	// destination zone's base price
	assert.Equal(t, 4.0, breakdown.Base)
	assert.Equal(t, 3.0, breakdown.ZoneSurcharge)
	assert.Equal(t, 7.0, breakdown.Total)
}

func TestRideFare_SameZoneNoSurcharge(t *testing.T) {
	calc := NewCalculator(testPricing())
	st := &models.ServiceType{Vertical: models.VerticalTaxi}
	zone := &models.Zone{ID: "zone-north", BasePrice: 4.0}

	breakdown := calc.RideFare(st, 0, 0, zone, zone)

	assert.Equal(t, 0.0, breakdown.ZoneSurcharge)
	assert.Equal(t, 4.0, breakdown.Total)
}

func TestDeliveryFare(t *testing.T) {
	calc := NewCalculator(testPricing())
	st := &models.ServiceType{Vertical: models.VerticalDelivery}
	items := []models.DeliveryItem{
		{Name: "milk", UnitPrice: 2.0, Quantity: 2},
		{Name: "bread", UnitPrice: 1.5, Quantity: 1},
	}

	breakdown := calc.DeliveryFare(st, items, 4)

	assert.Equal(t, 5.5, breakdown.ItemsSubtotal)
	assert.Equal(t, 3.0, breakdown.Base)
	assert.Equal(t, 4.0, breakdown.DistanceCharge)
	assert.Equal(t, 12.5, breakdown.Subtotal)
	assert.InDelta(t, 0.63, breakdown.Tax, 0.001)
	assert.InDelta(t, 13.13, breakdown.Total, 0.001)
}

func TestEstimatedVolume(t *testing.T) {
	tests := []struct {
		name     string
		items    []models.MoveItem
		expected float64
	}{
		{
			name: "furniture and boxes",
			items: []models.MoveItem{
				{Category: models.MoveItemFurniture, Quantity: 2},
				{Category: models.MoveItemBox, Quantity: 3},
			},
			expected: 1.3,
		},
		{
			name: "appliances and electronics",
			items: []models.MoveItem{
				{Category: models.MoveItemAppliance, Quantity: 1},
				{Category: models.MoveItemElectronics, Quantity: 2},
			},
			expected: 0.7,
		},
		{
			name:     "unknown category uses default volume",
			items:    []models.MoveItem{{Category: "plants", Quantity: 5}},
			expected: 1.0,
		},
		{
			name:     "empty inventory",
			items:    nil,
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, EstimatedVolume(tt.items), 0.001)
		})
	}
}

func TestMovingFare(t *testing.T) {
	calc := NewCalculator(testPricing())
	st := &models.ServiceType{Vertical: models.VerticalMoving}
	items := []models.MoveItem{
		{Category: models.MoveItemFurniture, Quantity: 2},
		{Category: models.MoveItemBox, Quantity: 3},
		{Category: models.MoveItemAppliance, Quantity: 1, SpecialHandling: true},
	}

	// volume = 2*0.5 + 3*0.1 + 1*0.3 = 1.6
	// subtotal = 50 + 10*2 + 1.6*10 + 2*25 + 1*15 = 151
	breakdown := calc.MovingFare(st, 10, items, 2)

	assert.Equal(t, 50.0, breakdown.Base)
	assert.Equal(t, 20.0, breakdown.DistanceCharge)
	assert.Equal(t, 50.0, breakdown.HelperSurcharge)
	assert.Equal(t, 15.0, breakdown.SpecialSurcharge)
	assert.Equal(t, 151.0, breakdown.Subtotal)
	assert.InDelta(t, 7.55, breakdown.Tax, 0.001)
	assert.InDelta(t, 158.55, breakdown.Total, 0.001)
}

func TestSharedRideFare_Discount(t *testing.T) {
	calc := NewCalculator(testPricing())
	st := &models.ServiceType{Vertical: models.VerticalSharedRide}

	tests := []struct {
		name        string
		distanceKm  float64
		discountPct float64
		expected    float64
	}{
		{"no discount", 10, 0, 20.0},
		{"two seats", 10, 20, 16.0},
		{"capped discount", 10, 40, 12.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			breakdown := calc.SharedRideFare(st, tt.distanceKm, tt.discountPct)
			assert.InDelta(t, tt.expected, breakdown.Total, 0.001)
		})
	}
}

func TestCommissionSplit_ServiceTypeRateWins(t *testing.T) {
	calc := NewCalculator(testPricing())
	st := &models.ServiceType{CommissionRate: 0.25}

	platformFee, providerEarnings := calc.CommissionSplit(100, st)

	assert.Equal(t, 25.0, platformFee)
	assert.Equal(t, 75.0, providerEarnings)
}

func TestCommissionSplit_DefaultRate(t *testing.T) {
	calc := NewCalculator(models.PricingConfig{})

	platformFee, providerEarnings := calc.CommissionSplit(100, nil)

	assert.Equal(t, 18.0, platformFee)
	assert.Equal(t, 82.0, providerEarnings)
}

func TestDayBookingCancellationFee(t *testing.T) {
	tests := []struct {
		name        string
		hoursBefore float64
		expected    float64
	}{
		{"ten hours before", 10, 50.0},
		{"thirty hours before", 30, 25.0},
		{"sixty hours before", 60, 10.0},
		{"four days before", 96, 0.0},
		{"exact 24h boundary", 24, 25.0},
		{"exact 72h boundary", 72, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DayBookingCancellationFee(100, tt.hoursBefore))
		})
	}
}
