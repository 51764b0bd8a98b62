package models

import "time"

// BeaconEvent represents a provider availability change published by the
// provider's app: going online/offline/on-break, with a fresh location.
type BeaconEvent struct {
	ProviderID   string             `json:"provider_id"`
	Availability AvailabilityStatus `json:"availability"`
	Location     GeoLocation        `json:"location"`
	ServiceTypes []string           `json:"service_types,omitempty"`
	Timestamp    time.Time          `json:"timestamp"`
}

// GeoLocation represents a bare geographic point on the wire
type GeoLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AssignmentEvent is published when a provider is bound to a request
type AssignmentEvent struct {
	RequestID  string    `json:"request_id"`
	ProviderID string    `json:"provider_id"`
	Vertical   string    `json:"vertical"`
	Timestamp  time.Time `json:"timestamp"`
}

// LifecycleEvent is published on every applied status transition
type LifecycleEvent struct {
	RequestID  string        `json:"request_id"`
	Vertical   string        `json:"vertical"`
	FromStatus RequestStatus `json:"from_status"`
	ToStatus   RequestStatus `json:"to_status"`
	ActorID    string        `json:"actor_id"`
	Timestamp  time.Time     `json:"timestamp"`
}

// GroupEvent notifies shared-ride group members of membership changes
type GroupEvent struct {
	GroupID         string    `json:"group_id"`
	RequestID       string    `json:"request_id"`
	CurrentCapacity int       `json:"current_capacity"`
	MaxCapacity     int       `json:"max_capacity"`
	Change          string    `json:"change"` // "joined" or "left"
	Timestamp       time.Time `json:"timestamp"`
}

// TripSettledEvent is consumed by the billing service to price and split a
// finished request. Fee carries the cancellation fee for cancelled trips.
type TripSettledEvent struct {
	RequestID   string    `json:"request_id"`
	Vertical    string    `json:"vertical"`
	ServiceType string    `json:"service_type"`
	ProviderID  string    `json:"provider_id,omitempty"`
	FinalPrice  float64   `json:"final_price"`
	Fee         float64   `json:"fee,omitempty"`
	Cancelled   bool      `json:"cancelled"`
	Timestamp   time.Time `json:"timestamp"`
}

// PaymentEvent is published once billing has recorded the settlement
type PaymentEvent struct {
	PaymentID        string    `json:"payment_id"`
	RequestID        string    `json:"request_id"`
	Amount           float64   `json:"amount"`
	PlatformFee      float64   `json:"platform_fee"`
	ProviderEarnings float64   `json:"provider_earnings"`
	Status           string    `json:"status"`
	Timestamp        time.Time `json:"timestamp"`
}
