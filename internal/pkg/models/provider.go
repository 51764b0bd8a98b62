package models

import "time"

// AvailabilityStatus represents the current availability of a provider
type AvailabilityStatus string

const (
	AvailabilityOnline  AvailabilityStatus = "ONLINE"
	AvailabilityOffline AvailabilityStatus = "OFFLINE"
	AvailabilityOnTrip  AvailabilityStatus = "ON_TRIP"
	AvailabilityBreak   AvailabilityStatus = "BREAK"
)

// ApprovalStatus represents the platform approval state of a provider
type ApprovalStatus string

const (
	ApprovalPending   ApprovalStatus = "PENDING"
	ApprovalApproved  ApprovalStatus = "APPROVED"
	ApprovalRejected  ApprovalStatus = "REJECTED"
	ApprovalSuspended ApprovalStatus = "SUSPENDED"
)

// Provider represents a driver/vehicle operator in the registry
type Provider struct {
	ID              string             `json:"id"`
	Availability    AvailabilityStatus `json:"availability"`
	Approval        ApprovalStatus     `json:"approval"`
	Location        *Coordinate        `json:"location,omitempty"`
	ServiceTypes    []string           `json:"service_types"`
	ActiveRequestID string             `json:"active_request_id,omitempty"`
	RegisteredSeq   int64              `json:"registered_seq"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

// HasLocation reports whether the provider has a known current coordinate
func (p *Provider) HasLocation() bool {
	return p.Location != nil
}

// EligibleFor reports whether the provider can serve the given service type
func (p *Provider) EligibleFor(serviceType string) bool {
	for _, st := range p.ServiceTypes {
		if st == serviceType {
			return true
		}
	}
	return false
}

// Dispatchable reports whether the provider can receive a new assignment
func (p *Provider) Dispatchable() bool {
	return p.Availability == AvailabilityOnline &&
		p.Approval == ApprovalApproved &&
		p.HasLocation()
}

// NearbyProvider pairs a candidate provider with its distance to a pickup point
type NearbyProvider struct {
	Provider   Provider `json:"provider"`
	DistanceKm float64  `json:"distance_km"`
}
