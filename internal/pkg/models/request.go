package models

import (
	"time"

	"github.com/google/uuid"
)

// ActorRole identifies who is driving a lifecycle transition
type ActorRole string

const (
	RoleRequester ActorRole = "requester"
	RoleProvider  ActorRole = "provider"
	RoleOperator  ActorRole = "operator"
)

// Actor represents the authenticated party attempting a transition
type Actor struct {
	ID   string    `json:"id"`
	Role ActorRole `json:"role"`
}

// ServiceRequest is the generalized entity behind every vertical: rides,
// metered taxi trips, shared-ride legs, deliveries, house moves, emergency
// calls and day-bookings.
type ServiceRequest struct {
	ID             uuid.UUID       `json:"id"`
	RequesterID    uuid.UUID       `json:"requester_id"`
	Vertical       ServiceVertical `json:"vertical"`
	ServiceType    string          `json:"service_type"`
	Status         RequestStatus   `json:"status"`
	Pickup         *Coordinate     `json:"pickup,omitempty"`
	Dropoff        *Coordinate     `json:"dropoff,omitempty"`
	ProviderID     *uuid.UUID      `json:"provider_id,omitempty"`
	GroupID        *uuid.UUID      `json:"group_id,omitempty"`
	ScheduledAt    *time.Time      `json:"scheduled_at,omitempty"`
	PassengerCount int             `json:"passenger_count"`
	ItemCount      int             `json:"item_count"`
	DistanceKm     float64         `json:"distance_km"`
	EstimatedPrice float64         `json:"estimated_price"`
	FinalPrice     *float64        `json:"final_price,omitempty"`
	CancellationFee float64        `json:"cancellation_fee,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	StartedAt      *time.Time      `json:"started_at,omitempty"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// IsAssigned reports whether a provider is currently bound to the request
func (r *ServiceRequest) IsAssigned() bool {
	return r.ProviderID != nil && *r.ProviderID != uuid.Nil
}

// RequestDTO is used for database operations to flatten the nested
// Coordinate structs into scannable columns
type RequestDTO struct {
	ID              uuid.UUID       `db:"id"`
	RequesterID     uuid.UUID       `db:"requester_id"`
	Vertical        ServiceVertical `db:"vertical"`
	ServiceType     string          `db:"service_type"`
	Status          RequestStatus   `db:"status"`
	PickupLatitude  *float64        `db:"pickup_latitude"`
	PickupLongitude *float64        `db:"pickup_longitude"`
	PickupAddress   *string         `db:"pickup_address"`
	PickupLocality  *string         `db:"pickup_locality"`
	DropoffLatitude  *float64       `db:"dropoff_latitude"`
	DropoffLongitude *float64       `db:"dropoff_longitude"`
	DropoffAddress   *string        `db:"dropoff_address"`
	DropoffLocality  *string        `db:"dropoff_locality"`
	ProviderID      *uuid.UUID      `db:"provider_id"`
	GroupID         *uuid.UUID      `db:"group_id"`
	ScheduledAt     *time.Time      `db:"scheduled_at"`
	PassengerCount  int             `db:"passenger_count"`
	ItemCount       int             `db:"item_count"`
	DistanceKm      float64         `db:"distance_km"`
	EstimatedPrice  float64         `db:"estimated_price"`
	FinalPrice      *float64        `db:"final_price"`
	CancellationFee float64         `db:"cancellation_fee"`
	CreatedAt       time.Time       `db:"created_at"`
	StartedAt       *time.Time      `db:"started_at"`
	CompletedAt     *time.Time      `db:"completed_at"`
	UpdatedAt       time.Time       `db:"updated_at"`
}

// ToDTO converts a ServiceRequest to a RequestDTO
func (r *ServiceRequest) ToDTO() *RequestDTO {
	dto := &RequestDTO{
		ID:              r.ID,
		RequesterID:     r.RequesterID,
		Vertical:        r.Vertical,
		ServiceType:     r.ServiceType,
		Status:          r.Status,
		ProviderID:      r.ProviderID,
		GroupID:         r.GroupID,
		ScheduledAt:     r.ScheduledAt,
		PassengerCount:  r.PassengerCount,
		ItemCount:       r.ItemCount,
		DistanceKm:      r.DistanceKm,
		EstimatedPrice:  r.EstimatedPrice,
		FinalPrice:      r.FinalPrice,
		CancellationFee: r.CancellationFee,
		CreatedAt:       r.CreatedAt,
		StartedAt:       r.StartedAt,
		CompletedAt:     r.CompletedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.Pickup != nil {
		dto.PickupLatitude = &r.Pickup.Latitude
		dto.PickupLongitude = &r.Pickup.Longitude
		dto.PickupAddress = &r.Pickup.Address
		dto.PickupLocality = &r.Pickup.Locality
	}
	if r.Dropoff != nil {
		dto.DropoffLatitude = &r.Dropoff.Latitude
		dto.DropoffLongitude = &r.Dropoff.Longitude
		dto.DropoffAddress = &r.Dropoff.Address
		dto.DropoffLocality = &r.Dropoff.Locality
	}
	return dto
}

// ToRequest converts a RequestDTO back to a ServiceRequest
func (dto *RequestDTO) ToRequest() *ServiceRequest {
	req := &ServiceRequest{
		ID:              dto.ID,
		RequesterID:     dto.RequesterID,
		Vertical:        dto.Vertical,
		ServiceType:     dto.ServiceType,
		Status:          dto.Status,
		ProviderID:      dto.ProviderID,
		GroupID:         dto.GroupID,
		ScheduledAt:     dto.ScheduledAt,
		PassengerCount:  dto.PassengerCount,
		ItemCount:       dto.ItemCount,
		DistanceKm:      dto.DistanceKm,
		EstimatedPrice:  dto.EstimatedPrice,
		FinalPrice:      dto.FinalPrice,
		CancellationFee: dto.CancellationFee,
		CreatedAt:       dto.CreatedAt,
		StartedAt:       dto.StartedAt,
		CompletedAt:     dto.CompletedAt,
		UpdatedAt:       dto.UpdatedAt,
	}
	if dto.PickupLatitude != nil && dto.PickupLongitude != nil {
		req.Pickup = &Coordinate{
			Latitude:  *dto.PickupLatitude,
			Longitude: *dto.PickupLongitude,
		}
		if dto.PickupAddress != nil {
			req.Pickup.Address = *dto.PickupAddress
		}
		if dto.PickupLocality != nil {
			req.Pickup.Locality = *dto.PickupLocality
		}
	}
	if dto.DropoffLatitude != nil && dto.DropoffLongitude != nil {
		req.Dropoff = &Coordinate{
			Latitude:  *dto.DropoffLatitude,
			Longitude: *dto.DropoffLongitude,
		}
		if dto.DropoffAddress != nil {
			req.Dropoff.Address = *dto.DropoffAddress
		}
		if dto.DropoffLocality != nil {
			req.Dropoff.Locality = *dto.DropoffLocality
		}
	}
	return req
}
