package models

import (
	"time"

	"github.com/google/uuid"
)

// RideGroup represents a pooled trip that compatible shared-ride requests
// join. Current capacity is the sum of member passenger counts and must
// never exceed MaxCapacity.
type RideGroup struct {
	ID               uuid.UUID     `json:"id"`
	Origin           Coordinate    `json:"origin"`
	Destination      Coordinate    `json:"destination"`
	RouteDistanceKm  float64       `json:"route_distance_km"`
	MaxCapacity      int           `json:"max_capacity"`
	CurrentCapacity  int           `json:"current_capacity"`
	Status           RequestStatus `json:"status"`
	ScheduledAt      *time.Time    `json:"scheduled_at,omitempty"`
	MemberRequestIDs []uuid.UUID   `json:"member_request_ids"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// SeatsLeft returns the remaining passenger capacity of the group
func (g *RideGroup) SeatsLeft() int {
	return g.MaxCapacity - g.CurrentCapacity
}

// Joinable reports whether the group is still accepting members
func (g *RideGroup) Joinable() bool {
	return g.Status == StatusRequested || g.Status == StatusSearchingDriver
}

// PrePickup reports whether the group is still before pickup. Members may
// leave a group that already has a driver, but not one that is underway.
func (g *RideGroup) PrePickup() bool {
	return g.Joinable() || g.Status == StatusDriverAccepted
}

// GroupDTO is used for database operations to flatten the coordinates
type GroupDTO struct {
	ID               uuid.UUID     `db:"id"`
	OriginLatitude   float64       `db:"origin_latitude"`
	OriginLongitude  float64       `db:"origin_longitude"`
	DestLatitude     float64       `db:"dest_latitude"`
	DestLongitude    float64       `db:"dest_longitude"`
	RouteDistanceKm  float64       `db:"route_distance_km"`
	MaxCapacity      int           `db:"max_capacity"`
	CurrentCapacity  int           `db:"current_capacity"`
	Status           RequestStatus `db:"status"`
	ScheduledAt      *time.Time    `db:"scheduled_at"`
	MemberRequestIDs []uuid.UUID   `db:"-"`
	CreatedAt        time.Time     `db:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at"`
}

// ToDTO converts a RideGroup to a GroupDTO
func (g *RideGroup) ToDTO() *GroupDTO {
	return &GroupDTO{
		ID:               g.ID,
		OriginLatitude:   g.Origin.Latitude,
		OriginLongitude:  g.Origin.Longitude,
		DestLatitude:     g.Destination.Latitude,
		DestLongitude:    g.Destination.Longitude,
		RouteDistanceKm:  g.RouteDistanceKm,
		MaxCapacity:      g.MaxCapacity,
		CurrentCapacity:  g.CurrentCapacity,
		Status:           g.Status,
		ScheduledAt:      g.ScheduledAt,
		MemberRequestIDs: g.MemberRequestIDs,
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	}
}

// ToGroup converts a GroupDTO back to a RideGroup
func (dto *GroupDTO) ToGroup() *RideGroup {
	return &RideGroup{
		ID: dto.ID,
		Origin: Coordinate{
			Latitude:  dto.OriginLatitude,
			Longitude: dto.OriginLongitude,
		},
		Destination: Coordinate{
			Latitude:  dto.DestLatitude,
			Longitude: dto.DestLongitude,
		},
		RouteDistanceKm:  dto.RouteDistanceKm,
		MaxCapacity:      dto.MaxCapacity,
		CurrentCapacity:  dto.CurrentCapacity,
		Status:           dto.Status,
		ScheduledAt:      dto.ScheduledAt,
		MemberRequestIDs: dto.MemberRequestIDs,
		CreatedAt:        dto.CreatedAt,
		UpdatedAt:        dto.UpdatedAt,
	}
}

// GroupJoinResult is returned by the grouper: the group joined or created,
// whether it was newly opened, and the pooling discount after the join.
type GroupJoinResult struct {
	Group       RideGroup `json:"group"`
	IsNew       bool      `json:"is_new"`
	DiscountPct float64   `json:"discount_pct"`
}
