package models

import "fmt"

// ServiceVertical selects which request category a ServiceRequest belongs to.
// Each vertical has its own status alphabet and transition graph.
type ServiceVertical string

const (
	VerticalRide       ServiceVertical = "ride"
	VerticalTaxi       ServiceVertical = "taxi"
	VerticalSharedRide ServiceVertical = "shared_ride"
	VerticalDelivery   ServiceVertical = "delivery"
	VerticalMoving     ServiceVertical = "moving"
	VerticalEmergency  ServiceVertical = "emergency"
	VerticalDayBooking ServiceVertical = "day_booking"
)

// RequestStatus represents the current state of a service request
type RequestStatus string

const (
	StatusRequested       RequestStatus = "REQUESTED"
	StatusSearchingDriver RequestStatus = "SEARCHING_DRIVER"
	StatusDriverAccepted  RequestStatus = "DRIVER_ACCEPTED"
	StatusDriverArrived   RequestStatus = "DRIVER_ARRIVED"
	StatusInProgress      RequestStatus = "IN_PROGRESS"
	StatusCompleted       RequestStatus = "COMPLETED"
	StatusCancelled       RequestStatus = "CANCELLED"

	// Delivery
	StatusPreparing      RequestStatus = "PREPARING"
	StatusReadyForPickup RequestStatus = "READY_FOR_PICKUP"
	StatusOutForDelivery RequestStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      RequestStatus = "DELIVERED"

	// House-moving and day-booking
	StatusScheduled RequestStatus = "SCHEDULED"
	StatusConfirmed RequestStatus = "CONFIRMED"
	StatusLoading   RequestStatus = "LOADING"
	StatusInTransit RequestStatus = "IN_TRANSIT"
	StatusUnloading RequestStatus = "UNLOADING"

	// Emergency
	StatusAcknowledged RequestStatus = "ACKNOWLEDGED"
	StatusDispatched   RequestStatus = "DISPATCHED"
	StatusArrived      RequestStatus = "ARRIVED"
	StatusResolved     RequestStatus = "RESOLVED"
)

// rideGraph is shared by the ride, taxi and shared-ride verticals
var rideGraph = map[RequestStatus][]RequestStatus{
	StatusRequested:       {StatusSearchingDriver, StatusDriverAccepted, StatusCancelled},
	StatusSearchingDriver: {StatusDriverAccepted, StatusCancelled},
	StatusDriverAccepted:  {StatusDriverArrived, StatusCancelled},
	StatusDriverArrived:   {StatusInProgress, StatusCancelled},
	StatusInProgress:      {StatusCompleted, StatusCancelled},
	StatusCompleted:       {},
	StatusCancelled:       {},
}

// verticalGraphs defines the allowed transitions per vertical. Cancellation
// reachability is encoded directly in each graph: house-moving cannot be
// cancelled once loading begins, emergencies cannot be cancelled after
// arrival, day-bookings cannot be cancelled once in progress.
var verticalGraphs = map[ServiceVertical]map[RequestStatus][]RequestStatus{
	VerticalRide:       rideGraph,
	VerticalTaxi:       rideGraph,
	VerticalSharedRide: rideGraph,
	VerticalDelivery: {
		StatusPreparing:      {StatusReadyForPickup, StatusCancelled},
		StatusReadyForPickup: {StatusDriverAccepted, StatusCancelled},
		StatusDriverAccepted: {StatusDriverArrived, StatusCancelled},
		StatusDriverArrived:  {StatusOutForDelivery, StatusCancelled},
		StatusOutForDelivery: {StatusDelivered, StatusCancelled},
		StatusDelivered:      {},
		StatusCancelled:      {},
	},
	VerticalMoving: {
		StatusScheduled: {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusLoading, StatusCancelled},
		StatusLoading:   {StatusInTransit},
		StatusInTransit: {StatusUnloading},
		StatusUnloading: {StatusCompleted},
		StatusCompleted: {},
		StatusCancelled: {},
	},
	VerticalEmergency: {
		StatusRequested:    {StatusAcknowledged, StatusCancelled},
		StatusAcknowledged: {StatusDispatched, StatusCancelled},
		StatusDispatched:   {StatusArrived, StatusCancelled},
		StatusArrived:      {StatusResolved},
		StatusResolved:     {},
		StatusCancelled:    {},
	},
	VerticalDayBooking: {
		StatusScheduled:      {StatusDriverAccepted, StatusCancelled},
		StatusDriverAccepted: {StatusDriverArrived, StatusCancelled},
		StatusDriverArrived:  {StatusInProgress, StatusCancelled},
		StatusInProgress:     {StatusCompleted},
		StatusCompleted:      {},
		StatusCancelled:      {},
	},
}

// initialStatuses defines the status a new request starts in per vertical
var initialStatuses = map[ServiceVertical]RequestStatus{
	VerticalRide:       StatusRequested,
	VerticalTaxi:       StatusRequested,
	VerticalSharedRide: StatusRequested,
	VerticalDelivery:   StatusPreparing,
	VerticalMoving:     StatusScheduled,
	VerticalEmergency:  StatusRequested,
	VerticalDayBooking: StatusScheduled,
}

// acceptedStatuses are the states whose entry binds a provider to the request
var acceptedStatuses = map[RequestStatus]bool{
	StatusDriverAccepted: true,
	StatusConfirmed:      true,
	StatusDispatched:     true,
}

// completionStatuses are the terminal states that settle the request
var completionStatuses = map[RequestStatus]bool{
	StatusCompleted: true,
	StatusDelivered: true,
	StatusResolved:  true,
}

// IsValid reports whether the vertical is a recognized service vertical
func (v ServiceVertical) IsValid() bool {
	_, ok := verticalGraphs[v]
	return ok
}

// InitialStatus returns the status a new request of this vertical starts in
func (v ServiceVertical) InitialStatus() RequestStatus {
	return initialStatuses[v]
}

// CanTransition reports whether the vertical's graph allows from -> to
func (v ServiceVertical) CanTransition(from, to RequestStatus) bool {
	graph, ok := verticalGraphs[v]
	if !ok {
		return false
	}
	for _, next := range graph[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is defined from the status
func (v ServiceVertical) IsTerminal(status RequestStatus) bool {
	graph, ok := verticalGraphs[v]
	if !ok {
		return true
	}
	allowed, ok := graph[status]
	if !ok {
		return true
	}
	return len(allowed) == 0
}

// IsAcceptedStatus reports whether entering the status binds a provider
func IsAcceptedStatus(status RequestStatus) bool {
	return acceptedStatuses[status]
}

// AcceptedStatus returns the status a provider's acceptance moves this
// vertical's requests into
func (v ServiceVertical) AcceptedStatus() RequestStatus {
	switch v {
	case VerticalMoving:
		return StatusConfirmed
	case VerticalEmergency:
		return StatusDispatched
	default:
		return StatusDriverAccepted
	}
}

// IsCompletionStatus reports whether the status settles the request
func IsCompletionStatus(status RequestStatus) bool {
	return completionStatuses[status]
}

// ParseVertical converts a string to a ServiceVertical
func ParseVertical(s string) (ServiceVertical, error) {
	v := ServiceVertical(s)
	if !v.IsValid() {
		return "", fmt.Errorf("invalid service vertical: %s", s)
	}
	return v, nil
}
