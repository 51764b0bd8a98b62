package constants

// NATS Subjects
const (
	// Provider availability
	SubjectProviderBeacon = "provider.beacon"

	// Dispatch events
	SubjectMatchFound     = "dispatch.match.found"
	SubjectGroupUpdated   = "dispatch.group.updated"
	SubjectProviderAssign = "dispatch.provider.assigned"

	// Trip lifecycle events
	SubjectTripTransition = "trips.transition"
	SubjectTripCompleted  = "trips.completed"
	SubjectTripCancelled  = "trips.cancelled"

	// Billing events
	SubjectPaymentProcessed = "payments.processed"
)

// Queue groups
const (
	QueueDispatch = "dispatch-service"
	QueueTrips    = "trips-service"
	QueueBilling  = "billing-service"
)
