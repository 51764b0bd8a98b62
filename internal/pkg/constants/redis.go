package constants

// Redis key formats
const (
	// Provider registry
	KeyProviderInfo     = "provider:info:%s"     // Format: provider:info:{provider_id}
	KeyProviderSeq      = "provider:seq"         // Counter assigning registration sequence numbers
	KeyProviderIndex    = "providers:index"      // Sorted set of provider IDs scored by registration sequence
	KeyProviderEligible = "providers:eligible:%s" // Format: providers:eligible:{service_type}
	KeyProviderGeo      = "providers:geo:%s"     // Format: providers:geo:{service_type}
)

// Redis hash fields
const (
	FieldLatitude     = "lat"
	FieldLongitude    = "lng"
	FieldLocality     = "locality"
	FieldTimestamp    = "ts"
	FieldAvailability = "availability"
	FieldApproval     = "approval"
	FieldServiceTypes = "service_types"
	FieldActiveReq    = "active_request_id"
	FieldSeq          = "seq"
)
