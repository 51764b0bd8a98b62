package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	APIKey   APIKeyConfig
	Services ServicesConfig
	Dispatch DispatchConfig
	Shared   SharedRideConfig
	Pricing  PricingConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Issuer     string
	Expiration int // minutes
}

// APIKeyConfig contains API keys for service-to-service communication
type APIKeyConfig struct {
	DispatchService string
	TripsService    string
	BillingService  string
}

// ServicesConfig contains URLs for the other services and external collaborators
type ServicesConfig struct {
	DispatchServiceURL string
	BillingServiceURL  string
	ResolverURL        string
	ResolverAPIKey     string
}

// DispatchConfig contains dispatch service specific configuration
type DispatchConfig struct {
	GeohashPrecision uint `json:"geohash_precision"` // Precision for locality bucket keys
}

// SharedRideConfig contains shared-ride grouping configuration
type SharedRideConfig struct {
	MaxGroupCapacity  int     `json:"max_group_capacity"`
	GroupWindowMin    int     `json:"group_window_min"`    // Age limit in minutes for joinable groups
	MaxDiscountPct    float64 `json:"max_discount_pct"`    // Cap on the pooling discount
	DiscountPerSeat   float64 `json:"discount_per_seat"`   // Discount percent added per occupied seat
	DefaultDetourPct  float64 `json:"default_detour_pct"`  // Used when the request omits a detour bound
	DefaultMaxWaitMin int     `json:"default_max_wait_min"`
}

// PricingConfig contains fare calculation configuration
type PricingConfig struct {
	Currency          string  `json:"currency"`
	SharedBaseFare    float64 `json:"shared_base_fare"`
	SharedPerKmRate   float64 `json:"shared_per_km_rate"`
	DeliveryBaseFee   float64 `json:"delivery_base_fee"`
	DeliveryPerKmRate float64 `json:"delivery_per_km_rate"`
	TaxRate           float64 `json:"tax_rate"`
	CommissionRate    float64 `json:"commission_rate"` // Default platform cut when the service type has none
}

// NewRelicConfig contains New Relic observability configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
