package config

import (
	"log"
	"os"
	"strconv"

	"github.com/angkutin/angkutin/internal/pkg/models"
	"github.com/joho/godotenv"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 0)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 0)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 0)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 0)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)

	// Service API keys
	configs.APIKey.DispatchService = GetEnv("DISPATCH_SERVICE_API_KEY", "")
	configs.APIKey.TripsService = GetEnv("TRIPS_SERVICE_API_KEY", "")
	configs.APIKey.BillingService = GetEnv("BILLING_SERVICE_API_KEY", "")

	// Services config
	configs.Services.DispatchServiceURL = GetEnv("DISPATCH_SERVICE_URL", "http://localhost:9993")
	configs.Services.BillingServiceURL = GetEnv("BILLING_SERVICE_URL", "http://localhost:9992")
	configs.Services.ResolverURL = GetEnv("RESOLVER_URL", "")
	configs.Services.ResolverAPIKey = GetEnv("RESOLVER_API_KEY", "")

	// Dispatch config
	configs.Dispatch.GeohashPrecision = uint(GetEnvAsInt("DISPATCH_GEOHASH_PRECISION", 6))

	// Shared-ride config
	configs.Shared.MaxGroupCapacity = GetEnvAsInt("SHARED_MAX_GROUP_CAPACITY", 4)
	configs.Shared.GroupWindowMin = GetEnvAsInt("SHARED_GROUP_WINDOW_MIN", 30)
	configs.Shared.MaxDiscountPct = GetEnvAsFloat("SHARED_MAX_DISCOUNT_PCT", 40)
	configs.Shared.DiscountPerSeat = GetEnvAsFloat("SHARED_DISCOUNT_PER_SEAT", 10)
	configs.Shared.DefaultDetourPct = GetEnvAsFloat("SHARED_DEFAULT_DETOUR_PCT", 20)
	configs.Shared.DefaultMaxWaitMin = GetEnvAsInt("SHARED_DEFAULT_MAX_WAIT_MIN", 10)

	// Pricing config
	configs.Pricing.Currency = GetEnv("PRICING_CURRENCY", "IDR")
	configs.Pricing.SharedBaseFare = GetEnvAsFloat("PRICING_SHARED_BASE_FARE", 5)
	configs.Pricing.SharedPerKmRate = GetEnvAsFloat("PRICING_SHARED_PER_KM_RATE", 1.5)
	configs.Pricing.DeliveryBaseFee = GetEnvAsFloat("PRICING_DELIVERY_BASE_FEE", 3)
	configs.Pricing.DeliveryPerKmRate = GetEnvAsFloat("PRICING_DELIVERY_PER_KM_RATE", 1)
	configs.Pricing.TaxRate = GetEnvAsFloat("PRICING_TAX_RATE", 0.05)
	configs.Pricing.CommissionRate = GetEnvAsFloat("PRICING_COMMISSION_RATE", 0.18)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
