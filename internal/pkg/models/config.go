package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Pricing  PricingConfig
	Match    MatchConfig
	Notify   NotifyConfig
	Logger   LoggerConfig
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
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
	Expiration int // in minutes
	Issuer     string
}

// PricingConfig contains fare and settlement configuration.
// Fare = max(MinimumFare, distanceKm * PerKmRate); CommissionPerRide is a
// flat amount charged once per completed ride.
type PricingConfig struct {
	PerKmRate         float64 `json:"per_km_rate"`
	MinimumFare       float64 `json:"minimum_fare"`
	CommissionPerRide float64 `json:"commission_per_ride"`
	Currency          string  `json:"currency"`
}

// MatchConfig contains driver discovery configuration
type MatchConfig struct {
	SearchRadiusKm float64 `json:"search_radius_km"`
}

// NotifyConfig contains notification relay configuration
type NotifyConfig struct {
	QueueSize int `json:"queue_size"`
}
