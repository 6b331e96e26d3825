package models

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	Logger    LoggerConfig
	Presence  PresenceConfig
	Dispatch  DispatchConfig
	Scheduler SchedulerConfig
}

// AppConfig holds general application settings
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig holds PostgreSQL connection settings
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

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig holds NATS connection settings
type NATSConfig struct {
	URL string
}

// JWTConfig holds JWT settings for WebSocket authentication
type JWTConfig struct {
	Secret     string
	Expiration int
	Issuer     string
}

// LoggerConfig holds logger settings
type LoggerConfig struct {
	Level    string
	FilePath string
}

// PresenceConfig holds driver presence settings
type PresenceConfig struct {
	TTLSeconds       int
	RideCacheSeconds int
}

// DispatchConfig holds offer coordinator settings
type DispatchConfig struct {
	OfferLeaseSeconds int
	RadiusStepsM      []float64
	CandidateLimit    int
}

// SchedulerConfig holds the scheduled dispatch trigger settings
type SchedulerConfig struct {
	IntervalSeconds       int
	BatchSize             int
	DispatchOffsetMinutes int
}
