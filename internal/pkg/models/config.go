package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	APIKey   APIKeyConfig
	Rides    RidesConfig
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

// APIKeyConfig contains pre-shared secrets for non-user callers
type APIKeyConfig struct {
	// JobsKey authorizes the background-job trigger endpoints.
	JobsKey string
}

// RidesConfig contains ride lifecycle configuration
type RidesConfig struct {
	// StaleAfterHours is the grace period past departure before the
	// sweeper expires or auto-completes a ride.
	StaleAfterHours int
	// MaxSeatsPerBooking caps seats a single booking may request.
	MaxSeatsPerBooking int
	// JobLockTTLSeconds bounds how long a sweep may hold its job slot.
	JobLockTTLSeconds int
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level      string
	FilePath   string
	MaxSize    int64
	MaxAge     int
	MaxBackups int
	Compress   bool
}
