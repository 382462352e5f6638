package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	ReadTimeout     time.Duration `mapstructure:"read_timeout"     validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"    validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`

	// CORSAllowedOrigins is a comma-separated list when set from the environment.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins" validate:"required,min=1,dive,required"`
}

// DatabaseConfig contains the MongoDB connection settings.
type DatabaseConfig struct {
	URI        string `mapstructure:"uri"        validate:"required,uri"`
	Name       string `mapstructure:"name"       validate:"required"`
	Collection string `mapstructure:"collection" validate:"required"`

	ConnectTimeout   time.Duration `mapstructure:"connect_timeout"   validate:"gt=0"`
	OperationTimeout time.Duration `mapstructure:"operation_timeout" validate:"gt=0"`
}
