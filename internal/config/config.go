package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	Brewing BrewingConfig `mapstructure:"brewing" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// BrewingConfig contains the constants applied by the gravity calculations.
type BrewingConfig struct {
	PapazianConstant   float64 `mapstructure:"papazian_constant"   validate:"gt=0"`
	CorrectionConstant float64 `mapstructure:"correction_constant" validate:"gt=0"`
}
