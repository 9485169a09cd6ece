package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string          `mapstructure:"environment"`
	LogLevel    string          `mapstructure:"log_level"`
	Server      ServerConfig    `mapstructure:"server"`
	Telemetry   TelemetryConfig `mapstructure:"telemetry"`
	Oracle      OracleConfig    `mapstructure:"oracle"`
}

type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type TelemetryConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	OTLPEndpoint   string  `mapstructure:"otlp_endpoint"`
	Insecure       bool    `mapstructure:"insecure"`
	ServiceName    string  `mapstructure:"service_name"`
	ServiceVersion string  `mapstructure:"service_version"`
	SampleRatio    float64 `mapstructure:"sample_ratio"`
	LogLevel       string  `mapstructure:"log_level"`
}

// OracleConfig tunes the presentation-side constraints and analysis
// thresholds. The calculators themselves accept any numeric input; these
// bounds mirror what the dashboard exposed to its user.
type OracleConfig struct {
	MinOutcomes          int     `mapstructure:"min_outcomes"`
	MaxOutcomes          int     `mapstructure:"max_outcomes"`
	MinOdds              float64 `mapstructure:"min_odds"`
	MaxOdds              float64 `mapstructure:"max_odds"`
	CompressionThreshold float64 `mapstructure:"compression_threshold"`
	HighlightDistance    float64 `mapstructure:"highlight_distance"`
	ProximityNear        float64 `mapstructure:"proximity_near"`
	ProximityApproaching float64 `mapstructure:"proximity_approaching"`
	DefaultTimeframe     int     `mapstructure:"default_timeframe_minutes"`
	TrendSMAPeriod       int     `mapstructure:"trend_sma_period"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath(".")

	// Set default values
	setDefaults()

	// Enable environment variable support
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// Config file not found, use defaults and environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Normalize environment to lowercase for consistent comparison
	config.Environment = strings.ToLower(config.Environment)

	if err := validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func validate(config *Config) error {
	if config.Oracle.MinOutcomes < 1 {
		return fmt.Errorf("oracle.min_outcomes must be at least 1, got %d", config.Oracle.MinOutcomes)
	}
	if config.Oracle.MaxOutcomes < config.Oracle.MinOutcomes {
		return fmt.Errorf("oracle.max_outcomes (%d) must not be below oracle.min_outcomes (%d)",
			config.Oracle.MaxOutcomes, config.Oracle.MinOutcomes)
	}
	if config.Oracle.MinOdds <= 0 {
		return fmt.Errorf("oracle.min_odds must be positive, got %v", config.Oracle.MinOdds)
	}
	if config.Oracle.MaxOdds < config.Oracle.MinOdds {
		return fmt.Errorf("oracle.max_odds (%v) must not be below oracle.min_odds (%v)",
			config.Oracle.MaxOdds, config.Oracle.MinOdds)
	}
	if config.Oracle.ProximityNear > config.Oracle.ProximityApproaching {
		return fmt.Errorf("oracle.proximity_near (%v) must not exceed oracle.proximity_approaching (%v)",
			config.Oracle.ProximityNear, config.Oracle.ProximityApproaching)
	}
	if config.Oracle.TrendSMAPeriod <= 0 {
		return fmt.Errorf("oracle.trend_sma_period must be positive, got %d", config.Oracle.TrendSMAPeriod)
	}
	if config.Telemetry.SampleRatio < 0 || config.Telemetry.SampleRatio > 1 {
		return fmt.Errorf("telemetry.sample_ratio must be between 0 and 1, got %v", config.Telemetry.SampleRatio)
	}
	return nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment", "development")
	viper.SetDefault("log_level", "info")

	// Server
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Telemetry
	viper.SetDefault("telemetry.enabled", false)
	viper.SetDefault("telemetry.otlp_endpoint", "")
	viper.SetDefault("telemetry.insecure", true)
	viper.SetDefault("telemetry.service_name", "trioracle-api")
	viper.SetDefault("telemetry.service_version", "1.0.0")
	viper.SetDefault("telemetry.sample_ratio", 0.2)
	viper.SetDefault("telemetry.log_level", "info")

	// Oracle
	viper.SetDefault("oracle.min_outcomes", 2)
	viper.SetDefault("oracle.max_outcomes", 3)
	viper.SetDefault("oracle.min_odds", 0.01)
	viper.SetDefault("oracle.max_odds", 100.0)
	viper.SetDefault("oracle.compression_threshold", 1000.0)
	viper.SetDefault("oracle.highlight_distance", 1000.0)
	viper.SetDefault("oracle.proximity_near", 500.0)
	viper.SetDefault("oracle.proximity_approaching", 1000.0)
	viper.SetDefault("oracle.default_timeframe_minutes", 60)
	viper.SetDefault("oracle.trend_sma_period", 50)
}
