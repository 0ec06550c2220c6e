package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/ogadoctor/triage-api/internal/model"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	Pharmacy  PharmacyConfig  `mapstructure:"pharmacy"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// AnalyticsConfig controls the generated historical data set and the
// revenue estimate shown on the analytics page.
type AnalyticsConfig struct {
	Seed               int64         `mapstructure:"seed"`
	HistoryDays        int           `mapstructure:"history_days"`
	ConsultationFee    int64         `mapstructure:"consultation_fee"`
	CacheTTL           time.Duration `mapstructure:"cache_ttl"`
	CacheSweepInterval time.Duration `mapstructure:"cache_sweep_interval"`
}

// PharmacyConfig seeds the settings store.
type PharmacyConfig struct {
	Name    string `mapstructure:"name"`
	Phone   string `mapstructure:"phone"`
	Email   string `mapstructure:"email"`
	Address string `mapstructure:"address"`
	Hours   string `mapstructure:"hours"`
}

// PharmacyInfo converts the configured defaults into the settings model.
func (p PharmacyConfig) PharmacyInfo() model.PharmacyInfo {
	return model.PharmacyInfo{
		Name:    p.Name,
		Phone:   p.Phone,
		Email:   p.Email,
		Address: p.Address,
		Hours:   p.Hours,
	}
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Defaults cover the whole config, a missing file is not fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 10*time.Second)
	viper.SetDefault("server.write_timeout", 10*time.Second)
	viper.SetDefault("server.shutdown_timeout", 5*time.Second)

	viper.SetDefault("rate_limit.rps", 50.0)
	viper.SetDefault("rate_limit.burst", 100)

	viper.SetDefault("analytics.seed", 1)
	viper.SetDefault("analytics.history_days", 30)
	viper.SetDefault("analytics.consultation_fee", 150000)
	viper.SetDefault("analytics.cache_ttl", time.Minute)
	viper.SetDefault("analytics.cache_sweep_interval", 5*time.Minute)

	viper.SetDefault("pharmacy.name", "Blue Pill Pharmacy")
	viper.SetDefault("pharmacy.phone", "+234 803 XXX XXXX")
	viper.SetDefault("pharmacy.email", "contact@bluepill.ng")
	viper.SetDefault("pharmacy.address", "123 Main Street\nAwka, Anambra State")
	viper.SetDefault("pharmacy.hours", "8AM - 8PM Mon-Sat")
}
