package config

import (
	"fmt"
	"math"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Market   Market
}

type Market struct {
	InterestRate       float64       `env:"INTEREST_RATE" envDefault:"0.04"`
	BidProcessingDelay time.Duration `env:"BID_PROCESSING_DELAY" envDefault:"100ms"`
	SeedListings       bool          `env:"SEED_LISTINGS" envDefault:"true"`
}

// Load reads configuration from the environment, after loading an optional .env file
func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}
	if rate := config.Market.InterestRate; rate < 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return Config{}, fmt.Errorf("INTEREST_RATE must be a finite, non-negative number, got %v", rate)
	}
	if config.Market.BidProcessingDelay < 0 {
		return Config{}, fmt.Errorf("BID_PROCESSING_DELAY must not be negative, got %v", config.Market.BidProcessingDelay)
	}

	return config, nil
}

// Addr returns the listen address for the HTTP server
func (c Config) Addr() string {
	return ":" + c.Port
}
