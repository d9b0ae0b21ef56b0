package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Strategy struct {
		PurchaseAmount           float64 `yaml:"purchase_amount"`
		PurchasePeriod           int     `yaml:"purchase_period"`
		HoldPeriod               int     `yaml:"hold_period"`
		SellPeriod               int     `yaml:"sell_period"`
		ExpectedAnnualizedReturn float64 `yaml:"expected_annualized_return"`
	} `yaml:"strategy"`
	Data struct {
		CSVPath     string `yaml:"csv_path"`
		DatabaseURL string `yaml:"database_url"`
		Ticker      string `yaml:"ticker"`
	} `yaml:"data"`
	Report struct {
		CSVPath  string `yaml:"csv_path"`
		XLSXPath string `yaml:"xlsx_path"`
		Verbose  bool   `yaml:"verbose"`
	} `yaml:"report"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is fine; overrides and defaults
// still apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("DCASWEEP_DATABASE_URL"); v != "" {
		cfg.Data.DatabaseURL = v
	}
	if v := os.Getenv("DCASWEEP_CSV_PATH"); v != "" {
		cfg.Data.CSVPath = v
	}
	if v := os.Getenv("DCASWEEP_TICKER"); v != "" {
		cfg.Data.Ticker = v
	}
	if v := os.Getenv("DCASWEEP_PURCHASE_AMOUNT"); v != "" {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parse DCASWEEP_PURCHASE_AMOUNT %q: %w", v, err)
		}
		cfg.Strategy.PurchaseAmount = amount
	}
	if v := os.Getenv("DCASWEEP_EXPECTED_RETURN"); v != "" {
		pct, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parse DCASWEEP_EXPECTED_RETURN %q: %w", v, err)
		}
		cfg.Strategy.ExpectedAnnualizedReturn = pct
	}

	// Defaults
	if cfg.Strategy.PurchaseAmount == 0 {
		cfg.Strategy.PurchaseAmount = 1000
	}
	if cfg.Strategy.PurchasePeriod == 0 {
		cfg.Strategy.PurchasePeriod = 18
	}
	if cfg.Strategy.SellPeriod == 0 {
		cfg.Strategy.SellPeriod = 10
	}
	if cfg.Strategy.ExpectedAnnualizedReturn == 0 {
		cfg.Strategy.ExpectedAnnualizedReturn = 5.0
	}

	return cfg, nil
}
