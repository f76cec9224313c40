// Package config provides configuration utilities for the application.
package config

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/pennywiseai/smsledger/internal/detect"
	"github.com/pennywiseai/smsledger/internal/engine"
)

// LoadDetectConfig builds the detector tuning from Viper. Values come from
// the config file or SMSLEDGER_ environment variables; unset keys fall
// through to the detector defaults.
func LoadDetectConfig() detect.Config {
	cfg := detect.DefaultConfig()

	if v := viper.GetFloat64("detect.amount_tolerance"); v > 0 {
		cfg.AmountTolerance = v
	}
	if v := viper.GetInt("detect.day_tolerance"); v > 0 {
		cfg.DayTolerance = v
	}
	if v := viper.GetInt("detect.min_cluster_size"); v >= 2 {
		cfg.MinClusterSize = v
	}
	if v := viper.GetString("detect.amount_ceiling"); v != "" {
		if ceiling, err := decimal.NewFromString(v); err == nil && ceiling.IsPositive() {
			cfg.AmountCeiling = ceiling
		}
	}

	return cfg
}

// LoadEngineConfig builds the scan engine tuning from Viper.
func LoadEngineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	if v := viper.GetInt("scan.workers"); v > 0 {
		cfg.Workers = v
	}
	return cfg
}
