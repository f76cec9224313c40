package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadDetectConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := LoadDetectConfig()
	assert.InDelta(t, 0.10, cfg.AmountTolerance, 0.0001)
	assert.Equal(t, 3, cfg.DayTolerance)
	assert.Equal(t, 2, cfg.MinClusterSize)
	assert.True(t, cfg.AmountCeiling.IsZero())
}

func TestLoadDetectConfig_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("detect.amount_tolerance", 0.05)
	viper.Set("detect.day_tolerance", 5)
	viper.Set("detect.min_cluster_size", 3)
	viper.Set("detect.amount_ceiling", "10000")

	cfg := LoadDetectConfig()
	assert.InDelta(t, 0.05, cfg.AmountTolerance, 0.0001)
	assert.Equal(t, 5, cfg.DayTolerance)
	assert.Equal(t, 3, cfg.MinClusterSize)
	assert.True(t, cfg.AmountCeiling.Equal(decimal.NewFromInt(10000)))
}

func TestLoadDetectConfig_IgnoresInvalidCeiling(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("detect.amount_ceiling", "not-a-number")
	cfg := LoadDetectConfig()
	assert.True(t, cfg.AmountCeiling.IsZero())
}

func TestLoadEngineConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	assert.Equal(t, 4, LoadEngineConfig().Workers)

	viper.Set("scan.workers", 8)
	assert.Equal(t, 8, LoadEngineConfig().Workers)
}

func TestExpandPath(t *testing.T) {
	t.Setenv("SMSLEDGER_TEST_DIR", "/tmp/ledger")

	assert.Equal(t, "/tmp/ledger/db", ExpandPath("$SMSLEDGER_TEST_DIR/db"))
	assert.Equal(t, "", ExpandPath(""))
	assert.NotContains(t, ExpandPath("~/data.db"), "~")
}
