package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/woodybriggs/ledger/internal/core/domain"
)

func TestLoadConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Setenv("PGSQL_URL", "postgres://localhost/ledger")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/ledger", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, 5*time.Minute, cfg.AccountCacheTTL)
	assert.Equal(t, domain.AccountsPayableID, cfg.Presets.AccountsPayable)
	assert.Equal(t, domain.AccountsReceivableID, cfg.Presets.AccountsReceivable)
	assert.Equal(t, domain.VatInputsID, cfg.Presets.VatInputs)
	assert.Equal(t, domain.VatOutputsID, cfg.Presets.VatOutputs)
	assert.Equal(t, domain.ExchangeGainLossID, cfg.Presets.ExchangeGainLoss)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("PORT", "9090")
	t.Setenv("ACCOUNT_CACHE_TTL", "30s")
	t.Setenv("PRESET_ACCOUNTS_PAYABLE", "2100")
	t.Setenv("IS_PRODUCTION", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.AccountCacheTTL)
	assert.Equal(t, "2100", cfg.Presets.AccountsPayable)
	assert.True(t, cfg.IsProduction)
}

func TestLoadConfig_CORSOrigins(t *testing.T) {
	viper.Reset()
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,,")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_InvalidCacheTTLFallsBack(t *testing.T) {
	viper.Reset()
	t.Setenv("ACCOUNT_CACHE_TTL", "soon")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.AccountCacheTTL)
}
