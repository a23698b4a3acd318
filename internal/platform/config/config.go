package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/woodybriggs/ledger/internal/core/domain"
)

// PresetAccounts holds the ids of the control accounts every posting relies on.
type PresetAccounts struct {
	AccountsPayable    string
	AccountsReceivable string
	VatInputs          string
	VatOutputs         string
	ExchangeGainLoss   string
}

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	LogLevel           string
	MigrationsPath     string
	RateLimit          string // ulule formatted, e.g. "100-M"
	CORSAllowedOrigins []string
	AccountCacheTTL    time.Duration
	Presets            PresetAccounts
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	setDefaults()

	// Actual environment variables override .env values and defaults.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cacheTTLStr := viper.GetString("ACCOUNT_CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil {
		cacheTTL = 5 * time.Minute
		log.Printf("Warning: Invalid value for ACCOUNT_CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cacheTTL.String())
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.AccountCacheTTL = cacheTTL
	cfg.Presets = PresetAccounts{
		AccountsPayable:    viper.GetString("PRESET_ACCOUNTS_PAYABLE"),
		AccountsReceivable: viper.GetString("PRESET_ACCOUNTS_RECEIVABLE"),
		VatInputs:          viper.GetString("PRESET_VAT_INPUTS"),
		VatOutputs:         viper.GetString("PRESET_VAT_OUTPUTS"),
		ExchangeGainLoss:   viper.GetString("PRESET_EXCHANGE_GAIN_LOSS"),
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("ACCOUNT_CACHE_TTL", "5m")
	viper.SetDefault("PRESET_ACCOUNTS_PAYABLE", domain.AccountsPayableID)
	viper.SetDefault("PRESET_ACCOUNTS_RECEIVABLE", domain.AccountsReceivableID)
	viper.SetDefault("PRESET_VAT_INPUTS", domain.VatInputsID)
	viper.SetDefault("PRESET_VAT_OUTPUTS", domain.VatOutputsID)
	viper.SetDefault("PRESET_EXCHANGE_GAIN_LOSS", domain.ExchangeGainLossID)
}

// splitList splits a comma separated value, dropping empty entries.
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
