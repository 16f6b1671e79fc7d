package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/YohanWijaya10/Nano-Challenge-01/internal/display"
	"github.com/YohanWijaya10/Nano-Challenge-01/internal/storage"
)

// Env var names. Flags win over these; these win over defaults.
const (
	EnvStore    = "RECIPEBOOK_STORE"
	EnvData     = "RECIPEBOOK_DATA"
	EnvFormat   = "RECIPEBOOK_FORMAT"
	EnvCurrency = "RECIPEBOOK_CURRENCY"
	EnvLogFile  = "RECIPEBOOK_LOG_FILE"
)

// config is the resolved runtime configuration.
type config struct {
	Store    string
	Data     string
	Format   string
	Currency string
	LogFile  string
	Verbose  bool
	Quiet    bool
}

func defaultConfig() config {
	return config{
		Store:    storage.BackendFile,
		Data:     ".recipebook",
		Format:   "json",
		Currency: display.DefaultCurrency,
		LogFile:  ".recipebook/recipebook.log",
	}
}

// loadEnv reads .env (if any) into the process environment and then
// overlays the RECIPEBOOK_* variables on cfg.
func loadEnv(cfg config) config {
	_ = godotenv.Load()

	overlay := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	overlay(&cfg.Store, EnvStore)
	overlay(&cfg.Data, EnvData)
	overlay(&cfg.Format, EnvFormat)
	overlay(&cfg.Currency, EnvCurrency)
	overlay(&cfg.LogFile, EnvLogFile)
	return cfg
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(cfg config, flags *pflag.FlagSet, set config) config {
	if flags.Changed("store") {
		cfg.Store = set.Store
	}
	if flags.Changed("data") {
		cfg.Data = set.Data
	}
	if flags.Changed("format") {
		cfg.Format = set.Format
	}
	if flags.Changed("currency") {
		cfg.Currency = set.Currency
	}
	if flags.Changed("log-file") {
		cfg.LogFile = set.LogFile
	}
	cfg.Verbose = set.Verbose
	cfg.Quiet = set.Quiet
	return cfg
}
