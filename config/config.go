package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// Config holds application configuration.
type Config struct {
	Env         Environment
	Port        string
	LogLevel    string
	LogFormat   string
	SiteBaseURL string
	Backend     BackendConfig
	Vault       VaultConfig
	// Warnings collects non-fatal configuration problems for the caller
	// to log once the logger is up.
	Warnings []string
}

// BackendConfig holds access to the hosted data/auth/storage service.
type BackendConfig struct {
	URL           string
	AnonKey       string
	ServiceKey    string
	StorageBucket string
}

// Configured reports whether the hosted backend can be reached at all.
// When false the site serves placeholder data and treats every request
// as unauthenticated.
func (b BackendConfig) Configured() bool {
	return strings.TrimSpace(b.URL) != "" && strings.TrimSpace(b.AnonKey) != ""
}

// VaultConfig holds the optional Vault secret source for backend keys.
type VaultConfig struct {
	Addr        string
	ReadToken   string
	SecretPath  string
	TLSInsecure bool
}

// Enabled reports whether backend secrets should be read from Vault.
func (v VaultConfig) Enabled() bool {
	return strings.TrimSpace(v.Addr) != "" && strings.TrimSpace(v.ReadToken) != "" && strings.TrimSpace(v.SecretPath) != ""
}

// Load reads configuration from environment variables, fetching backend
// secrets from Vault when a secret source is configured. Missing backend
// configuration is not an error: the caller degrades to placeholder data.
func Load() Config {
	_ = godotenv.Load()

	env := parseEnv(getEnv("APP_ENV", "dev"))
	cfg := Config{
		Env:         env,
		Port:        getEnv("PORT", "8080"),
		LogLevel:    getEnv("LOG_LEVEL", defaultLogLevel(env)),
		LogFormat:   getEnv("LOG_FORMAT", defaultLogFormat(env)),
		SiteBaseURL: strings.TrimRight(getEnv("SITE_BASE_URL", "https://boxpro.ro"), "/"),
		Backend: BackendConfig{
			URL:           strings.TrimRight(getEnv("SUPABASE_URL", ""), "/"),
			AnonKey:       getEnv("SUPABASE_ANON_KEY", ""),
			ServiceKey:    getEnv("SUPABASE_SERVICE_KEY", ""),
			StorageBucket: getEnv("STORAGE_BUCKET", "photos"),
		},
		Vault: VaultConfig{
			Addr:        getEnv("VAULT_ADDR", ""),
			ReadToken:   getEnv("VAULT_READ_TOKEN", ""),
			SecretPath:  getEnv("VAULT_SECRET_PATH", ""),
			TLSInsecure: strings.ToLower(getEnv("VAULT_TLS_INSECURE", "false")) == "true",
		},
	}

	if cfg.Vault.Enabled() {
		if err := applyVaultSecrets(&cfg.Backend, cfg.Vault); err != nil {
			cfg.Warnings = append(cfg.Warnings, "failed to read backend secrets from Vault, falling back to environment: "+err.Error())
		}
	}

	return cfg
}

// IsDev returns true if the environment is development.
func (c Config) IsDev() bool {
	return c.Env == EnvDev
}

// IsProd returns true if the environment is production.
func (c Config) IsProd() bool {
	return c.Env == EnvProd
}

func parseEnv(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prod", "production":
		return EnvProd
	default:
		return EnvDev
	}
}

func defaultLogLevel(env Environment) string {
	switch env {
	case EnvProd:
		return "info"
	default:
		return "debug"
	}
}

func defaultLogFormat(env Environment) string {
	switch env {
	case EnvProd:
		return "json"
	default:
		return "console"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
