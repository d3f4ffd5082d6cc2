package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	SecretModePerRepository = "per_repository"
	SecretModeGlobal        = "global"

	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"

	DiffModeDiff  = "diff"
	DiffModeFiles = "files"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	OTel       OTelConfig

	// GitHub and inbound webhooks
	GitHub  GitHubConfig
	Webhook WebhookConfig
	Session SessionConfig

	// Storage
	Storage  StorageConfig
	Redis    RedisConfig
	Postgres PostgresConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Review post-processing and publishing
	Review ReviewConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port         int
	Mode         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

type GitHubConfig struct {
	ClientID      string
	ClientSecret  string
	RedirectURL   string
	OAuthTokenURL string
	APIBaseURL    string
	// WebhookURL is the public address of POST /webhook registered on repositories
	WebhookURL string
	// BotToken is the fallback credential in global secret mode
	BotToken string
	// NgrokAPIURL is queried for a public tunnel when WebhookURL is empty
	NgrokAPIURL string
}

type WebhookConfig struct {
	SecretMode      string
	Secret          string
	Async           bool
	ProcessTimeout  time.Duration
	MaxBodyBytes    int64
	RateLimitPerMin int
	AllowedIPs      []string
}

type SessionConfig struct {
	TTL          time.Duration
	MaxEntries   int
	CookieName   string
	CookieSecure bool
}

type StorageConfig struct {
	Sessions      string
	Registrations string
	// MemoryMaxRegistrations bounds the in-memory registration store. The
	// least recently used registration is evicted past it; use redis or
	// postgres for more repositories.
	MemoryMaxRegistrations int
}

type RedisConfig struct {
	URL       string
	KeyPrefix string
}

type PostgresConfig struct {
	DSN      string
	MaxConns int32
	MinConns int32
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	MaxRetries      int              `yaml:"max_retries"`
	InitialDelay    string           `yaml:"initial_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
	Temperature     float64          `yaml:"temperature"`
	MaxTokens       int              `yaml:"max_tokens"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type ReviewConfig struct {
	DiffMode         string
	MaxDiffChars     int
	MinBodyChars     int
	MinBodyLines     int
	PatchTitle       bool
	PatchDescription bool
	FallbackTitle    string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ReadTimeout = viper.GetDuration("http_server.read_timeout")
	cfg.HTTPServer.WriteTimeout = viper.GetDuration("http_server.write_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.GetString("cors.allowed_origins"))

	cfg.OTel.Endpoint = viper.GetString("otel.endpoint")
	cfg.OTel.Headers = viper.GetString("otel.headers")
	cfg.OTel.ServiceName = viper.GetString("otel.service_name")
	cfg.OTel.ServiceVersion = viper.GetString("otel.service_version")
	if endpoint := viper.GetString("otel_exporter_otlp_endpoint"); endpoint != "" {
		cfg.OTel.Endpoint = endpoint
	}

	// GitHub
	cfg.GitHub.ClientID = viper.GetString("github.client_id")
	cfg.GitHub.ClientSecret = viper.GetString("github.client_secret")
	cfg.GitHub.RedirectURL = viper.GetString("github.redirect_url")
	cfg.GitHub.OAuthTokenURL = viper.GetString("github.oauth_token_url")
	cfg.GitHub.APIBaseURL = viper.GetString("github.api_base_url")
	cfg.GitHub.WebhookURL = viper.GetString("github.webhook_url")
	cfg.GitHub.BotToken = viper.GetString("github.bot_token")
	cfg.GitHub.NgrokAPIURL = viper.GetString("github.ngrok_api_url")
	if clientID := viper.GetString("github_client_id"); clientID != "" {
		cfg.GitHub.ClientID = clientID
	}
	if clientSecret := viper.GetString("github_client_secret"); clientSecret != "" {
		cfg.GitHub.ClientSecret = clientSecret
	}
	if botToken := viper.GetString("github_bot_token"); botToken != "" {
		cfg.GitHub.BotToken = botToken
	}

	// Webhooks
	cfg.Webhook.SecretMode = viper.GetString("webhook.secret_mode")
	cfg.Webhook.Secret = viper.GetString("webhook.secret")
	if webhookSecret := viper.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Webhook.Secret = webhookSecret
	}
	cfg.Webhook.Async = viper.GetBool("webhook.async")
	cfg.Webhook.ProcessTimeout = viper.GetDuration("webhook.process_timeout")
	cfg.Webhook.MaxBodyBytes = viper.GetInt64("webhook.max_body_bytes")
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	// Split allowed IPs since viper might not parse array seamlessly from env
	cfg.Webhook.AllowedIPs = splitList(viper.GetString("webhook.allowed_ips"))

	// Sessions
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxEntries = viper.GetInt("session.max_entries")
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.CookieSecure = viper.GetBool("session.cookie_secure")

	// Storage
	cfg.Storage.Sessions = viper.GetString("storage.sessions")
	cfg.Storage.Registrations = viper.GetString("storage.registrations")
	cfg.Storage.MemoryMaxRegistrations = viper.GetInt("storage.memory_max_registrations")
	cfg.Redis.URL = viper.GetString("redis.url")
	cfg.Redis.KeyPrefix = viper.GetString("redis.key_prefix")
	if redisURL := viper.GetString("redis_url"); redisURL != "" {
		cfg.Redis.URL = redisURL
	}
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	cfg.Postgres.MaxConns = viper.GetInt32("postgres.max_conns")
	cfg.Postgres.MinConns = viper.GetInt32("postgres.min_conns")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.MaxRetries = viper.GetInt("llm.max_retries")
	cfg.LLM.InitialDelay = viper.GetString("llm.initial_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")
	cfg.LLM.Temperature = viper.GetFloat64("llm.temperature")
	cfg.LLM.MaxTokens = viper.GetInt("llm.max_tokens")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, providerFromMap(providerMap))
				}
			}
		}
	}
	// Single-provider shortcut for deployments without a config file
	if len(cfg.LLM.Providers) == 0 {
		if key := viper.GetString("llm_api_key"); key != "" {
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     viper.GetString("llm.default_provider"),
				Enabled:  true,
				Priority: 1,
				APIKey:   key,
				Model:    viper.GetString("llm.default_model"),
			})
		}
	}

	// Review
	cfg.Review.DiffMode = viper.GetString("review.diff_mode")
	cfg.Review.MaxDiffChars = viper.GetInt("review.max_diff_chars")
	cfg.Review.MinBodyChars = viper.GetInt("review.min_body_chars")
	cfg.Review.MinBodyLines = viper.GetInt("review.min_body_lines")
	cfg.Review.PatchTitle = viper.GetBool("review.patch_title")
	cfg.Review.PatchDescription = viper.GetBool("review.patch_description")
	cfg.Review.FallbackTitle = viper.GetString("review.fallback_title")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.read_timeout", "15s")
	viper.SetDefault("http_server.write_timeout", "150s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("otel.service_name", "pr-review-relay")
	viper.SetDefault("otel.service_version", "dev")

	viper.SetDefault("webhook.secret_mode", SecretModePerRepository)
	viper.SetDefault("webhook.async", false)
	viper.SetDefault("webhook.process_timeout", "2m")
	viper.SetDefault("webhook.max_body_bytes", 1<<20)
	viper.SetDefault("webhook.rate_limit_per_min", 60)

	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("session.max_entries", 10000)
	viper.SetDefault("session.cookie_name", "session_id")
	viper.SetDefault("session.cookie_secure", true)

	viper.SetDefault("storage.sessions", StoreMemory)
	viper.SetDefault("storage.registrations", StoreMemory)
	viper.SetDefault("storage.memory_max_registrations", 10000)
	viper.SetDefault("redis.key_prefix", "relay:")

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.max_retries", 3)
	viper.SetDefault("llm.initial_delay", "5s")
	viper.SetDefault("llm.max_total_timeout", "120s")
	viper.SetDefault("llm.temperature", 0.2)
	viper.SetDefault("llm.max_tokens", 1500)
	viper.SetDefault("llm.default_provider", "openai")

	viper.SetDefault("review.diff_mode", DiffModeDiff)
	viper.SetDefault("review.max_diff_chars", 12000)
	viper.SetDefault("review.patch_title", true)
	viper.SetDefault("review.patch_description", false)
	viper.SetDefault("review.fallback_title", "Automated review")
}

// Validate checks cross-field constraints after loading
func (c *Config) Validate() error {
	if err := validateLLMConfig(&c.LLM); err != nil {
		return err
	}

	switch c.Webhook.SecretMode {
	case SecretModePerRepository, SecretModeGlobal:
	default:
		return fmt.Errorf("webhook.secret_mode: unknown mode %q", c.Webhook.SecretMode)
	}

	switch c.Storage.Sessions {
	case StoreMemory:
	case StoreRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("storage.sessions=redis requires redis.url")
		}
	default:
		return fmt.Errorf("storage.sessions: unknown store %q", c.Storage.Sessions)
	}

	switch c.Storage.Registrations {
	case StoreMemory:
	case StoreRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("storage.registrations=redis requires redis.url")
		}
	case StorePostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("storage.registrations=postgres requires postgres.dsn")
		}
	default:
		return fmt.Errorf("storage.registrations: unknown store %q", c.Storage.Registrations)
	}

	switch c.Review.DiffMode {
	case DiffModeDiff, DiffModeFiles:
	default:
		return fmt.Errorf("review.diff_mode: unknown mode %q", c.Review.DiffMode)
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured - please add llm.providers section to config.yaml or set LLM_API_KEY")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	if cfg.InitialDelay != "" {
		if _, err := time.ParseDuration(cfg.InitialDelay); err != nil {
			return fmt.Errorf("llm.initial_delay: %w", err)
		}
	}
	if cfg.MaxTotalTimeout != "" {
		if _, err := time.ParseDuration(cfg.MaxTotalTimeout); err != nil {
			return fmt.Errorf("llm.max_total_timeout: %w", err)
		}
	}

	return nil
}

func providerFromMap(m map[string]interface{}) ProviderConfig {
	return ProviderConfig{
		Name:     getStringFromMap(m, "name"),
		Enabled:  getBoolFromMap(m, "enabled"),
		Priority: getIntFromMap(m, "priority"),
		APIKey:   expandEnvVar(getStringFromMap(m, "api_key")),
		BaseURL:  getStringFromMap(m, "base_url"),
		Model:    getStringFromMap(m, "model"),
		Timeout:  getStringFromMap(m, "timeout"),
	}
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

// ParseDuration parses an optional duration string, returning def when empty.
func ParseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
