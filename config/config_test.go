package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Webhook: WebhookConfig{SecretMode: SecretModePerRepository},
		Storage: StorageConfig{Sessions: StoreMemory, Registrations: StoreMemory},
		Review:  ReviewConfig{DiffMode: DiffModeDiff},
		LLM: LLMConfig{
			Providers:    []ProviderConfig{{Name: "openai", Enabled: true, Priority: 1, APIKey: "k"}},
			InitialDelay: "5s",
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{
			name:    "unknown secret mode",
			mutate:  func(c *Config) { c.Webhook.SecretMode = "shared" },
			wantErr: "webhook.secret_mode",
		},
		{
			name:    "redis sessions without url",
			mutate:  func(c *Config) { c.Storage.Sessions = StoreRedis },
			wantErr: "redis.url",
		},
		{
			name:    "postgres registrations without dsn",
			mutate:  func(c *Config) { c.Storage.Registrations = StorePostgres },
			wantErr: "postgres.dsn",
		},
		{
			name:    "postgres sessions unsupported",
			mutate:  func(c *Config) { c.Storage.Sessions = StorePostgres },
			wantErr: "storage.sessions",
		},
		{
			name:    "unknown diff mode",
			mutate:  func(c *Config) { c.Review.DiffMode = "patch" },
			wantErr: "review.diff_mode",
		},
		{
			name:    "no providers",
			mutate:  func(c *Config) { c.LLM.Providers = nil },
			wantErr: "no LLM providers",
		},
		{
			name: "duplicate priority",
			mutate: func(c *Config) {
				c.LLM.Providers = append(c.LLM.Providers, ProviderConfig{Name: "huggingface", Enabled: true, Priority: 1})
			},
			wantErr: "duplicate priority",
		},
		{
			name:    "bad initial delay",
			mutate:  func(c *Config) { c.LLM.InitialDelay = "soon" },
			wantErr: "llm.initial_delay",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("RELAY_TEST_KEY", "sk-from-env")

	if got := expandEnvVar("${RELAY_TEST_KEY}"); got != "sk-from-env" {
		t.Errorf("expandEnvVar() = %q, want sk-from-env", got)
	}
	if got := expandEnvVar("literal"); got != "literal" {
		t.Errorf("expandEnvVar(literal) = %q", got)
	}
}

func TestProviderFromMap(t *testing.T) {
	p := providerFromMap(map[string]interface{}{
		"name":     "huggingface",
		"enabled":  true,
		"priority": float64(2),
		"model":    "org/model",
		"timeout":  "30s",
	})
	if p.Name != "huggingface" || !p.Enabled || p.Priority != 2 || p.Model != "org/model" || p.Timeout != "30s" {
		t.Errorf("providerFromMap() = %+v", p)
	}
}

func TestSplitListAndParseDuration(t *testing.T) {
	if got := splitList(" a, ,b "); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("splitList() = %v", got)
	}
	if got := ParseDuration("", time.Second); got != time.Second {
		t.Errorf("ParseDuration(empty) = %v", got)
	}
	if got := ParseDuration("250ms", time.Second); got != 250*time.Millisecond {
		t.Errorf("ParseDuration(250ms) = %v", got)
	}
	if got := ParseDuration("bogus", time.Second); got != time.Second {
		t.Errorf("ParseDuration(bogus) = %v", got)
	}
}
