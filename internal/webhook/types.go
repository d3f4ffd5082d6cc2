package webhook

import "time"

// Secret modes. Per-repository is the default; global keeps a single
// shared secret from configuration.
const (
	SecretModePerRepository = "per_repository"
	SecretModeGlobal        = "global"
)

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	SecretMode      string
	Secret          string   // Shared secret, global mode only
	BotToken        string   // Credential for unregistered repositories, global mode only
	AllowedIPs      []string // IP whitelist (optional)
	RateLimitPerMin int      // Max deliveries per repository per minute, 0 disables
}

// HandlerConfig controls how accepted deliveries are processed.
type HandlerConfig struct {
	Async          bool
	ProcessTimeout time.Duration
	MaxBodyBytes   int64
}
