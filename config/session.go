package config

import "time"

// SessionConfig contains session lifetime configuration.
type SessionConfig struct {
	// TTL is the fallback session lifetime used when the upstream token
	// carries no usable expiry claim.
	TTL time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.TTL <= 0 {
		s.TTL = 24 * time.Hour
	}
}
