package config

import (
	"strings"
	"time"
)

// UpstreamConfig contains the LMS backend API configuration. Every admin
// page is a view over this API; there is no local database.
type UpstreamConfig struct {
	// BaseURL is the origin of the LMS backend. The /api/v1 prefix is
	// appended by the client, not configured here.
	BaseURL string `env:"LMS_API_URL" envDefault:"http://localhost:5000"`

	// Timeout bounds every upstream call, uploads included.
	Timeout time.Duration `env:"LMS_API_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to upstream configuration values.
func (u *UpstreamConfig) Sanitize() {
	u.BaseURL = strings.TrimRight(strings.TrimSpace(u.BaseURL), "/")
	if u.Timeout <= 0 {
		u.Timeout = 10 * time.Second
	}
}
