package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration values
type Config struct {
	Port    string
	GinMode string

	// APIURL is the RepX API base, signup requests go to {APIURL}/signup/organization
	APIURL     string
	APITimeout time.Duration

	SessionTTL         time.Duration
	DemoSimulatedDelay time.Duration

	AirtableAPIKey    string
	AirtableBaseID    string
	AirtableDemoTable string

	CORSAllowedOrigins []string

	RateLimitPerMinute int
	RateLimitBurst     int

	LogFormat string
	LogLevel  string
}

// AirtableEnabled reports whether demo bookings are forwarded to Airtable
func (c *Config) AirtableEnabled() bool {
	return c.AirtableAPIKey != "" && c.AirtableBaseID != "" && c.AirtableDemoTable != ""
}

// RateLimitEnabled reports whether submissions are rate limited. A rate of
// zero or less turns the limiter off.
func (c *Config) RateLimitEnabled() bool {
	return c.RateLimitPerMinute > 0
}

// LoadConfig reads configuration from environment variables, falling back to
// development defaults.
func LoadConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("API_URL", "http://localhost:5110/api")
	v.SetDefault("API_TIMEOUT", 30*time.Second)
	v.SetDefault("SESSION_TTL", 30*time.Minute)
	v.SetDefault("DEMO_SIMULATED_DELAY", 1500*time.Millisecond)
	v.SetDefault("AIRTABLE_DEMO_TABLE", "Demo Requests")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 20)
	v.SetDefault("RATE_LIMIT_BURST", 5)
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_LEVEL", "info")

	return &Config{
		Port:               v.GetString("PORT"),
		GinMode:            v.GetString("GIN_MODE"),
		APIURL:             v.GetString("API_URL"),
		APITimeout:         v.GetDuration("API_TIMEOUT"),
		SessionTTL:         v.GetDuration("SESSION_TTL"),
		DemoSimulatedDelay: v.GetDuration("DEMO_SIMULATED_DELAY"),
		AirtableAPIKey:     v.GetString("AIRTABLE_API_KEY"),
		AirtableBaseID:     v.GetString("AIRTABLE_BASE_ID"),
		AirtableDemoTable:  v.GetString("AIRTABLE_DEMO_TABLE"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		RateLimitBurst:     v.GetInt("RATE_LIMIT_BURST"),
		LogFormat:          v.GetString("LOG_FORMAT"),
		LogLevel:           v.GetString("LOG_LEVEL"),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
