package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`

	// Origins are websocket origin patterns allowed to connect. Empty
	// means any origin (development).
	Origins []string `mapstructure:"origins" yaml:"origins"`

	AuthSecret string        `mapstructure:"auth_secret" yaml:"auth_secret"`
	AuthIssuer string        `mapstructure:"auth_issuer" yaml:"auth_issuer"`
	TokenTTL   time.Duration `mapstructure:"token_ttl" yaml:"token_ttl"`

	// GuestTokensPerMinute caps guest token issuance; 0 disables the cap.
	GuestTokensPerMinute int `mapstructure:"guest_tokens_per_minute" yaml:"guest_tokens_per_minute"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:                 ":3001",
		ReadHeaderTimeout:    5 * time.Second,
		ShutdownTimeout:      5 * time.Second,
		LogLevel:             "info",
		AuthSecret:           "dev-secret-change-me",
		AuthIssuer:           "chesswire",
		TokenTTL:             24 * time.Hour,
		GuestTokensPerMinute: 60,
	}
}
