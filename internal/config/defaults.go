package config

import "time"

// Hardcoded fallbacks applied when no other configuration source provides a
// value. The token key, issuer, audience, and credential defaults reproduce
// the original deployment and are a known security gap; they exist so the
// service starts unconfigured, not as production values.
const (
	DefaultHTTPAddress    = ":8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultEnvironment    = "development"

	DefaultTokenSignKey  = "YourSuperSecretKey12345678901234567890"
	DefaultTokenIssuer   = "ParImparAPI"
	DefaultTokenAudience = "ParImparAPI"
	DefaultTokenDuration = 24 * time.Hour

	DefaultUsername = "admin"
	DefaultPassword = "123456"
)

// defaultConfig returns the configuration layer holding every hardcoded
// fallback. It is merged last, so it only fills fields that remained zero
// after env, flag, and JSON parsing.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment: DefaultEnvironment,
		},
		Auth: Auth{
			TokenSignKey:  DefaultTokenSignKey,
			TokenIssuer:   DefaultTokenIssuer,
			TokenAudience: DefaultTokenAudience,
			TokenDuration: DefaultTokenDuration,
			Username:      DefaultUsername,
			Password:      DefaultPassword,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}
