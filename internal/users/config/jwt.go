package config

import "time"

// JWTConfig содержит настройки для JWT токенов.
type JWTConfig struct {
	Issuer               string `yaml:"issuer" env:"USERS_JWT_ISSUER" env-default:"userhive"`
	Audience             string `yaml:"audience" env:"USERS_JWT_AUDIENCE" env-default:"userhive-api"`
	Secret               string `yaml:"secret" env:"USERS_JWT_SECRET" env-default:"super-secret-key-change-me-in-production"`
	TokenLifetimeMinutes int    `yaml:"token_lifetime_minutes" env:"USERS_JWT_TOKEN_LIFETIME_MINUTES" env-default:"30"`
}

// GetTokenLifetime возвращает время жизни токена в виде Duration.
func (c *JWTConfig) GetTokenLifetime() time.Duration {
	if c.TokenLifetimeMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.TokenLifetimeMinutes) * time.Minute
}
