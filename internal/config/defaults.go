package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// defaultConfig returns the built-in fallback values applied when no other
// configuration source supplies a field. Secrets (token sign key, DSN) have
// no defaults and must always come from the environment.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:     "minifeed",
			TokenDuration:   24 * time.Hour,
			TokenCookieName: "mytoken",
			BCryptCost:      bcrypt.DefaultCost,
		},
		Storage: Storage{
			DB: DB{
				Driver: "pgx",
			},
			Files: Files{
				ProfileImageDir:     "./static/img/profile",
				PublicPrefix:        "img/profile",
				DefaultProfileImage: "img/profile/example.png",
			},
		},
		Server: Server{
			HTTPAddress:    "0.0.0.0:8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}
