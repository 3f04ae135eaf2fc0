// Package config provides centralized configuration management: the YAML
// file under the kembang home directory plus environment overrides.
package config

import (
	"os"
	"sync"
)

// DefaultAPIURL is the production backend.
const DefaultAPIURL = "https://web.jagoanbunda.udahdikerjain.my.id/api/v1"

// KembangEnv holds all kembang environment variables.
type KembangEnv struct {
	// Home overrides the config directory (KEMBANG_HOME)
	Home string

	// APIURL overrides the backend base URL (KEMBANG_API_URL)
	APIURL string

	// Passphrase unlocks stored credentials (KEMBANG_PASSPHRASE)
	Passphrase string

	// LogLevel overrides the configured log level (KEMBANG_LOG_LEVEL)
	LogLevel string

	// NoColor disables colored output (NO_COLOR)
	NoColor bool
}

var (
	env     *KembangEnv
	envOnce sync.Once
)

// Env returns the singleton environment configuration.
// Thread-safe, loads once on first call.
func Env() *KembangEnv {
	envOnce.Do(func() {
		env = &KembangEnv{
			Home:       os.Getenv("KEMBANG_HOME"),
			APIURL:     os.Getenv("KEMBANG_API_URL"),
			Passphrase: os.Getenv("KEMBANG_PASSPHRASE"),
			LogLevel:   os.Getenv("KEMBANG_LOG_LEVEL"),
			NoColor:    os.Getenv("NO_COLOR") != "",
		}
	})
	return env
}

// ResetEnv resets the cached environment (for testing).
func ResetEnv() {
	envOnce = sync.Once{}
	env = nil
}
