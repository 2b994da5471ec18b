package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

// parseEnv overlays Config fields from environment variables. Variables that
// are unset leave the current (default) values untouched.
func parseEnv(config *Config) {
	if err := envconfig.Process(context.Background(), config); err != nil {
		panic(err)
	}
}
