// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Secrets may be mounted as files instead of being passed inline. The file
// is read only when the inline variable is empty.
const (
	encryptionKeyFileEnv = "APP_ENCRYPTION_KEY_FILE"
	tokenSignKeyFileEnv  = "APP_TOKEN_SIGN_KEY_FILE"
)

// parseEnv populates cfg from environment variables using the `env` and
// `envPrefix` tags of [StructuredConfig], then resolves the *_FILE secret
// variables.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	secrets := []struct {
		fileEnv string
		target  *string
	}{
		{encryptionKeyFileEnv, &cfg.App.EncryptionKey},
		{tokenSignKeyFileEnv, &cfg.App.TokenSignKey},
	}
	for _, s := range secrets {
		if *s.target != "" {
			continue
		}

		path := os.Getenv(s.fileEnv)
		if path == "" {
			continue
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading env secret file %s: %w", s.fileEnv, err)
		}
		*s.target = strings.TrimSpace(string(raw))
	}

	return nil
}
