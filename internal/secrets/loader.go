// Package secrets resolves sensitive values such as API keys from
// configuration or from files mounted into the environment.
package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where a secret value comes from.
type Source struct {
	// Name labels the secret in error messages.
	Name string
	// Value holds an inline secret from configuration or flags.
	Value string
	// File points at a file holding the secret. It wins over Value when set.
	File string
}

// Load resolves the secret from src, preferring File over Value. The result
// is trimmed of surrounding whitespace. An empty resolution is an error.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	if file := strings.TrimSpace(src.File); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		secret := strings.TrimSpace(string(data))
		if secret == "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return secret, nil
	}

	secret := strings.TrimSpace(src.Value)
	if secret == "" {
		return "", fmt.Errorf("%s is not configured", name)
	}
	return secret, nil
}
