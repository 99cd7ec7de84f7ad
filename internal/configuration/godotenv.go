package configuration

import (
	"fmt"

	"github.com/joho/godotenv"
)

// GodotenvProvider is an implementation of a configuration provider that
// parses env-format files through the godotenv library.
type GodotenvProvider struct{}

// Read parses the given env-format files into a key-value map. A missing or
// unreadable file surfaces as an error, on which the caller falls back to the
// documented defaults.
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	data, err := godotenv.Read(filenames...)
	if err != nil {
		return data, fmt.Errorf("(config-godotenv) %w", err)
	}

	return data, nil
}
