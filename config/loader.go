package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// envPattern matches ${VAR} or ${VAR:-default}.
var envPattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)(?::-([^}]*))?\}`)

// Load reads configuration from a TOML or YAML file on top of the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := Decode(cfg, filepath.Ext(path), data); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}

// Decode unmarshals data into cfg according to the file extension.
// Environment references are expanded before decoding.
func Decode(cfg *Config, ext string, data []byte) error {
	expanded := expandEnvVars(string(data))

	switch strings.ToLower(ext) {
	case ".toml":
		_, err := toml.Decode(expanded, cfg)
		return err
	case ".yaml", ".yml":
		return yaml.Unmarshal([]byte(expanded), cfg)
	default:
		return errors.New("config format not supported. supported formats include: toml, yaml")
	}
}

// expandEnvVars replaces ${VAR} with the value of VAR (empty if unset) and
// ${VAR:-default} with the value of VAR or "default".
func expandEnvVars(input string) string {
	return envPattern.ReplaceAllStringFunc(input, func(match string) string {
		submatches := envPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		if val, ok := os.LookupEnv(submatches[1]); ok {
			return val
		}

		if len(submatches) >= 3 {
			return submatches[2]
		}
		return ""
	})
}
