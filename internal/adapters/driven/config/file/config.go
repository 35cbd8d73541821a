// Package file provides the TOML configuration file for docdex.
// Configuration supplies defaults for chunking and extraction; command
// line flags override it per invocation.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/docdex-cli/internal/core/domain"
	"github.com/custodia-labs/docdex-cli/internal/core/services"
)

// ConfigFileName is the file name within the config directory.
const ConfigFileName = "config.toml"

// Config holds the user-tunable pipeline defaults.
type Config struct {
	Chunk     ChunkConfig     `toml:"chunk"`
	Extractor ExtractorConfig `toml:"extractor"`
}

// ChunkConfig holds word-window chunking defaults.
type ChunkConfig struct {
	// Size is the window size in words.
	Size int `toml:"size"`

	// Overlap is the overlap between windows in words.
	Overlap int `toml:"overlap"`
}

// ExtractorConfig holds card extraction thresholds.
type ExtractorConfig struct {
	// MaxFacts caps facts per card.
	MaxFacts int `toml:"max_facts"`

	// MinFactLength discards sentences at or under this length.
	MinFactLength int `toml:"min_fact_length"`

	// ExcerptLength is the citation excerpt cap in characters.
	ExcerptLength int `toml:"excerpt_length"`

	// TruncationMarker is appended to truncated excerpts.
	TruncationMarker string `toml:"truncation_marker"`
}

// Default returns the built-in configuration.
func Default() *Config {
	extractor := services.DefaultExtractorConfig()
	return &Config{
		Chunk: ChunkConfig{
			Size:    services.DefaultChunkSize,
			Overlap: services.DefaultChunkOverlap,
		},
		Extractor: ExtractorConfig{
			MaxFacts:         extractor.MaxFacts,
			MinFactLength:    extractor.MinFactLength,
			ExcerptLength:    extractor.ExcerptLength,
			TruncationMarker: extractor.TruncationMarker,
		},
	}
}

// Load reads the config file under configDir, if present, merged over
// the defaults. If configDir is empty, ~/.docdex is used. A missing
// file is not an error: defaults apply.
func Load(configDir string) (*Config, error) {
	path, err := resolvePath(configDir)
	if err != nil {
		return nil, err
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %s", domain.ErrInvalidInput, path, err)
	}

	return cfg, nil
}

// Save writes the config under configDir, creating the directory if
// needed.
func Save(configDir string, cfg *Config) error {
	path, err := resolvePath(configDir)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ToExtractorConfig converts the file representation to the service
// configuration value.
func (c *Config) ToExtractorConfig() services.ExtractorConfig {
	return services.ExtractorConfig{
		MaxFacts:         c.Extractor.MaxFacts,
		MinFactLength:    c.Extractor.MinFactLength,
		ExcerptLength:    c.Extractor.ExcerptLength,
		TruncationMarker: c.Extractor.TruncationMarker,
	}
}

// resolvePath returns the config file path for configDir, defaulting
// to ~/.docdex.
func resolvePath(configDir string) (string, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		configDir = filepath.Join(home, ".docdex")
	}
	return filepath.Join(configDir, ConfigFileName), nil
}
