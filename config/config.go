package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Manifest    ManifestConfig `yaml:"manifest"`
	ManifestDir string         `yaml:"manifest_dir"` // Directory where manifests are written
	Verbose     bool           `yaml:"verbose"`      // Enable debug logging
}

// Holds manifest-specific configuration.
type ManifestConfig struct {
	ChunkSize        uint32 `yaml:"chunk_size"`        // Bytes digested per chunk
	Algorithm        string `yaml:"algorithm"`         // Chunk checksum algorithm
	Compress         bool   `yaml:"compress"`          // Compress manifests on disk
	CompressionLevel uint8  `yaml:"compression_level"` // zstd level (1-4)
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		ManifestDir: "manifests",
		Manifest: ManifestConfig{
			ChunkSize:        1024 * 1024, // 1MB
			Algorithm:        "crc32-ieee",
			Compress:         true,
			CompressionLevel: 3,
		},
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.ManifestDir == "" {
		return fmt.Errorf("manifest_dir is required")
	}

	if config.Manifest.Algorithm == "" {
		return fmt.Errorf("algorithm is required")
	}

	if config.Manifest.CompressionLevel < 1 || config.Manifest.CompressionLevel > 4 {
		return fmt.Errorf("compression_level must be between 1 and 4")
	}

	return nil
}
