package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Dataset   DatasetConfig   `yaml:"dataset"`
	Transport TransportConfig `yaml:"transport"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatasetConfig locates the precomputed segmentation output. Driver is
// "csv" (flat file) or "sqlite" (database written by the upstream job);
// Table is only used by the sqlite driver.
type DatasetConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	Table  string `yaml:"table"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"` // "http" or "stdio"
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Dataset: DatasetConfig{
			Driver: "csv",
			Path:   "rfm_data_cleaned.csv",
			Table:  "customer_segments",
		},
		Transport: TransportConfig{
			Mode: "http",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("SEGBOARD_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("SEGBOARD_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("SEGBOARD_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SEGBOARD_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if driver := os.Getenv("SEGBOARD_DATASET_DRIVER"); driver != "" {
		cfg.Dataset.Driver = driver
	}
	if path := os.Getenv("SEGBOARD_DATASET_PATH"); path != "" {
		cfg.Dataset.Path = path
	}
	if table := os.Getenv("SEGBOARD_DATASET_TABLE"); table != "" {
		cfg.Dataset.Table = table
	}
	if mode := os.Getenv("SEGBOARD_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if level := os.Getenv("SEGBOARD_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if cfg.Dataset.Driver != "csv" && cfg.Dataset.Driver != "sqlite" {
		return Config{}, fmt.Errorf("unknown dataset driver %q (want csv or sqlite)", cfg.Dataset.Driver)
	}
	if cfg.Transport.Mode != "http" && cfg.Transport.Mode != "stdio" {
		return Config{}, fmt.Errorf("unknown transport mode %q (want http or stdio)", cfg.Transport.Mode)
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
