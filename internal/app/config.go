package app

import (
	"errors"
	"fmt"

	"github.com/vk/wavetiles/internal/report"
)

// DefaultWorkerCount bounds how many tileset files are loaded at once.
const DefaultWorkerCount = 4

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// TilesetPaths are files or directories. Directories are searched
	// recursively for every supported extension.
	TilesetPaths []string
	OutputFormat string

	LogFormat   string
	LogLevel    string
	WorkerCount int

	PublishURL       string
	PublishNamespace string
	PublishAckEvent  string

	// ServePort keeps the process alive serving /health and /tilesets. 0 is disabled.
	ServePort int
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.TilesetPaths) == 0 {
		return nil, errors.New("at least one tileset path is required")
	}
	for _, p := range cfg.TilesetPaths {
		if p == "" {
			return nil, errors.New("tileset path cannot be empty")
		}
	}

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = string(report.FormatText)
	}
	format, err := report.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return nil, err
	}
	cfg.OutputFormat = string(format)

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = DefaultWorkerCount
	}
	if cfg.ServePort < 0 || cfg.ServePort > 65535 {
		return nil, fmt.Errorf("serve port %d is out of range", cfg.ServePort)
	}
	if cfg.PublishAckEvent != "" && cfg.PublishURL == "" {
		return nil, errors.New("a publish ack event requires a publish URL")
	}

	return &cfg, nil
}
