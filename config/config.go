package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// HostPort is the HTTP listen port.
	HostPort string `env:"HOST_PORT" envDefault:"8080"`

	// AllowedOrigin restricts websocket upgrades to one Origin header value.
	// Empty allows any origin.
	AllowedOrigin string `env:"ALLOWED_ORIGIN"`

	// CanvasHistoryCap bounds each room's undo history. Zero or negative
	// means unbounded.
	CanvasHistoryCap int `env:"CANVAS_HISTORY_CAP" envDefault:"50"`

	// RoomReapInterval enables the empty-room reaper when positive. The
	// default preserves the reference behavior: empty rooms live until the
	// process exits.
	RoomReapInterval time.Duration `env:"ROOM_REAP_INTERVAL" envDefault:"0"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
