package realtime

import (
	"errors"

	"github.com/siakad-id/siakad/core"
)

const defaultPort = 8080

var (
	ErrMissingHost = errors.New("realtime: host is required")
	ErrMissingKey  = errors.New("realtime: application key is required")
)

// ValidateConfig checks the channel configuration structurally before any
// connection attempt. Missing host or key is a fatal configuration error
// reported at startup; a missing port falls back to the documented default.
func ValidateConfig(conf core.RealtimeConfig) (core.RealtimeConfig, error) {
	if conf.Host == "" {
		return conf, ErrMissingHost
	}
	if conf.Key == "" {
		return conf, ErrMissingKey
	}
	if conf.Port == 0 {
		conf.Port = defaultPort
	}
	return conf, nil
}
