//go:build no_mqtt

package main

import (
	"errors"
	"log/slog"
)

func openMQTT(_ *Config, _ *slog.Logger) (link, error) {
	return nil, errors.New("mqtt transport not compiled in (built with no_mqtt)")
}
