//go:build no_lua

package main

import (
	"log/slog"

	"zigbee-go-zcl/internal/node"
	"zigbee-go-zcl/internal/web"
)

type scriptRunner struct {
	logger *slog.Logger
}

func (s *scriptRunner) Attach(ref string, endpoint uint8, b *node.Bound) error {
	s.logger.Warn("script ignored (built with no_lua)", "script", ref, "endpoint", endpoint, "cluster", b.Def().Name)
	return nil
}

func (s *scriptRunner) Stop() {}

func initScripts(_ *node.Node, _ *Config, logger *slog.Logger) (*scriptRunner, []web.ServerOption, error) {
	return &scriptRunner{logger: logger}, nil, nil
}
