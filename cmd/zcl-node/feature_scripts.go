//go:build !no_lua

package main

import (
	"log/slog"

	"zigbee-go-zcl/internal/node"
	"zigbee-go-zcl/internal/script"
	"zigbee-go-zcl/internal/web"
)

type scriptRunner struct {
	engine *script.Engine
}

func (s *scriptRunner) Attach(ref string, endpoint uint8, b *node.Bound) error {
	return s.engine.Attach(script.ScriptID(ref), endpoint, b)
}

func (s *scriptRunner) Stop() {
	if s.engine != nil {
		s.engine.Stop()
	}
}

func initScripts(n *node.Node, cfg *Config, logger *slog.Logger) (*scriptRunner, []web.ServerOption, error) {
	mgr, err := script.NewManager(cfg.ScriptsDir, logger)
	if err != nil {
		return nil, nil, err
	}
	engine := script.NewEngine(n, mgr, logger)
	engine.Start()
	return &scriptRunner{engine: engine}, []web.ServerOption{web.WithScripts(engine, mgr)}, nil
}
