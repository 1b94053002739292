//go:build no_lua

// Package script is compiled out; attaching or running a script fails.
package script

import (
	"errors"
	"log/slog"

	"zigbee-go-zcl/internal/node"
	"zigbee-go-zcl/internal/zcl"
)

var (
	ErrDisabled  = errors.New("script: lua support disabled")
	ErrInvalidID = errors.New("script: invalid id")
)

// Manager is a no-op stub when Lua support is disabled.
type Manager struct{}

// NewManager returns a nil manager.
func NewManager(_ string, _ *slog.Logger) (*Manager, error) { return nil, nil }

// ScriptID maps a configured script reference to its id.
func ScriptID(ref string) string { return ref }

func (m *Manager) List() ([]*Script, error)        { return nil, nil }
func (m *Manager) Get(_ string) (*Script, error)   { return nil, ErrDisabled }
func (m *Manager) Save(_ *Script) (*Script, error) { return nil, ErrDisabled }
func (m *Manager) Delete(_ string) error           { return ErrDisabled }

// RunResult is the result of a one-shot script execution.
type RunResult struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Engine is a no-op stub when Lua support is disabled.
type Engine struct{}

// NewEngine returns a no-op engine.
func NewEngine(_ *node.Node, _ *Manager, _ *slog.Logger) *Engine { return &Engine{} }

func (e *Engine) Start() {}
func (e *Engine) Stop()  {}

// Attach always fails.
func (e *Engine) Attach(_ string, _ uint8, _ *node.Bound) error { return ErrDisabled }

func (e *Engine) Detach(_ uint8, _ string) {}

func (e *Engine) Attached(_ uint8, _ string) (string, bool) { return "", false }

// RunScript returns a stub result.
func (e *Engine) RunScript(_ string, _ *zcl.ClusterDef) *RunResult {
	return &RunResult{Error: ErrDisabled.Error()}
}

// RunLuaCode returns a stub result.
func (e *Engine) RunLuaCode(_ string, _ *zcl.ClusterDef) *RunResult {
	return &RunResult{Error: ErrDisabled.Error()}
}
