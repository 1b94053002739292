package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"zigbee-go-zcl/internal/node"
	"zigbee-go-zcl/internal/zcl"
	"zigbee-go-zcl/internal/zcl/clusters"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testRegistry(t *testing.T) *zcl.Registry {
	t.Helper()
	reg := zcl.NewRegistry(testLogger())
	if err := clusters.Register(reg); err != nil {
		t.Fatal(err)
	}
	return reg
}

const sampleConfig = `
transport:
  type: loopback
timeout: 5s
endpoints:
  - id: 1
    input_clusters: [basic, 0x0003, 6]
    bindings:
      onOff:
        attributes:
          onOff: false
        reportable: [onOff]
      identify:
        attributes:
          identifyTime: 0
`

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig([]byte("endpoints: [{id: 1}]\ntransport: {port: /dev/ttyACM0}\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Transport.Type != "serial" || cfg.Transport.Baud != 460800 {
		t.Errorf("transport = %+v", cfg.Transport)
	}
	if cfg.Transport.TopicPrefix != "zcl" {
		t.Errorf("topic prefix = %q", cfg.Transport.TopicPrefix)
	}
	if cfg.Store.Path != "zcl-node.db" || cfg.ClustersDir != "clusters" || cfg.ScriptsDir != "scripts" {
		t.Errorf("paths = %q %q %q", cfg.Store.Path, cfg.ClustersDir, cfg.ScriptsDir)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.timeout != node.DefaultTimeout {
		t.Errorf("timeout = %v", cfg.timeout)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestParseConfigTimeout(t *testing.T) {
	cfg, err := parseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.timeout != 5*time.Second {
		t.Errorf("timeout = %v", cfg.timeout)
	}
	if _, err := parseConfig([]byte("timeout: soon\n")); err == nil {
		t.Error("invalid timeout accepted")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Endpoints) != 1 || len(cfg.Endpoints[0].Bindings) != 2 {
		t.Fatalf("endpoints = %+v", cfg.Endpoints)
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"serial without port", "endpoints: [{id: 1}]", "transport.port"},
		{"mqtt without broker", "transport: {type: mqtt}\nendpoints: [{id: 1}]", "transport.broker"},
		{"websocket without url or listen", "transport: {type: websocket}\nendpoints: [{id: 1}]", "web.listen"},
		{"unknown transport", "transport: {type: carrier-pigeon}\nendpoints: [{id: 1}]", "unknown transport"},
		{"no endpoints", "transport: {type: loopback}", "at least one endpoint"},
		{"endpoint 0", "transport: {type: loopback}\nendpoints: [{id: 0}]", "1-240"},
		{"endpoint 241", "transport: {type: loopback}\nendpoints: [{id: 241}]", "1-240"},
		{"duplicate endpoint", "transport: {type: loopback}\nendpoints: [{id: 1}, {id: 1}]", "twice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseConfig([]byte(tt.yaml))
			if err != nil {
				t.Fatal(err)
			}
			err = cfg.validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("validate = %v, want error containing %q", err, tt.want)
			}
		})
	}

	cfg, _ := parseConfig([]byte("transport: {type: websocket}\nweb: {listen: ':8080'}\nendpoints: [{id: 1}]"))
	if err := cfg.validate(); err != nil {
		t.Errorf("websocket server mode: %v", err)
	}
}

func TestClusterRefResolve(t *testing.T) {
	reg := testRegistry(t)
	tests := []struct {
		ref    ClusterRef
		want   uint16
		errors bool
	}{
		{"onOff", 0x0006, false},
		{"6", 0x0006, false},
		{"0x0006", 0x0006, false},
		{"0x0300", 0x0300, false},
		{"noSuchCluster", 0, true},
		{"0xFFF0", 0, true},
	}
	for _, tt := range tests {
		def, err := tt.ref.Resolve(reg)
		if tt.errors {
			if err == nil {
				t.Errorf("%s: expected error", tt.ref)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tt.ref, err)
			continue
		}
		if def.ID != tt.want {
			t.Errorf("%s: id = 0x%04X, want 0x%04X", tt.ref, def.ID, tt.want)
		}
	}
}

func TestDescriptors(t *testing.T) {
	reg := testRegistry(t)
	cfg, err := parseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	descs, err := cfg.descriptors(reg)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint16{0x0000, 0x0003, 0x0006}
	if len(descs) != 1 || descs[0].ID != 1 || len(descs[0].InputClusters) != len(want) {
		t.Fatalf("descriptors = %+v", descs)
	}
	for i, id := range want {
		if descs[0].InputClusters[i] != id {
			t.Errorf("input cluster %d = 0x%04X, want 0x%04X", i, descs[0].InputClusters[i], id)
		}
	}

	bad, _ := parseConfig([]byte("endpoints: [{id: 1, bindings: {nope: {}}}]"))
	if _, err := bad.descriptors(reg); err == nil {
		t.Error("unknown binding cluster accepted")
	}
}

func TestNewLogger(t *testing.T) {
	cfg, _ := parseConfig([]byte("log: {level: debug, format: json}"))
	if l := newLogger(cfg); !l.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug level not enabled")
	}
	cfg, _ = parseConfig([]byte("log: {level: error}"))
	if l := newLogger(cfg); l.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("warn enabled at error level")
	}
}
