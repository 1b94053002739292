package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"zigbee-go-zcl/internal/node"
	"zigbee-go-zcl/internal/zcl"
)

type Config struct {
	Transport struct {
		Type        string `yaml:"type"` // serial, mqtt, websocket or loopback
		Port        string `yaml:"port"`
		Baud        int    `yaml:"baud"`
		Broker      string `yaml:"broker"`
		ClientID    string `yaml:"client_id"`
		Username    string `yaml:"username"`
		Password    string `yaml:"password"`
		TopicPrefix string `yaml:"topic_prefix"`
		URL         string `yaml:"url"` // websocket: dial url; empty serves /ws/frames
	} `yaml:"transport"`
	Web struct {
		Listen         string   `yaml:"listen"`
		APIKey         string   `yaml:"api_key"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"web"`
	Store struct {
		Path string `yaml:"path"`
	} `yaml:"store"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	ClustersDir string           `yaml:"clusters_dir"`
	ScriptsDir  string           `yaml:"scripts_dir"`
	Timeout     string           `yaml:"timeout"`
	Endpoints   []EndpointConfig `yaml:"endpoints"`

	timeout time.Duration
}

// EndpointConfig declares one endpoint and the server-side clusters it
// binds.
type EndpointConfig struct {
	ID            uint8                    `yaml:"id"`
	InputClusters []ClusterRef             `yaml:"input_clusters"`
	Bindings      map[string]BindingConfig `yaml:"bindings"`
}

// BindingConfig backs a server-side cluster: persisted attributes with
// their initial values, the attributes offered for reporting and an
// optional script.
type BindingConfig struct {
	Attributes map[string]any `yaml:"attributes"`
	Reportable []string       `yaml:"reportable"`
	Script     string         `yaml:"script"`
}

// ClusterRef names a cluster by registry name ("onOff") or by id (6,
// 0x0006).
type ClusterRef string

func (r *ClusterRef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: cluster must be a name or an id", value.Line)
	}
	*r = ClusterRef(strings.TrimSpace(value.Value))
	return nil
}

// Resolve returns the registered definition the reference names.
func (r ClusterRef) Resolve(reg *zcl.Registry) (*zcl.ClusterDef, error) {
	s := string(r)
	if id, err := strconv.ParseUint(s, 0, 16); err == nil {
		if def := reg.Get(uint16(id)); def != nil {
			return def, nil
		}
		return nil, fmt.Errorf("%w: 0x%04X", zcl.ErrUnknownCluster, id)
	}
	def := reg.Lookup(s)
	if def == nil {
		return nil, fmt.Errorf("%w: %s", zcl.ErrUnknownCluster, s)
	}
	return def, nil
}

func (c *Config) validate() error {
	switch c.Transport.Type {
	case "serial":
		if c.Transport.Port == "" {
			return fmt.Errorf("transport.port is required for serial")
		}
	case "mqtt":
		if c.Transport.Broker == "" {
			return fmt.Errorf("transport.broker is required for mqtt")
		}
	case "websocket":
		if c.Transport.URL == "" && c.Web.Listen == "" {
			return fmt.Errorf("websocket transport needs transport.url or web.listen")
		}
	case "loopback":
	default:
		return fmt.Errorf("unknown transport.type %q (supported: serial, mqtt, websocket, loopback)", c.Transport.Type)
	}
	if len(c.Endpoints) == 0 {
		return fmt.Errorf("at least one endpoint is required")
	}
	seen := make(map[uint8]bool, len(c.Endpoints))
	for _, ep := range c.Endpoints {
		if ep.ID < 1 || ep.ID > 240 {
			return fmt.Errorf("endpoint id must be 1-240, got %d", ep.ID)
		}
		if seen[ep.ID] {
			return fmt.Errorf("endpoint %d declared twice", ep.ID)
		}
		seen[ep.ID] = true
	}
	return nil
}

// descriptors resolves the configured endpoints against the registry.
func (c *Config) descriptors(reg *zcl.Registry) ([]node.EndpointDescriptor, error) {
	out := make([]node.EndpointDescriptor, 0, len(c.Endpoints))
	for _, ep := range c.Endpoints {
		desc := node.EndpointDescriptor{ID: ep.ID}
		for _, ref := range ep.InputClusters {
			def, err := ref.Resolve(reg)
			if err != nil {
				return nil, fmt.Errorf("endpoint %d: %w", ep.ID, err)
			}
			desc.InputClusters = append(desc.InputClusters, def.ID)
		}
		for name := range ep.Bindings {
			if _, err := ClusterRef(name).Resolve(reg); err != nil {
				return nil, fmt.Errorf("endpoint %d binding: %w", ep.ID, err)
			}
		}
		out = append(out, desc)
	}
	return out, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Transport.Type == "" {
		cfg.Transport.Type = "serial"
	}
	if cfg.Transport.Baud == 0 {
		cfg.Transport.Baud = 460800
	}
	if cfg.Transport.TopicPrefix == "" {
		cfg.Transport.TopicPrefix = "zcl"
	}
	if cfg.Store.Path == "" {
		cfg.Store.Path = "zcl-node.db"
	}
	if cfg.ClustersDir == "" {
		cfg.ClustersDir = "clusters"
	}
	if cfg.ScriptsDir == "" {
		cfg.ScriptsDir = "scripts"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	cfg.timeout = node.DefaultTimeout
	if cfg.Timeout != "" {
		d, err := time.ParseDuration(cfg.Timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid timeout %q", cfg.Timeout)
		}
		cfg.timeout = d
	}
	return &cfg, nil
}
