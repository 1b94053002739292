package clusters

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"zigbee-go-zcl/internal/zcl"
)

// Definition is the YAML form of a cluster definition. A definition that
// names a base in Extends is merged onto the registered base, so a vendor
// file only lists what it adds or changes.
type Definition struct {
	ID         *uint16         `yaml:"id"`
	Name       string          `yaml:"name"`
	Extends    string          `yaml:"extends"`
	Attributes []attributeDecl `yaml:"attributes"`
	Commands   []commandDecl   `yaml:"commands"`
}

type attributeDecl struct {
	ID             uint16   `yaml:"id"`
	Name           string   `yaml:"name"`
	ManufacturerID uint16   `yaml:"manufacturerId"`
	Access         []string `yaml:"access"`
	typeDecl       `yaml:",inline"`
}

type commandDecl struct {
	ID             uint8        `yaml:"id"`
	Name           string       `yaml:"name"`
	Direction      string       `yaml:"direction"`
	ManufacturerID uint16       `yaml:"manufacturerId"`
	Args           []fieldDecl  `yaml:"args"`
	Response       *commandDecl `yaml:"response"`
}

type fieldDecl struct {
	Name     string `yaml:"name"`
	typeDecl `yaml:",inline"`
}

type typeDecl struct {
	Type   string            `yaml:"type"`
	Values map[string]uint64 `yaml:"values"`
	Flags  []string          `yaml:"flags"`
	Elem   *typeDecl         `yaml:"elem"`
}

func (s typeDecl) resolve() (*zcl.DataType, error) {
	switch s.Type {
	case "enum4":
		return zcl.Enum4(s.Values), nil
	case "enum8":
		return zcl.Enum8(s.Values), nil
	case "enum16":
		return zcl.Enum16(s.Values), nil
	case "map4":
		return zcl.Map4(s.Flags...), nil
	case "map8":
		return zcl.Map8(s.Flags...), nil
	case "map16":
		return zcl.Map16(s.Flags...), nil
	case "map24":
		return zcl.Map24(s.Flags...), nil
	case "map32":
		return zcl.Map32(s.Flags...), nil
	case "map40":
		return zcl.Map40(s.Flags...), nil
	case "map48":
		return zcl.Map48(s.Flags...), nil
	case "map56":
		return zcl.Map56(s.Flags...), nil
	case "map64":
		return zcl.Map64(s.Flags...), nil
	case "array0", "array8", "array16":
		if s.Elem == nil {
			return nil, fmt.Errorf("%s needs an elem type", s.Type)
		}
		elem, err := s.Elem.resolve()
		if err != nil {
			return nil, err
		}
		switch s.Type {
		case "array0":
			return zcl.Array0(elem), nil
		case "array8":
			return zcl.Array8(elem), nil
		}
		return zcl.Array16(elem), nil
	}
	if t, ok := zcl.TypeByName(s.Type); ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %q", zcl.ErrUnknownType, s.Type)
}

func parseAccess(names []string) (uint8, error) {
	if len(names) == 0 {
		return zcl.AccessRead, nil
	}
	var access uint8
	for _, n := range names {
		switch strings.ToLower(n) {
		case "read":
			access |= zcl.AccessRead
		case "write":
			access |= zcl.AccessWrite
		case "report":
			access |= zcl.AccessReport
		default:
			return 0, fmt.Errorf("unknown access %q", n)
		}
	}
	return access, nil
}

func (s commandDecl) build() (zcl.CommandDef, error) {
	cmd := zcl.CommandDef{ID: s.ID, Name: s.Name, ManufacturerID: s.ManufacturerID}
	switch s.Direction {
	case "":
	case "toServer":
		cmd.Direction = zcl.DirectionToServer
	case "toClient":
		cmd.Direction = zcl.DirectionToClient
	default:
		return cmd, fmt.Errorf("command %s: unknown direction %q", s.Name, s.Direction)
	}
	for _, a := range s.Args {
		t, err := a.resolve()
		if err != nil {
			return cmd, fmt.Errorf("command %s arg %s: %w", s.Name, a.Name, err)
		}
		cmd.Args = append(cmd.Args, zcl.Field{Name: a.Name, Type: t})
	}
	if s.Response != nil {
		res, err := s.Response.build()
		if err != nil {
			return cmd, err
		}
		cmd.Response = &res
	}
	return cmd, nil
}

// ClusterDef converts the YAML form into a declaration.
func (d *Definition) ClusterDef() (zcl.ClusterDef, error) {
	c := zcl.ClusterDef{Name: d.Name}
	if d.ID != nil {
		c.ID = *d.ID
	}
	for _, a := range d.Attributes {
		t, err := a.resolve()
		if err != nil {
			return c, fmt.Errorf("attribute %s: %w", a.Name, err)
		}
		access, err := parseAccess(a.Access)
		if err != nil {
			return c, fmt.Errorf("attribute %s: %w", a.Name, err)
		}
		c.Attributes = append(c.Attributes, zcl.AttributeDef{
			ID: a.ID, Name: a.Name, Type: t, ManufacturerID: a.ManufacturerID, Access: access,
		})
	}
	for _, s := range d.Commands {
		cmd, err := s.build()
		if err != nil {
			return c, err
		}
		c.Commands = append(c.Commands, cmd)
	}
	return c, nil
}

// Parse decodes one YAML definition.
func Parse(data []byte) (*Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse cluster definition: %w", err)
	}
	if d.Name == "" && d.Extends == "" {
		return nil, fmt.Errorf("cluster definition needs a name or extends")
	}
	return &d, nil
}

// Apply registers d. An extending definition starts from the registered
// base and replaces it unless it sets its own name.
func Apply(r *zcl.Registry, d *Definition) (*zcl.ClusterDef, error) {
	c, err := d.ClusterDef()
	if err != nil {
		return nil, err
	}
	if d.Extends == "" {
		if d.ID == nil {
			return nil, fmt.Errorf("cluster %s: missing id", d.Name)
		}
		return r.Register(c)
	}
	base := r.Lookup(d.Extends)
	if base == nil {
		return nil, fmt.Errorf("%w: %s", zcl.ErrUnknownCluster, d.Extends)
	}
	merged := base.DeepCopy()
	merged.Merge(&c)
	if d.Name != "" {
		merged.Name = d.Name
	}
	if d.ID != nil {
		merged.ID = *d.ID
	}
	return r.Register(*merged)
}

// LoadDir applies every *.yaml and *.yml file in dir, in name order. A
// missing dir is not an error.
func LoadDir(r *zcl.Registry, dir string, logger *slog.Logger) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read clusters dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if !e.IsDir() && (ext == ".yaml" || ext == ".yml") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		d, err := Parse(data)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		def, err := Apply(r, d)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		logger.Info("cluster definition loaded", "file", name, "cluster", def.Name, "id", fmt.Sprintf("0x%04X", def.ID))
	}
	return nil
}
