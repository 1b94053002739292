package zcl

import (
	"fmt"
	"sort"
)

// Access flags
const (
	AccessRead   uint8 = 0x01
	AccessWrite  uint8 = 0x02
	AccessReport uint8 = 0x04
)

// AttributeDef defines a ZCL attribute.
type AttributeDef struct {
	ID             uint16
	Name           string
	Type           *DataType
	ManufacturerID uint16 // 0 for standard attributes
	Access         uint8  // bitmask: 1=read, 2=write, 4=reportable
}

// IsReadable returns true if the attribute can be read.
func (a *AttributeDef) IsReadable() bool {
	return a.Access&AccessRead != 0
}

// IsWritable returns true if the attribute can be written.
func (a *AttributeDef) IsWritable() bool {
	return a.Access&AccessWrite != 0
}

// IsReportable returns true if the attribute supports reporting.
func (a *AttributeDef) IsReportable() bool {
	return a.Access&AccessReport != 0
}

// CommandDirection indicates the direction of a cluster command.
type CommandDirection string

const (
	DirectionToServer CommandDirection = "toServer"
	DirectionToClient CommandDirection = "toClient"
)

// CommandDef defines a command. Response is either nil, a descriptor with
// Args for a cluster-specific response, or a descriptor without Args when
// only a default response is expected.
type CommandDef struct {
	ID             uint8
	Name           string
	Direction      CommandDirection
	Args           []Field
	Response       *CommandDef
	Global         bool
	ManufacturerID uint16
	// FrameControl replaces the frame control derived from the other fields.
	FrameControl *FrameControl

	// Set on response descriptors derived by the cluster.
	IsResponse bool
	Request    *CommandDef

	args *Struct
}

// ArgsType returns the record type of the command payload. Build prepares
// it for every command of a registered cluster.
func (c *CommandDef) ArgsType() *Struct {
	if c.args == nil {
		c.args = NewStruct(c.Name, c.Args...)
	}
	return c.args
}

// HasResponse reports whether the command is answered by a
// cluster-specific response rather than a default response.
func (c *CommandDef) HasResponse() bool {
	return c.Response != nil && len(c.Response.Args) > 0
}

// ClusterDef defines a ZCL cluster with its attributes and commands.
// Lookups are valid once the definition has been built, which Registry does
// on Register.
type ClusterDef struct {
	ID         uint16
	Name       string
	Attributes []AttributeDef
	Commands   []CommandDef

	attrByID    map[uint16]*AttributeDef
	attrByName  map[string]*AttributeDef
	cmdByName   map[string]*CommandDef
	cmdByID     map[uint8][]*CommandDef
	commands    []*CommandDef
	readResults *DataType
	writes      *DataType
	built       bool
}

// Build derives the lookup tables: global attributes and commands are merged
// in, response descriptors are derived from their requests, and the
// attribute record array codecs are prepared.
func (c *ClusterDef) Build() error {
	if c.Name == "" {
		return fmt.Errorf("zcl: cluster 0x%04X has no name", c.ID)
	}
	c.attrByID = make(map[uint16]*AttributeDef)
	c.attrByName = make(map[string]*AttributeDef)
	attrs := append(append([]AttributeDef{}, GlobalAttributes...), c.Attributes...)
	for i := range attrs {
		a := &attrs[i]
		if a.Type == nil {
			return fmt.Errorf("zcl: %s.%s has no type", c.Name, a.Name)
		}
		if prev, ok := c.attrByName[a.Name]; ok {
			delete(c.attrByID, prev.ID)
		}
		c.attrByID[a.ID] = a
		c.attrByName[a.Name] = a
	}

	c.cmdByName = make(map[string]*CommandDef)
	c.cmdByID = make(map[uint8][]*CommandDef)
	c.commands = nil
	cmds := append(append([]CommandDef{}, GlobalCommands...), c.Commands...)
	for i := range cmds {
		cmd := &cmds[i]
		if prev, ok := c.cmdByName[cmd.Name]; ok {
			c.removeCommand(prev)
		}
		c.addCommand(cmd)
		if cmd.Response == nil {
			continue
		}
		res := *cmd.Response
		if res.Name == "" {
			res.Name = cmd.Name + ResponseSuffix
		}
		res.IsResponse = true
		res.Request = cmd
		res.Global = cmd.Global
		if res.ManufacturerID == 0 {
			res.ManufacturerID = cmd.ManufacturerID
		}
		if res.Direction == "" && cmd.Direction != "" {
			res.Direction = opposite(cmd.Direction)
		}
		res.args = nil
		cmd.Response = &res
		c.addCommand(&res)
	}

	for _, cmd := range c.commands {
		cmd.ArgsType()
	}
	c.readResults = Array0(attributeRecord(c, true))
	c.writes = Array0(attributeRecord(c, false))
	c.built = true
	return nil
}

func opposite(d CommandDirection) CommandDirection {
	if d == DirectionToClient {
		return DirectionToServer
	}
	return DirectionToClient
}

func (c *ClusterDef) addCommand(cmd *CommandDef) {
	if _, taken := c.cmdByName[cmd.Name]; !taken || !cmd.IsResponse {
		c.cmdByName[cmd.Name] = cmd
	}
	c.cmdByID[cmd.ID] = append(c.cmdByID[cmd.ID], cmd)
	c.commands = append(c.commands, cmd)
}

func (c *ClusterDef) removeCommand(cmd *CommandDef) {
	drop := func(list []*CommandDef) []*CommandDef {
		out := list[:0]
		for _, x := range list {
			if x != cmd && (cmd.Response == nil || x != cmd.Response) {
				out = append(out, x)
			}
		}
		return out
	}
	c.cmdByID[cmd.ID] = drop(c.cmdByID[cmd.ID])
	if cmd.Response != nil {
		c.cmdByID[cmd.Response.ID] = drop(c.cmdByID[cmd.Response.ID])
		if c.cmdByName[cmd.Response.Name] == cmd.Response {
			delete(c.cmdByName, cmd.Response.Name)
		}
	}
	c.commands = drop(c.commands)
	delete(c.cmdByName, cmd.Name)
}

// Built reports whether Build has run.
func (c *ClusterDef) Built() bool { return c.built }

// FindAttribute looks up an attribute by ID.
func (c *ClusterDef) FindAttribute(id uint16) *AttributeDef {
	return c.attrByID[id]
}

// Attribute looks up an attribute by name.
func (c *ClusterDef) Attribute(name string) (*AttributeDef, bool) {
	a, ok := c.attrByName[name]
	return a, ok
}

// AllAttributes returns every attribute, global ones included, sorted by ID.
func (c *ClusterDef) AllAttributes() []*AttributeDef {
	out := make([]*AttributeDef, 0, len(c.attrByID))
	for _, a := range c.attrByID {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Command looks up a command by name.
func (c *ClusterDef) Command(name string) (*CommandDef, bool) {
	cmd, ok := c.cmdByName[name]
	return cmd, ok
}

// CommandsByID returns every descriptor sharing the id: ids repeat across
// global, cluster-specific, response and manufacturer-specific commands.
func (c *ClusterDef) CommandsByID(id uint8) []*CommandDef {
	return c.cmdByID[id]
}

// AllCommands returns every command and derived response descriptor.
func (c *ClusterDef) AllCommands() []*CommandDef {
	return c.commands
}

// ReadResults is the codec of a read attributes response payload.
func (c *ClusterDef) ReadResults() *DataType { return c.readResults }

// WriteRecords is the codec of a write or report attributes payload.
func (c *ClusterDef) WriteRecords() *DataType { return c.writes }

// Merge overlays another definition: its attributes and commands replace
// same-named entries and are appended otherwise. The result must be rebuilt.
func (c *ClusterDef) Merge(other *ClusterDef) {
	for _, attr := range other.Attributes {
		replaced := false
		for i := range c.Attributes {
			if c.Attributes[i].Name == attr.Name {
				c.Attributes[i] = attr
				replaced = true
			}
		}
		if !replaced {
			c.Attributes = append(c.Attributes, attr)
		}
	}
	for _, cmd := range other.Commands {
		replaced := false
		for i := range c.Commands {
			if c.Commands[i].Name == cmd.Name {
				c.Commands[i] = cmd
				replaced = true
			}
		}
		if !replaced {
			c.Commands = append(c.Commands, cmd)
		}
	}
	c.built = false
}

// DeepCopy returns a copy of the declared attributes and commands, unbuilt.
func (c *ClusterDef) DeepCopy() *ClusterDef {
	return &ClusterDef{
		ID:         c.ID,
		Name:       c.Name,
		Attributes: append([]AttributeDef{}, c.Attributes...),
		Commands:   append([]CommandDef{}, c.Commands...),
	}
}
