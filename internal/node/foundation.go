package node

import (
	"context"
	"fmt"
	"sort"

	"zigbee-go-zcl/internal/zcl"
)

// ReportingConfig is the reporting setup of one attribute. MinChange is only
// sent for analog attributes; nil means 1.
type ReportingConfig struct {
	MinInterval uint16
	MaxInterval uint16
	MinChange   any
}

// DefaultReporting reports on every change with no periodic report.
func DefaultReporting() ReportingConfig {
	return ReportingConfig{MinInterval: 0, MaxInterval: 0xFFFF, MinChange: 1}
}

// AttributeInfo is one attribute found by extended discovery.
type AttributeInfo struct {
	ID         uint16
	Name       string
	DataTypeID uint8
	Readable   bool
	Writable   bool
	Reportable bool
}

// attributes resolves names to definitions. All manufacturer-specific
// attributes in one request must come from the same manufacturer; the
// shared id is returned as an option. A standard attribute in the request
// keeps the frame standard.
func (c *Cluster) attributes(names []string) ([]*zcl.AttributeDef, []Option, error) {
	attrs := make([]*zcl.AttributeDef, 0, len(names))
	var mfr uint16
	standard := false
	for _, name := range names {
		a, ok := c.def.Attribute(name)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %s is not an attribute of %s", zcl.ErrUnknownAttribute, name, c.def.Name)
		}
		switch {
		case a.ManufacturerID == 0:
			standard = true
		case mfr == 0:
			mfr = a.ManufacturerID
		case mfr != a.ManufacturerID:
			return nil, nil, fmt.Errorf("%w: 0x%04X and 0x%04X on %s", zcl.ErrManufacturerMismatch, mfr, a.ManufacturerID, c.def.Name)
		}
		attrs = append(attrs, a)
	}
	if mfr == 0 || standard {
		return attrs, nil, nil
	}
	return attrs, []Option{WithManufacturerID(mfr)}, nil
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ReadAttributes reads the named attributes, or every declared attribute
// when names is empty. Requests are repeated for the ids the peer left out
// until it stops making progress. Attributes reported with a failure status
// are left out of the result.
func (c *Cluster) ReadAttributes(ctx context.Context, names []string, opts ...Option) (zcl.Args, error) {
	if len(names) == 0 {
		for _, a := range c.def.AllAttributes() {
			names = append(names, a.Name)
		}
	}
	attrs, mfrOpts, err := c.attributes(names)
	if err != nil {
		return nil, err
	}
	opts = append(mfrOpts, opts...)

	byID := make(map[uint16]string, len(attrs))
	remaining := make([]uint16, 0, len(attrs))
	for _, a := range attrs {
		if _, dup := byID[a.ID]; !dup {
			remaining = append(remaining, a.ID)
		}
		byID[a.ID] = a.Name
	}

	out := zcl.Args{}
	for len(remaining) > 0 {
		res, err := c.Invoke(ctx, zcl.CmdReadAttributes, zcl.Args{"attributes": remaining}, opts...)
		if err != nil {
			return nil, err
		}
		data, _ := res["attributes"].([]byte)
		answered := map[uint16]bool{}
		for _, rec := range c.def.DecodeReadResults(data) {
			name, asked := byID[rec.ID]
			if !asked || answered[rec.ID] {
				continue
			}
			answered[rec.ID] = true
			if rec.Status == zcl.StatusSuccess {
				out[name] = rec.Value
			}
		}
		if len(answered) == 0 {
			break
		}
		next := remaining[:0]
		for _, id := range remaining {
			if !answered[id] {
				next = append(next, id)
			}
		}
		remaining = next
	}
	return out, nil
}

func (c *Cluster) encodeWrites(values map[string]any) ([]byte, []Option, map[uint16]string, error) {
	names := sortedNames(values)
	attrs, mfrOpts, err := c.attributes(names)
	if err != nil {
		return nil, nil, nil, err
	}
	byID := make(map[uint16]string, len(attrs))
	records := make([]zcl.AttributeRecord, len(attrs))
	for i, a := range attrs {
		byID[a.ID] = a.Name
		records[i] = zcl.AttributeRecord{ID: a.ID, Name: a.Name, Value: values[a.Name]}
	}
	data, err := c.def.EncodeAttributeRecords(records)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("encode %s attributes: %w", c.def.Name, err)
	}
	return data, mfrOpts, byID, nil
}

func (c *Cluster) writeAttributes(ctx context.Context, command string, values map[string]any, opts []Option) error {
	data, mfrOpts, byID, err := c.encodeWrites(values)
	if err != nil {
		return err
	}
	res, err := c.Invoke(ctx, command, zcl.Args{"attributes": data}, append(mfrOpts, opts...)...)
	if err != nil {
		return err
	}
	records, _ := res["attributes"].([]any)
	return statusRecords(records, "attributeId", byID)
}

// statusRecords returns the first non-SUCCESS status of a response as a
// StatusError naming the attribute.
func statusRecords(records []any, idField string, byID map[uint16]string) error {
	for _, r := range records {
		rec, ok := r.(zcl.Args)
		if !ok {
			continue
		}
		status, ok := zcl.ParseStatus(rec["status"])
		if !ok || status == zcl.StatusSuccess {
			continue
		}
		id, _ := zcl.ToUint64(rec[idField])
		name := byID[uint16(id)]
		if name == "" {
			name = fmt.Sprintf("0x%04X", id)
		}
		return &zcl.StatusError{Status: status, Attribute: name}
	}
	return nil
}

// WriteAttributes writes attribute values. Any failed attribute fails the
// call; the peer may still have applied the others.
func (c *Cluster) WriteAttributes(ctx context.Context, values map[string]any, opts ...Option) error {
	return c.writeAttributes(ctx, zcl.CmdWriteAttributes, values, opts)
}

// WriteAttributesAtomic writes all values or none.
func (c *Cluster) WriteAttributesAtomic(ctx context.Context, values map[string]any, opts ...Option) error {
	return c.writeAttributes(ctx, zcl.CmdWriteAttributesAtomic, values, opts)
}

// WriteAttributesNoResponse writes values without asking for a response.
func (c *Cluster) WriteAttributesNoResponse(ctx context.Context, values map[string]any, opts ...Option) error {
	data, mfrOpts, _, err := c.encodeWrites(values)
	if err != nil {
		return err
	}
	_, err = c.Invoke(ctx, zcl.CmdWriteAttributesNoResponse, zcl.Args{"attributes": data}, append(mfrOpts, opts...)...)
	return err
}

// ConfigureReporting sets up attribute reports.
func (c *Cluster) ConfigureReporting(ctx context.Context, configs map[string]ReportingConfig, opts ...Option) error {
	if len(configs) == 0 {
		return nil
	}
	attrs, mfrOpts, err := c.attributes(sortedNames(configs))
	if err != nil {
		return err
	}
	byID := make(map[uint16]string, len(attrs))
	reports := make([]any, len(attrs))
	for i, a := range attrs {
		cfg := configs[a.Name]
		byID[a.ID] = a.Name
		rec := zcl.Args{
			"direction":         "reported",
			"attributeId":       a.ID,
			"attributeDataType": a.Type.ID,
			"minInterval":       cfg.MinInterval,
			"maxInterval":       cfg.MaxInterval,
		}
		if a.Type.Analog {
			change := cfg.MinChange
			if change == nil {
				change = 1
			}
			// encoded with the attribute's own type, which may carry
			// scaling the base wire type does not
			b, err := a.Type.Encode(change)
			if err != nil {
				return fmt.Errorf("%s minChange: %w", a.Name, err)
			}
			rec["minChange"] = b
		}
		reports[i] = rec
	}
	res, err := c.Invoke(ctx, zcl.CmdConfigureReporting, zcl.Args{"reports": reports}, append(mfrOpts, opts...)...)
	if err != nil {
		return err
	}
	records, _ := res["reports"].([]any)
	return statusRecords(records, "attributeId", byID)
}

// ReadReportingConfiguration returns the reporting setup of the named
// attributes, keyed by attribute name. Failed records carry their status.
func (c *Cluster) ReadReportingConfiguration(ctx context.Context, names []string, opts ...Option) (map[string]zcl.Args, error) {
	attrs, mfrOpts, err := c.attributes(names)
	if err != nil {
		return nil, err
	}
	req := make([]any, len(attrs))
	byID := make(map[uint16]string, len(attrs))
	for i, a := range attrs {
		byID[a.ID] = a.Name
		req[i] = zcl.Args{"direction": "reported", "attributeId": a.ID}
	}
	res, err := c.Invoke(ctx, zcl.CmdReadReportingConfiguration, zcl.Args{"attributes": req}, append(mfrOpts, opts...)...)
	if err != nil {
		return nil, err
	}
	records, _ := res["reports"].([]any)
	out := make(map[string]zcl.Args, len(records))
	for _, r := range records {
		rec, ok := r.(zcl.Args)
		if !ok {
			continue
		}
		id, _ := zcl.ToUint64(rec["attributeId"])
		if name, ok := byID[uint16(id)]; ok {
			out[name] = rec
		}
	}
	return out, nil
}

// discover pages through a discovery command: while the peer says more
// results are pending, the request is repeated from the id after the
// highest one seen. A page that adds nothing ends the walk.
func (c *Cluster) discover(ctx context.Context, command, listField string, maxStart uint64, opts []Option, each func(item any) (uint64, bool)) error {
	var start uint64
	for {
		res, err := c.Invoke(ctx, command, zcl.Args{"startValue": start, "maxResults": 0xFF}, opts...)
		if err != nil {
			return err
		}
		items, _ := res[listField].([]any)
		added := false
		var highest uint64
		for _, item := range items {
			id, isNew := each(item)
			if isNew {
				added = true
			}
			if id > highest {
				highest = id
			}
		}
		last, _ := res["lastResponse"].(bool)
		if last || !added || highest >= maxStart {
			return nil
		}
		start = highest + 1
	}
}

// DiscoverAttributes lists the attributes the peer implements. Ids the
// cluster does not declare are returned in hex.
func (c *Cluster) DiscoverAttributes(ctx context.Context, opts ...Option) ([]string, error) {
	var names []string
	seen := map[uint64]bool{}
	err := c.discover(ctx, zcl.CmdDiscoverAttributes, "attributes", 0xFFFF, opts, func(item any) (uint64, bool) {
		rec, _ := item.(zcl.Args)
		id, _ := zcl.ToUint64(rec["id"])
		if seen[id] {
			return id, false
		}
		seen[id] = true
		names = append(names, c.attributeName(uint16(id)))
		return id, true
	})
	return names, err
}

// DiscoverAttributesExtended lists the attributes the peer implements
// together with their access rights.
func (c *Cluster) DiscoverAttributesExtended(ctx context.Context, opts ...Option) ([]AttributeInfo, error) {
	var out []AttributeInfo
	seen := map[uint64]bool{}
	err := c.discover(ctx, zcl.CmdDiscoverAttributesExtended, "attributes", 0xFFFF, opts, func(item any) (uint64, bool) {
		rec, _ := item.(zcl.Args)
		id, _ := zcl.ToUint64(rec["id"])
		if seen[id] {
			return id, false
		}
		seen[id] = true
		info := AttributeInfo{ID: uint16(id), Name: c.attributeName(uint16(id))}
		if t, ok := zcl.ToUint64(rec["dataTypeId"]); ok {
			info.DataTypeID = uint8(t)
		}
		if acl, ok := rec["acl"].(*zcl.Bitmap); ok {
			info.Readable = acl.Has("readable")
			info.Writable = acl.Has("writable")
			info.Reportable = acl.Has("reportable")
		}
		out = append(out, info)
		return id, true
	})
	return out, err
}

func (c *Cluster) attributeName(id uint16) string {
	if a := c.def.FindAttribute(id); a != nil {
		return a.Name
	}
	return fmt.Sprintf("0x%04X", id)
}

// DiscoverCommandsReceived lists the cluster-specific commands the peer
// accepts.
func (c *Cluster) DiscoverCommandsReceived(ctx context.Context, opts ...Option) ([]string, error) {
	return c.discoverCommands(ctx, zcl.CmdDiscoverCommandsReceived, false, opts)
}

// DiscoverCommandsGenerated lists the cluster-specific commands the peer
// sends.
func (c *Cluster) DiscoverCommandsGenerated(ctx context.Context, opts ...Option) ([]string, error) {
	return c.discoverCommands(ctx, zcl.CmdDiscoverCommandsGenerated, true, opts)
}

func (c *Cluster) discoverCommands(ctx context.Context, command string, preferResponse bool, opts []Option) ([]string, error) {
	var names []string
	seen := map[uint64]bool{}
	err := c.discover(ctx, command, "commandIds", 0xFF, opts, func(item any) (uint64, bool) {
		id, _ := zcl.ToUint64(item)
		if seen[id] {
			return id, false
		}
		seen[id] = true
		names = append(names, c.commandName(uint8(id), preferResponse))
		return id, true
	})
	return names, err
}

func (c *Cluster) commandName(id uint8, preferResponse bool) string {
	var best *zcl.CommandDef
	for _, cmd := range c.def.CommandsByID(id) {
		if cmd.Global {
			continue
		}
		if best == nil || cmd.IsResponse == preferResponse {
			best = cmd
		}
	}
	if best == nil {
		return fmt.Sprintf("0x%02X", id)
	}
	return best.Name
}
