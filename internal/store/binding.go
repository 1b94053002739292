package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"zigbee-go-zcl/internal/node"
	"zigbee-go-zcl/internal/zcl"
)

// Binding backs the attributes of a server-side cluster with a Store.
// Values are kept in their ZCL wire form, so anything the attribute's data
// type can encode survives a restart unchanged.
type Binding struct {
	store    Store
	endpoint uint8
	bound    *node.Bound
	defaults map[string]any
	logger   *slog.Logger
}

// Bind persists the named attributes of b. defaults holds the value served
// until one has been stored. Attributes the definition marks writable
// accept writeAttributes from peers; configureReporting and
// readReportingConfiguration are answered from the store.
func Bind(s Store, endpoint uint8, b *node.Bound, defaults map[string]any, logger *slog.Logger) (*Binding, error) {
	bd := &Binding{
		store:    s,
		endpoint: endpoint,
		bound:    b,
		defaults: make(map[string]any, len(defaults)),
		logger:   logger.With("component", "store", "endpoint", endpoint, "cluster", b.Def().Name),
	}
	for name, v := range defaults {
		attr, ok := b.Def().Attribute(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", zcl.ErrUnknownAttribute, b.Def().Name, name)
		}
		if v != nil {
			if _, err := attr.Type.Encode(v); err != nil {
				return nil, fmt.Errorf("default for %s: %w", name, err)
			}
		}
		bd.defaults[name] = v
		acc := node.Accessor{Get: bd.getter(attr)}
		if attr.IsWritable() {
			acc.Set = bd.setter(attr)
		}
		if err := b.SetAccessor(name, acc); err != nil {
			return nil, err
		}
	}
	if err := b.Handle(zcl.CmdConfigureReporting, bd.configureReporting); err != nil {
		return nil, err
	}
	if err := b.Handle(zcl.CmdReadReportingConfiguration, bd.readReportingConfiguration); err != nil {
		return nil, err
	}
	return bd, nil
}

func (bd *Binding) key(name string) Key {
	return Key{Endpoint: bd.endpoint, Cluster: bd.bound.Def().Name, Attribute: name}
}

func (bd *Binding) getter(attr *zcl.AttributeDef) func(context.Context) (any, error) {
	return func(context.Context) (any, error) {
		rec, err := bd.store.GetAttribute(bd.key(attr.Name))
		if errors.Is(err, ErrNotFound) {
			if v := bd.defaults[attr.Name]; v != nil {
				return v, nil
			}
			return nil, fmt.Errorf("%s has no value", attr.Name)
		}
		if err != nil {
			return nil, err
		}
		v, _, err := attr.Type.Decode(rec.Data)
		if err != nil {
			return nil, fmt.Errorf("decode stored %s: %w", attr.Name, err)
		}
		return v, nil
	}
}

func (bd *Binding) setter(attr *zcl.AttributeDef) func(context.Context, any) error {
	return func(ctx context.Context, v any) error {
		return bd.Set(ctx, attr.Name, v)
	}
}

// Get returns the current value of an attribute.
func (bd *Binding) Get(ctx context.Context, name string) (any, error) {
	attr, ok := bd.bound.Def().Attribute(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", zcl.ErrUnknownAttribute, bd.bound.Def().Name, name)
	}
	return bd.getter(attr)(ctx)
}

// Set stores an attribute value. Local writes ignore the access flags.
func (bd *Binding) Set(_ context.Context, name string, v any) error {
	attr, ok := bd.bound.Def().Attribute(name)
	if !ok {
		return fmt.Errorf("%w: %s.%s", zcl.ErrUnknownAttribute, bd.bound.Def().Name, name)
	}
	data, err := attr.Type.Encode(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	err = bd.store.SaveAttribute(&Attribute{
		Key:       bd.key(name),
		DataType:  attr.Type.ID,
		Data:      data,
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return err
	}
	bd.logger.Debug("attribute stored", "attribute", name, "data", fmt.Sprintf("%X", data))
	return nil
}

// configureReporting stores reported-direction records. Failed records are
// answered individually; a fully successful request gets one SUCCESS record.
func (bd *Binding) configureReporting(_ context.Context, req *node.Request) (zcl.Args, error) {
	records, _ := req.Args["reports"].([]any)
	var failed []any
	for _, r := range records {
		rec, ok := r.(zcl.Args)
		if !ok {
			continue
		}
		id, _ := zcl.ToUint64(rec["attributeId"])
		status := bd.saveReporting(uint16(id), rec)
		if status != zcl.StatusSuccess {
			failed = append(failed, zcl.Args{"status": status, "direction": rec["direction"], "attributeId": id})
		}
	}
	if len(failed) == 0 {
		return zcl.Args{"reports": []any{zcl.Args{"status": zcl.StatusSuccess}}}, nil
	}
	return zcl.Args{"reports": failed}, nil
}

func (bd *Binding) saveReporting(id uint16, rec zcl.Args) zcl.Status {
	attr := bd.bound.Def().FindAttribute(id)
	if attr == nil {
		return zcl.StatusUnsupportedAttribute
	}
	if rec["direction"] != "reported" || !(attr.IsReportable() || bd.bound.IsReportable(attr.Name)) {
		return zcl.StatusUnreportableAttribute
	}
	typeID, _ := zcl.ToUint64(rec["attributeDataType"])
	minInterval, _ := zcl.ToUint64(rec["minInterval"])
	maxInterval, _ := zcl.ToUint64(rec["maxInterval"])
	r := &Reporting{
		Key:         bd.key(attr.Name),
		AttributeID: id,
		DataType:    uint8(typeID),
		MinInterval: uint16(minInterval),
		MaxInterval: uint16(maxInterval),
	}
	if change, ok := rec["minChange"]; ok && change != nil {
		dt, ok := zcl.TypeByID(r.DataType)
		if !ok {
			return zcl.StatusInvalidDataType
		}
		data, err := dt.Encode(change)
		if err != nil {
			return zcl.StatusInvalidValue
		}
		r.MinChange = data
	}
	if err := bd.store.SaveReporting(r); err != nil {
		bd.logger.Warn("save reporting failed", "attribute", attr.Name, "err", err)
		return zcl.StatusFailure
	}
	return zcl.StatusSuccess
}

func (bd *Binding) readReportingConfiguration(_ context.Context, req *node.Request) (zcl.Args, error) {
	records, _ := req.Args["attributes"].([]any)
	out := make([]any, 0, len(records))
	for _, r := range records {
		rec, ok := r.(zcl.Args)
		if !ok {
			continue
		}
		id, _ := zcl.ToUint64(rec["attributeId"])
		out = append(out, bd.reportingRecord(uint16(id), rec["direction"]))
	}
	return zcl.Args{"reports": out}, nil
}

func (bd *Binding) reportingRecord(id uint16, direction any) zcl.Args {
	failed := func(s zcl.Status) zcl.Args {
		return zcl.Args{"status": s, "direction": direction, "attributeId": id}
	}
	attr := bd.bound.Def().FindAttribute(id)
	if attr == nil {
		return failed(zcl.StatusUnsupportedAttribute)
	}
	r, err := bd.store.GetReporting(bd.key(attr.Name))
	if errors.Is(err, ErrNotFound) {
		return failed(zcl.StatusUnreportableAttribute)
	}
	if err != nil {
		bd.logger.Warn("load reporting failed", "attribute", attr.Name, "err", err)
		return failed(zcl.StatusFailure)
	}
	out := zcl.Args{
		"status":            zcl.StatusSuccess,
		"direction":         "reported",
		"attributeId":       id,
		"attributeDataType": r.DataType,
		"minInterval":       r.MinInterval,
		"maxInterval":       r.MaxInterval,
	}
	if len(r.MinChange) > 0 {
		out["minChange"] = r.MinChange
	}
	return out
}
