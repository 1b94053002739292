package zcl

import "fmt"

// Field is one named, typed member of a Struct.
type Field struct {
	Name string
	Type *DataType
}

// Struct is an ordered record of fields encoded back to back. Consecutive
// nibble fields share a byte, the first one in the high half.
type Struct struct {
	Name     string
	fields   []Field
	index    map[string]int
	tail     []int // fixed bytes that follow field i
	length   int
	variable bool
	dt       *DataType
}

// NewStruct builds a record type. Field names must be unique.
func NewStruct(name string, fields ...Field) *Struct {
	s := &Struct{
		Name:   name,
		fields: fields,
		index:  make(map[string]int, len(fields)),
		tail:   make([]int, len(fields)),
	}
	cum := make([]int, len(fields))
	half := false
	for i, f := range fields {
		if _, dup := s.index[f.Name]; dup {
			panic(fmt.Sprintf("zcl: struct %s: duplicate field %q", name, f.Name))
		}
		s.index[f.Name] = i
		switch {
		case f.Type.Nibble:
			if !half {
				s.length++
			}
			half = !half
		case f.Type.Variable:
			s.variable = true
			half = false
		default:
			s.length += f.Type.Length
			half = false
		}
		cum[i] = s.length
	}
	for i := range fields {
		s.tail[i] = s.length - cum[i]
	}
	s.dt = &DataType{
		Internal: true,
		Name:     name,
		Length:   s.length,
		Variable: s.variable,
		Record:   s,
		enc: func(_ *DataType, dst []byte, v any) ([]byte, error) {
			args, ok := v.(Args)
			if !ok {
				m, isMap := v.(map[string]any)
				if !isMap && v != nil {
					return dst, fmt.Errorf("%w: %s expects Args, got %T", ErrInvalidValue, name, v)
				}
				args = m
			}
			return s.Append(dst, args)
		},
		dec: func(_ *DataType, buf []byte) (any, int, error) {
			args, n := s.Decode(buf)
			return args, n, nil
		},
	}
	s.dt.Default = s.defaults()
	return s
}

// Fields returns the fields in declaration order.
func (s *Struct) Fields() []Field { return s.fields }

// Field looks up a field by name.
func (s *Struct) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Len returns the number of fixed bytes; Variable reports whether any field
// has a variable length.
func (s *Struct) Len() int       { return s.length }
func (s *Struct) Variable() bool { return s.variable }

// Type returns the record as a DataType for nesting in arrays and structs.
func (s *Struct) Type() *DataType { return s.dt }

func (s *Struct) defaults() Args {
	out := make(Args, len(s.fields))
	for _, f := range s.fields {
		out[f.Name] = f.Type.DefaultValue()
	}
	return out
}

// New returns a complete record: values from props, defaults for every
// field props leaves out. An unknown field name is an error.
func (s *Struct) New(props Args) (Args, error) {
	for k := range props {
		if _, ok := s.index[k]; !ok {
			return nil, fmt.Errorf("%w: %s has no field %q", ErrUnknownField, s.Name, k)
		}
	}
	out := make(Args, len(s.fields))
	for _, f := range s.fields {
		if v, ok := props[f.Name]; ok {
			out[f.Name] = v
		} else {
			out[f.Name] = f.Type.DefaultValue()
		}
	}
	return out, nil
}

// Append encodes v field by field onto dst.
func (s *Struct) Append(dst []byte, v Args) ([]byte, error) {
	args, err := s.New(v)
	if err != nil {
		return dst, err
	}
	out := dst
	half := false
	for _, f := range s.fields {
		val := args[f.Name]
		if f.Type.Nibble {
			n, err := f.Type.nibEnc(f.Type, val)
			if err != nil {
				return dst, fmt.Errorf("%s.%s: %w", s.Name, f.Name, err)
			}
			if half {
				out[len(out)-1] |= n
			} else {
				out = append(out, n<<4)
			}
			half = !half
			continue
		}
		half = false
		if out, err = f.Type.Append(out, val); err != nil {
			return dst, fmt.Errorf("%s.%s: %w", s.Name, f.Name, err)
		}
	}
	return out, nil
}

// Encode returns the wire form of v.
func (s *Struct) Encode(v Args) ([]byte, error) {
	return s.Append(nil, v)
}

// Decode reads a record from buf. When buf runs out mid-record the fields
// decoded so far are kept and the rest take their defaults.
func (s *Struct) Decode(buf []byte) (Args, int) {
	out := make(Args, len(s.fields))
	pos := 0
	half := false
decode:
	for i, f := range s.fields {
		t := f.Type
		if t.Nibble {
			if pos >= len(buf) {
				break
			}
			if half {
				out[f.Name] = t.nibDec(t, buf[pos]&0x0F)
				pos++
			} else {
				out[f.Name] = t.nibDec(t, buf[pos]>>4)
			}
			half = !half
			continue
		}
		if half {
			pos++
			half = false
		}
		end := len(buf)
		if t.Variable {
			end -= s.tail[i]
			if end < pos {
				end = pos
			}
		}
		v, n, err := t.Decode(buf[pos:end])
		if err != nil {
			break decode
		}
		out[f.Name] = v
		pos += n
	}
	if half {
		pos++
	}
	for _, f := range s.fields {
		if _, ok := out[f.Name]; !ok {
			out[f.Name] = f.Type.DefaultValue()
		}
	}
	return out, pos
}
