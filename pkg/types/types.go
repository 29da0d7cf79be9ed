package types

import (
	"strconv"
	"strings"

	"github.com/matzehuels/analogue/pkg/errors"
)

// =============================================================================
// Type
// =============================================================================

// Kind discriminates the variants of a Type.
type Kind uint8

const (
	KindUnsignedInt Kind = iota + 1
	KindFixedArray
	KindVariableArray
	KindAlias
	KindDefined
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindUnsignedInt:
		return "uint"
	case KindFixedArray:
		return "farray"
	case KindVariableArray:
		return "varray"
	case KindAlias:
		return "alias"
	case KindDefined:
		return "defined"
	default:
		return "unknown"
	}
}

// TypeID addresses a Type inside a Pool. The zero value is never a valid id.
type TypeID int32

// Invalid is the zero TypeID.
const Invalid TypeID = 0

// Valid reports whether id could address a pool entry.
func (id TypeID) Valid() bool { return id > Invalid }

// Type is a single arena entry. Which fields are meaningful depends on Kind:
//
//	KindUnsignedInt    Bits
//	KindFixedArray     Elem, Len
//	KindVariableArray  Elem
//	KindAlias          Elem (the target)
//	KindDefined        Record
type Type struct {
	Kind   Kind
	Bits   int
	Elem   TypeID
	Len    int
	Record *Record
}

// Field is a named member of a Record.
type Field struct {
	Name string
	Type TypeID
}

// Record is a user-defined type: a name and an ordered list of fields.
type Record struct {
	Name   string
	Fields []Field
}

// Field returns the field with the given name.
func (r *Record) Field(name string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// =============================================================================
// Pool
// =============================================================================

// Pool is an append-only arena of types.
type Pool struct {
	entries []Type
	records map[string]TypeID
}

// NewPool creates an empty pool.
func NewPool() *Pool {
	return &Pool{records: make(map[string]TypeID)}
}

// Len returns the number of types in the pool.
func (p *Pool) Len() int { return len(p.entries) }

// IDs returns every id in allocation order.
func (p *Pool) IDs() []TypeID {
	ids := make([]TypeID, len(p.entries))
	for i := range p.entries {
		ids[i] = TypeID(i + 1)
	}
	return ids
}

// Get returns the type stored under id.
func (p *Pool) Get(id TypeID) (Type, bool) {
	if !p.Contains(id) {
		return Type{}, false
	}
	return p.entries[id-1], true
}

// Contains reports whether id addresses an entry of this pool.
func (p *Pool) Contains(id TypeID) bool {
	return id.Valid() && int(id) <= len(p.entries)
}

// Lookup returns the id of the record defined under name.
func (p *Pool) Lookup(name string) (TypeID, bool) {
	id, ok := p.records[name]
	return id, ok
}

// Record returns the record behind id, following aliases.
func (p *Pool) Record(id TypeID) (*Record, bool) {
	t, ok := p.resolve(id)
	if !ok || t.Kind != KindDefined {
		return nil, false
	}
	return t.Record, true
}

// Resolve follows aliases until a non-alias type is reached.
func (p *Pool) Resolve(id TypeID) (Type, bool) {
	return p.resolve(id)
}

func (p *Pool) resolve(id TypeID) (Type, bool) {
	t, ok := p.Get(id)
	for ok && t.Kind == KindAlias {
		t, ok = p.Get(t.Elem)
	}
	return t, ok
}

// UnsignedInt adds an n-bit unsigned integer type.
func (p *Pool) UnsignedInt(bits int) (TypeID, error) {
	if bits <= 0 {
		return Invalid, errors.New(errors.ErrCodeInvalidType, "bit width must be positive, got %d", bits)
	}
	return p.push(Type{Kind: KindUnsignedInt, Bits: bits}), nil
}

// FixedArray adds an array of n elements of type elem.
func (p *Pool) FixedArray(elem TypeID, n int) (TypeID, error) {
	if err := p.requireChild(elem, "array element"); err != nil {
		return Invalid, err
	}
	if n < 0 {
		return Invalid, errors.New(errors.ErrCodeInvalidType, "array length must not be negative, got %d", n)
	}
	return p.push(Type{Kind: KindFixedArray, Elem: elem, Len: n}), nil
}

// VariableArray adds a variably-sized array of elem.
func (p *Pool) VariableArray(elem TypeID) (TypeID, error) {
	if err := p.requireChild(elem, "array element"); err != nil {
		return Invalid, err
	}
	return p.push(Type{Kind: KindVariableArray, Elem: elem}), nil
}

// Alias adds a transparent alias of target.
func (p *Pool) Alias(target TypeID) (TypeID, error) {
	if err := p.requireChild(target, "alias target"); err != nil {
		return Invalid, err
	}
	return p.push(Type{Kind: KindAlias, Elem: target}), nil
}

// Define adds a record type. Names are unique per pool.
func (p *Pool) Define(name string, fields ...Field) (TypeID, error) {
	if err := errors.ValidateName(name); err != nil {
		return Invalid, errors.Wrap(errors.ErrCodeInvalidType, err, "record name")
	}
	if _, dup := p.records[name]; dup {
		return Invalid, errors.New(errors.ErrCodeInvalidType, "record %q already defined", name)
	}

	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if err := errors.ValidateName(f.Name); err != nil {
			return Invalid, errors.Wrap(errors.ErrCodeInvalidType, err, "record %s field", name)
		}
		if _, dup := seen[f.Name]; dup {
			return Invalid, errors.New(errors.ErrCodeInvalidType, "record %s: duplicate field %q", name, f.Name)
		}
		seen[f.Name] = struct{}{}
		if err := p.requireChild(f.Type, "field "+name+"."+f.Name); err != nil {
			return Invalid, err
		}
	}

	rec := &Record{Name: name, Fields: append([]Field(nil), fields...)}
	id := p.push(Type{Kind: KindDefined, Record: rec})
	p.records[name] = id
	return id, nil
}

func (p *Pool) push(t Type) TypeID {
	p.entries = append(p.entries, t)
	return TypeID(len(p.entries))
}

func (p *Pool) requireChild(id TypeID, what string) error {
	if !p.Contains(id) {
		return errors.New(errors.ErrCodeInvalidType, "%s refers to unknown type id %d", what, id)
	}
	return nil
}

// =============================================================================
// Display
// =============================================================================

// DisplayName returns the canonical type-hint string for id.
func (p *Pool) DisplayName(id TypeID) string {
	var b strings.Builder
	p.writeName(&b, id)
	return b.String()
}

func (p *Pool) writeName(b *strings.Builder, id TypeID) {
	t, ok := p.Get(id)
	if !ok {
		b.WriteByte('?')
		return
	}
	switch t.Kind {
	case KindUnsignedInt:
		b.WriteByte('u')
		b.WriteString(strconv.Itoa(t.Bits))
	case KindFixedArray:
		p.writeName(b, t.Elem)
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(t.Len))
		b.WriteByte(']')
	case KindVariableArray:
		p.writeName(b, t.Elem)
		b.WriteString("[]")
	case KindAlias:
		p.writeName(b, t.Elem)
	case KindDefined:
		b.WriteString(t.Record.Name)
	default:
		b.WriteByte('?')
	}
}
