package domain

import "fmt"

// AttrType identifies the runtime tag of an attribute value.
type AttrType uint8

const (
	TypeInt8 AttrType = iota
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeFloat32
	TypeFloat64
	TypeString
	TypeStringList
)

// String returns the tag name for error messages
func (t AttrType) String() string {
	switch t {
	case TypeInt8:
		return "int8"
	case TypeInt16:
		return "int16"
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeUint8:
		return "uint8"
	case TypeUint16:
		return "uint16"
	case TypeUint32:
		return "uint32"
	case TypeUint64:
		return "uint64"
	case TypeFloat32:
		return "float32"
	case TypeFloat64:
		return "float64"
	case TypeString:
		return "string"
	case TypeStringList:
		return "string list"
	default:
		return "unknown"
	}
}

// AttrValue is a closed tagged union for typed asset attributes.
// Every read site extracts with the expected tag; a mismatching tag is an
// error rather than a silent conversion.
type AttrValue struct {
	typ   AttrType
	intv  int64
	uintv uint64
	fv    float64
	sv    string
	list  []string
}

func Int8Value(v int8) AttrValue   { return AttrValue{typ: TypeInt8, intv: int64(v)} }
func Int16Value(v int16) AttrValue { return AttrValue{typ: TypeInt16, intv: int64(v)} }
func Int32Value(v int32) AttrValue { return AttrValue{typ: TypeInt32, intv: int64(v)} }
func Int64Value(v int64) AttrValue { return AttrValue{typ: TypeInt64, intv: v} }

func Uint8Value(v uint8) AttrValue   { return AttrValue{typ: TypeUint8, uintv: uint64(v)} }
func Uint16Value(v uint16) AttrValue { return AttrValue{typ: TypeUint16, uintv: uint64(v)} }
func Uint32Value(v uint32) AttrValue { return AttrValue{typ: TypeUint32, uintv: uint64(v)} }
func Uint64Value(v uint64) AttrValue { return AttrValue{typ: TypeUint64, uintv: v} }

func Float32Value(v float32) AttrValue { return AttrValue{typ: TypeFloat32, fv: float64(v)} }
func Float64Value(v float64) AttrValue { return AttrValue{typ: TypeFloat64, fv: v} }

func StringValue(v string) AttrValue { return AttrValue{typ: TypeString, sv: v} }

func StringListValue(v []string) AttrValue {
	list := make([]string, len(v))
	copy(list, v)
	return AttrValue{typ: TypeStringList, list: list}
}

// Type returns the runtime tag of the value.
func (v AttrValue) Type() AttrType { return v.typ }

func (v AttrValue) check(want AttrType) error {
	if v.typ != want {
		return fmt.Errorf("%w: have %s, want %s", ErrAttributeType, v.typ, want)
	}
	return nil
}

func (v AttrValue) AsUint8() (uint8, error) {
	if err := v.check(TypeUint8); err != nil {
		return 0, err
	}
	return uint8(v.uintv), nil
}

func (v AttrValue) AsUint32() (uint32, error) {
	if err := v.check(TypeUint32); err != nil {
		return 0, err
	}
	return uint32(v.uintv), nil
}

func (v AttrValue) AsUint64() (uint64, error) {
	if err := v.check(TypeUint64); err != nil {
		return 0, err
	}
	return v.uintv, nil
}

func (v AttrValue) AsInt64() (int64, error) {
	if err := v.check(TypeInt64); err != nil {
		return 0, err
	}
	return v.intv, nil
}

func (v AttrValue) AsFloat32() (float32, error) {
	if err := v.check(TypeFloat32); err != nil {
		return 0, err
	}
	return float32(v.fv), nil
}

func (v AttrValue) AsFloat64() (float64, error) {
	if err := v.check(TypeFloat64); err != nil {
		return 0, err
	}
	return v.fv, nil
}

func (v AttrValue) AsString() (string, error) {
	if err := v.check(TypeString); err != nil {
		return "", err
	}
	return v.sv, nil
}

func (v AttrValue) AsStringList() ([]string, error) {
	if err := v.check(TypeStringList); err != nil {
		return nil, err
	}
	list := make([]string, len(v.list))
	copy(list, v.list)
	return list, nil
}

// AttributeMap is the typed key-value attribute set attached to an asset's
// mutable data or a template's immutable data.
type AttributeMap map[string]AttrValue

// Has reports whether the key is present.
func (m AttributeMap) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Clone returns a shallow copy safe to mutate independently.
func (m AttributeMap) Clone() AttributeMap {
	out := make(AttributeMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Uint8 extracts a uint8 attribute, failing when missing or mistyped.
func (m AttributeMap) Uint8(key string) (uint8, error) {
	v, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrAttributeMissing, key)
	}
	val, err := v.AsUint8()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return val, nil
}

// Uint32 extracts a uint32 attribute, failing when missing or mistyped.
func (m AttributeMap) Uint32(key string) (uint32, error) {
	v, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrAttributeMissing, key)
	}
	val, err := v.AsUint32()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return val, nil
}

// Float32 extracts a float32 attribute, failing when missing or mistyped.
func (m AttributeMap) Float32(key string) (float32, error) {
	v, ok := m[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrAttributeMissing, key)
	}
	val, err := v.AsFloat32()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return val, nil
}

// Text extracts a string attribute, failing when missing or mistyped.
func (m AttributeMap) Text(key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrAttributeMissing, key)
	}
	val, err := v.AsString()
	if err != nil {
		return "", fmt.Errorf("%s: %w", key, err)
	}
	return val, nil
}

// StringList extracts a string-list attribute, failing when missing or mistyped.
func (m AttributeMap) StringList(key string) ([]string, error) {
	v, ok := m[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAttributeMissing, key)
	}
	val, err := v.AsStringList()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return val, nil
}
