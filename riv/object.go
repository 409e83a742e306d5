package riv

import "fmt"

// ValueTag is the tag of a PropertyValue.
type ValueTag uint8

const (
	TagUint ValueTag = iota
	TagBool
	TagFloat
	TagString
	TagColor
)

func (t ValueTag) String() string {
	switch t {
	case TagUint:
		return "uint"
	case TagBool:
		return "bool"
	case TagFloat:
		return "float"
	case TagString:
		return "string"
	case TagColor:
		return "color"
	default:
		return "unknown"
	}
}

// PropertyValue is a tagged value whose tag determines the wire
// primitive used to encode it.
type PropertyValue struct {
	tag     ValueTag
	uintVal uint64
	boolVal bool
	fltVal  float32
	strVal  string
	colVal  uint32
}

// Uint constructs a uint-tagged PropertyValue.
func Uint(v uint64) PropertyValue { return PropertyValue{tag: TagUint, uintVal: v} }

// Bool constructs a bool-tagged PropertyValue.
func Bool(v bool) PropertyValue { return PropertyValue{tag: TagBool, boolVal: v} }

// Float constructs a float-tagged PropertyValue.
func Float(v float32) PropertyValue { return PropertyValue{tag: TagFloat, fltVal: v} }

// Str constructs a string-tagged PropertyValue.
func Str(v string) PropertyValue { return PropertyValue{tag: TagString, strVal: v} }

// Color constructs a color-tagged PropertyValue from a packed 32-bit ARGB word.
func Color(v uint32) PropertyValue { return PropertyValue{tag: TagColor, colVal: v} }

func (v PropertyValue) Tag() ValueTag { return v.tag }

func (v PropertyValue) Uint() uint64 {
	switch v.tag {
	case TagUint:
		return v.uintVal
	case TagBool:
		if v.boolVal {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func (v PropertyValue) Bool() bool {
	switch v.tag {
	case TagBool:
		return v.boolVal
	case TagUint:
		return v.uintVal != 0
	default:
		return false
	}
}

func (v PropertyValue) Float() float32 { return v.fltVal }
func (v PropertyValue) String() string {
	switch v.tag {
	case TagString:
		return v.strVal
	default:
		return fmt.Sprintf("%v", v.raw())
	}
}
func (v PropertyValue) ColorARGB() uint32 { return v.colVal }

func (v PropertyValue) raw() any {
	switch v.tag {
	case TagUint:
		return v.uintVal
	case TagBool:
		return v.boolVal
	case TagFloat:
		return v.fltVal
	case TagString:
		return v.strVal
	case TagColor:
		return v.colVal
	default:
		return nil
	}
}

// Equal reports whether two PropertyValues carry the same tag and value.
func (v PropertyValue) Equal(other PropertyValue) bool {
	if v.tag != other.tag {
		return false
	}
	switch v.tag {
	case TagUint:
		return v.uintVal == other.uintVal
	case TagBool:
		return v.boolVal == other.boolVal
	case TagFloat:
		return v.fltVal == other.fltVal
	case TagString:
		return v.strVal == other.strVal
	case TagColor:
		return v.colVal == other.colVal
	default:
		return false
	}
}

// Property is one (key, value) pair attached to an Object.
type Property struct {
	Key   PropertyKey
	Value PropertyValue
}

// Object is a tuple (type_key, ordered list of (property_key, value)).
// Property order is significant only where the registry mandates a fixed
// emission order for the object's class.
type Object struct {
	Type       TypeKey
	Class      ClassKind
	Name       string // convenience cache of the name(4) property, if any
	Properties []Property
}

// Get returns the value for key and whether it was present.
func (o *Object) Get(key PropertyKey) (PropertyValue, bool) {
	for _, p := range o.Properties {
		if p.Key == key {
			return p.Value, true
		}
	}
	return PropertyValue{}, false
}

// Set overwrites the value for key if present, or appends it otherwise.
func (o *Object) Set(key PropertyKey, v PropertyValue) {
	for i, p := range o.Properties {
		if p.Key == key {
			o.Properties[i].Value = v
			return
		}
	}
	o.Properties = append(o.Properties, Property{Key: key, Value: v})
}

// ParentID returns the artboard-local index of o's parent, if o carries
// a parent_id property.
func (o *Object) ParentID() (int, bool) {
	v, ok := o.Get(PropParentID)
	if !ok {
		return 0, false
	}
	return int(v.Uint()), true
}
