package tree

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// Kind is the shape of a Value.
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is an immutable tree node. The zero Value is an absent scalar.
type Value struct {
	kind   Kind
	scalar any
	items  []Value
	fields map[string]Value
	keys   []string // iteration order of fields
}

// Scalar wraps a leaf value. nil means absent.
func Scalar(v any) Value {
	return Value{kind: KindScalar, scalar: v}
}

// Sequence builds an ordered list.
func Sequence(items ...Value) Value {
	return Value{kind: KindSequence, items: slices.Clone(items)}
}

// Field is a key/value pair for Mapping.
type Field struct {
	Key   string
	Value Value
}

// Mapping builds a mapping preserving the order of fields.
// A repeated key keeps its first position and its last value.
func Mapping(fields ...Field) Value {
	v := Value{kind: KindMapping, fields: make(map[string]Value, len(fields))}
	for _, f := range fields {
		v = v.set(f.Key, f.Value)
	}
	return v
}

// MappingOf builds a mapping from a Go map with keys in sorted order.
func MappingOf(m map[string]Value) Value {
	v := Value{kind: KindMapping, fields: make(map[string]Value, len(m))}
	for _, k := range slices.Sorted(maps.Keys(m)) {
		v = v.set(k, m[k])
	}
	return v
}

// set writes key in place. Only used while a mapping is under construction.
func (v Value) set(key string, val Value) Value {
	if _, ok := v.fields[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.fields[key] = val
	return v
}

// Kind returns the shape of v.
func (v Value) Kind() Kind { return v.kind }

// IsAbsent reports whether v is a scalar with no value.
func (v Value) IsAbsent() bool { return v.kind == KindScalar && v.scalar == nil }

// ScalarValue returns the leaf value of a scalar, or nil for containers.
func (v Value) ScalarValue() any {
	if v.kind != KindScalar {
		return nil
	}
	return v.scalar
}

// Items returns a copy of a sequence's elements.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return slices.Clone(v.items)
}

// Len returns the number of elements or fields of a container.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return len(v.keys)
	}
	return 0
}

// Keys returns a mapping's keys in iteration order.
func (v Value) Keys() []string {
	if v.kind != KindMapping {
		return nil
	}
	return slices.Clone(v.keys)
}

// Get looks up key in a mapping.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}
	val, ok := v.fields[key]
	return val, ok
}

// Name returns the string "name" field of a mapping, if it has one.
func (v Value) Name() (string, bool) {
	n, ok := v.Get("name")
	if !ok {
		return "", false
	}
	s, ok := n.ScalarValue().(string)
	return s, ok
}

// Equal reports structural equality. Mapping key order is ignored.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindSequence:
		return slices.EqualFunc(v.items, o.items, Value.Equal)
	case KindMapping:
		if len(v.fields) != len(o.fields) {
			return false
		}
		for k, lv := range v.fields {
			rv, ok := o.fields[k]
			if !ok || !lv.Equal(rv) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(v.scalar, o.scalar)
	}
}

// String renders v for debugging and test failure messages.
func (v Value) String() string {
	switch v.kind {
	case KindSequence:
		s := "["
		for i, it := range v.items {
			if i > 0 {
				s += ", "
			}
			s += it.String()
		}
		return s + "]"
	case KindMapping:
		s := "{"
		for i, k := range v.keys {
			if i > 0 {
				s += ", "
			}
			s += k + ": " + v.fields[k].String()
		}
		return s + "}"
	default:
		if str, ok := v.scalar.(string); ok {
			return fmt.Sprintf("%q", str)
		}
		if v.scalar == nil {
			return "<absent>"
		}
		return fmt.Sprint(v.scalar)
	}
}
