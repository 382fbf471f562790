package tree

import (
	"maps"
	"slices"
)

// FromTOML converts the generic output of a TOML decoder into a Value.
// Tables become mappings with sorted keys, arrays become sequences,
// everything else is kept as a scalar.
func FromTOML(data any) Value {
	switch d := data.(type) {
	case map[string]any:
		v := Value{kind: KindMapping, fields: make(map[string]Value, len(d))}
		for _, k := range slices.Sorted(maps.Keys(d)) {
			v = v.set(k, FromTOML(d[k]))
		}
		return v
	case []map[string]any:
		items := make([]Value, len(d))
		for i, m := range d {
			items[i] = FromTOML(m)
		}
		return Value{kind: KindSequence, items: items}
	case []any:
		items := make([]Value, len(d))
		for i, e := range d {
			items[i] = FromTOML(e)
		}
		return Value{kind: KindSequence, items: items}
	case Value:
		return d
	default:
		return Scalar(d)
	}
}

// Interface converts v back into plain Go values suitable for a TOML encoder:
// map[string]any, []any, and scalars. Absent values are left out of mappings.
func (v Value) Interface() any {
	switch v.kind {
	case KindMapping:
		m := make(map[string]any, len(v.keys))
		for _, k := range v.keys {
			f := v.fields[k]
			if f.IsAbsent() {
				continue
			}
			m[k] = f.Interface()
		}
		return m
	case KindSequence:
		s := make([]any, len(v.items))
		for i, it := range v.items {
			s[i] = it.Interface()
		}
		return s
	default:
		return v.scalar
	}
}
