package tree

import "slices"

// Merge folds right over left and returns the result. It never fails:
// mismatched shapes resolve to right.
//
// depth bounds how many container levels are reconciled element-wise.
// At depth 0 (or below) containers are replaced wholesale.
func Merge(left, right Value, depth int) Value {
	switch {
	case left.kind == KindSequence && right.kind == KindSequence:
		if depth <= 0 {
			return right
		}
		return mergeSequences(left, right, depth)
	case left.kind == KindMapping && right.kind == KindMapping:
		if depth <= 0 {
			return right
		}
		return mergeMappings(left, right, depth)
	default:
		return right
	}
}

// mergeSequences matches right elements to left elements by name. A matched
// left element is pulled out of its position and the merged pair is appended,
// so unmatched left elements stay in front in their original order.
func mergeSequences(left, right Value, depth int) Value {
	items := make([]Value, 0, len(left.items)+len(right.items))
	items = append(items, left.items...)

	for _, r := range right.items {
		name, ok := r.Name()
		if !ok {
			items = append(items, r)
			continue
		}
		idx := slices.IndexFunc(items, func(l Value) bool {
			n, ok := l.Name()
			return ok && n == name
		})
		if idx < 0 {
			items = append(items, r)
			continue
		}
		l := items[idx]
		items = slices.Delete(items, idx, idx+1)
		items = append(items, Merge(l, r, depth-1))
	}

	return Value{kind: KindSequence, items: items}
}

// mergeMappings keeps left's keys, merging into any key right also sets.
// Keys only in right are appended after left's.
func mergeMappings(left, right Value, depth int) Value {
	merged := Value{
		kind:   KindMapping,
		fields: make(map[string]Value, len(left.fields)+len(right.fields)),
		keys:   slices.Clone(left.keys),
	}
	for k, v := range left.fields {
		merged.fields[k] = v
	}

	for _, k := range right.keys {
		rv := right.fields[k]
		if lv, ok := merged.fields[k]; ok {
			merged.fields[k] = Merge(lv, rv, depth-1)
			continue
		}
		merged.keys = append(merged.keys, k)
		merged.fields[k] = rv
	}

	return merged
}
