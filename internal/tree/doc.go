// Package tree provides a self-describing tree value and a structural merge
// over it.
//
// A Value is one of three shapes:
//
//   - Scalar: string, integer, float, bool, datetime, or absent (nil)
//   - Sequence: ordered list of values
//   - Mapping: string keys to values
//
// Values are built from decoded TOML with FromTOML and converted back with
// Interface, so the merge itself never touches a typed record.
//
// # Merge Semantics
//
// Merge(left, right, depth) folds right over left:
//
//   - mappings merge key by key, right winning on conflict
//   - sequences reconcile elements by their "name" field, appending the rest
//   - any other combination, or depth 0, takes right wholesale
//
// Each descent into a matched pair of containers costs one unit of depth, so
// nested lists past the budget are replaced instead of element-merged.
package tree
