package schema

import "slices"

// Merge deep-merges overlay into base and returns a new schema; neither
// argument is modified.
//
// Scalar attributes set in overlay replace those of base. Properties merge
// per name, recursing into names present on both sides, and keep base order
// with new names appended. Items merge recursively. Lists (required, enum and
// the composition keywords) are concatenated, base first. Literal values
// (default, example) are replaced whole.
func Merge(base, overlay *Schema) *Schema {
	if overlay == nil {
		return base.Clone()
	}
	if base == nil {
		return overlay.Clone()
	}
	out := base.Clone()

	if overlay.Type != TypeUntyped {
		out.Type = overlay.Type
	}
	if overlay.Format != "" {
		out.Format = overlay.Format
	}
	if overlay.Pattern != "" {
		out.Pattern = overlay.Pattern
	}
	if overlay.Default != nil {
		out.Default = overlay.Default
	}
	if overlay.Example != nil {
		out.Example = overlay.Example
	}

	out.Minimum = pick(out.Minimum, overlay.Minimum)
	out.Maximum = pick(out.Maximum, overlay.Maximum)
	out.MultipleOf = pick(out.MultipleOf, overlay.MultipleOf)
	out.MinLength = pick(out.MinLength, overlay.MinLength)
	out.MaxLength = pick(out.MaxLength, overlay.MaxLength)
	out.MinItems = pick(out.MinItems, overlay.MinItems)
	out.MaxItems = pick(out.MaxItems, overlay.MaxItems)

	// A false flag is indistinguishable from an absent one.
	out.ExclusiveMinimum = out.ExclusiveMinimum || overlay.ExclusiveMinimum
	out.ExclusiveMaximum = out.ExclusiveMaximum || overlay.ExclusiveMaximum
	out.UniqueItems = out.UniqueItems || overlay.UniqueItems
	out.Nullable = out.Nullable || overlay.Nullable
	out.ReadOnly = out.ReadOnly || overlay.ReadOnly
	out.WriteOnly = out.WriteOnly || overlay.WriteOnly

	if overlay.Properties != nil {
		if out.Properties == nil {
			out.Properties = &Properties{}
		}
		for name, ps := range overlay.Properties.All() {
			if existing, ok := out.Properties.Get(name); ok {
				out.Properties.Set(name, Merge(existing, ps))
				continue
			}
			out.Properties.Set(name, ps.Clone())
		}
	}
	if overlay.Items != nil {
		out.Items = Merge(out.Items, overlay.Items)
	}

	out.Required = appendList(out.Required, overlay.Required)
	out.Enum = appendList(out.Enum, overlay.Enum)
	out.OneOf = appendList(out.OneOf, cloneList(overlay.OneOf))
	out.AllOf = appendList(out.AllOf, cloneList(overlay.AllOf))
	out.AnyOf = appendList(out.AnyOf, cloneList(overlay.AnyOf))
	return out
}

func pick[T any](base, overlay *T) *T {
	if overlay != nil {
		return clonePtr(overlay)
	}
	return base
}

func appendList[T any](base, overlay []T) []T {
	if overlay == nil {
		return base
	}
	if base == nil {
		return slices.Clone(overlay)
	}
	return append(base, overlay...)
}
