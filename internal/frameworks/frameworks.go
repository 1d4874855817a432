// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package frameworks holds the static catalog of frameworks and variants that
// iucli can scaffold. Every variant ID (or framework ID, for frameworks without
// variants) names a template directory under the templates root.
package frameworks

import "slices"

// Variant is a named sub-option of a framework, usually a language flavor.
type Variant struct {
	// ID doubles as the template directory name
	ID string

	// Display is the label shown in the selection prompt
	Display string

	// Color is an ANSI 256 color code used when rendering the label
	Color string
}

// Framework groups the variants of one project flavor.
type Framework struct {
	ID       string
	Display  string
	Color    string
	Variants []Variant
}

// Label returns the display name, falling back to the ID.
func (f Framework) Label() string {
	if f.Display != "" {
		return f.Display
	}
	return f.ID
}

// Label returns the display name, falling back to the ID.
func (v Variant) Label() string {
	if v.Display != "" {
		return v.Display
	}
	return v.ID
}

// Templates returns the template identifiers this framework contributes.
func (f Framework) Templates() []string {
	if len(f.Variants) == 0 {
		return []string{f.ID}
	}
	ids := make([]string, 0, len(f.Variants))
	for _, v := range f.Variants {
		ids = append(ids, v.ID)
	}
	return ids
}

var catalog = []Framework{
	{
		ID:      "vue",
		Display: "Vue",
		Color:   "10",
		Variants: []Variant{
			{ID: "vue-ts", Display: "TypeScript", Color: "12"},
		},
	},
	{
		ID:      "vitepress-starter",
		Display: "VitePress",
		Color:   "14",
	},
}

// All returns the frameworks in display order. The slice is a copy.
func All() []Framework {
	out := make([]Framework, len(catalog))
	for i, f := range catalog {
		f.Variants = slices.Clone(f.Variants)
		out[i] = f
	}
	return out
}

// Templates returns every known template identifier in catalog order.
func Templates() []string {
	var ids []string
	for _, f := range catalog {
		ids = append(ids, f.Templates()...)
	}
	return ids
}

// IsTemplate reports whether id is a known template identifier.
func IsTemplate(id string) bool {
	return id != "" && slices.Contains(Templates(), id)
}

// Lookup finds the framework owning the template id. The returned Variant is
// the zero value when the framework has no variants.
func Lookup(id string) (Framework, Variant, bool) {
	for _, f := range All() {
		if len(f.Variants) == 0 {
			if f.ID == id {
				return f, Variant{}, true
			}
			continue
		}
		for _, v := range f.Variants {
			if v.ID == id {
				return f, v, true
			}
		}
	}
	return Framework{}, Variant{}, false
}
