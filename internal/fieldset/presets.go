// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package fieldset

import (
	"fmt"
	"sort"

	"github.com/dacolabs/fakegen/internal/codegen"
)

// Preset is a named, reusable field list.
type Preset struct {
	Name   string          `yaml:"name" json:"name"`
	Fields []codegen.Field `yaml:"fields" json:"fields"`
}

// Presets maps preset names to their fields.
type Presets map[string][]codegen.Field

// Builtin returns the predefined field sets.
func Builtin() Presets {
	return Presets{
		"user": {
			{Name: "id", Type: codegen.TypeInteger},
			{Name: "username", Type: codegen.TypeString},
			{Name: "email", Type: codegen.TypeString},
			{Name: "isActive", Type: codegen.TypeBoolean},
		},
		"product": {
			{Name: "id", Type: codegen.TypeInteger},
			{Name: "name", Type: codegen.TypeString},
			{Name: "price", Type: codegen.TypeInteger},
			{Name: "inStock", Type: codegen.TypeBoolean},
		},
		"blog": {
			{Name: "id", Type: codegen.TypeInteger},
			{Name: "title", Type: codegen.TypeString},
			{Name: "content", Type: codegen.TypeString},
			{Name: "publishedDate", Type: codegen.TypeDate},
			{Name: "tags", Type: codegen.TypeArray},
		},
	}
}

// Merge returns a copy of p with extra added; entries in extra win.
func (p Presets) Merge(extra Presets) Presets {
	out := make(Presets, len(p)+len(extra))
	for name, fields := range p {
		out[name] = fields
	}
	for name, fields := range extra {
		out[name] = fields
	}
	return out
}

// Get returns a copy of the named preset's fields.
func (p Presets) Get(name string) ([]codegen.Field, error) {
	fields, ok := p[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (available: %v)", name, p.Names())
	}
	return append([]codegen.Field(nil), fields...), nil
}

// Names returns preset names sorted.
func (p Presets) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns all presets sorted by name.
func (p Presets) List() []Preset {
	out := make([]Preset, 0, len(p))
	for _, name := range p.Names() {
		out = append(out, Preset{Name: name, Fields: p[name]})
	}
	return out
}
