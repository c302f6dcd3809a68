// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Generation is the validated input handed to a GenerateFunc.
type Generation struct {
	Name   string
	Fields []Field
	Count  int
	Types  TypeTable
	Values ValueSource
}

// TypeDef is the template data for a declaration.
type TypeDef struct {
	Name   string
	Fields []TypedField
}

// TypedField is a field with its resolved target type spelling.
type TypedField struct {
	Name      string // field name, verbatim
	Type      string // target type spelling
	Accessor  string // field name with the first letter upper-cased
	FieldType FieldType
}

// Multiple reports whether an instance collection must be emitted.
func (g *Generation) Multiple() bool {
	return g.Count > 1
}

// HasType reports whether any field is of type t.
func (g *Generation) HasType(t FieldType) bool {
	for _, f := range g.Fields {
		if f.Type == t {
			return true
		}
	}
	return false
}

// CollectionName derives the instance collection identifier from the declaration name.
func (g *Generation) CollectionName(suffix string) string {
	return LowerFirst(g.Name) + suffix
}

// TypeDef resolves every field against the language type table.
func (g *Generation) TypeDef() (TypeDef, error) {
	return g.TypeDefWith(g.Types)
}

// TypeDefWith resolves every field against an alternative type table,
// for formats whose declarations use a different vocabulary (e.g. schema builders).
func (g *Generation) TypeDefWith(types TypeTable) (TypeDef, error) {
	def := TypeDef{Name: g.Name, Fields: make([]TypedField, 0, len(g.Fields))}
	for _, f := range g.Fields {
		spec, err := types.Spec(f.Type)
		if err != nil {
			return TypeDef{}, fmt.Errorf("field %q: %w", f.Name, err)
		}
		def.Fields = append(def.Fields, TypedField{
			Name:      f.Name,
			Type:      spec.Name,
			Accessor:  UpperFirst(f.Name),
			FieldType: f.Type,
		})
	}
	return def, nil
}

// Placeholder returns the fixed placeholder literal of a field's type.
func (g *Generation) Placeholder(f Field) (string, error) {
	spec, err := g.Types.Spec(f.Type)
	if err != nil {
		return "", err
	}
	return spec.Placeholder, nil
}

// Literal synthesizes a value for f and formats it for the target language.
func (g *Generation) Literal(f Field) (string, error) {
	spec, err := g.Types.Spec(f.Type)
	if err != nil {
		return "", err
	}
	return spec.Literal(g.Values.Value(f.Type, f.Name)), nil
}

// Records synthesizes Count records. For each record, render receives one literal per
// field in declared order and returns the instance text.
func (g *Generation) Records(render func(literals []string) string) ([]string, error) {
	records := make([]string, 0, g.Count)
	for range g.Count {
		literals := make([]string, len(g.Fields))
		for i, f := range g.Fields {
			lit, err := g.Literal(f)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
			literals[i] = lit
		}
		records = append(records, render(literals))
	}
	return records, nil
}

// Document assembles output from independent sections separated by a blank line.
type Document struct {
	sections []string
}

// Add appends a section. Empty sections are skipped.
func (d *Document) Add(section string) {
	if section == "" {
		return
	}
	d.sections = append(d.sections, section)
}

func (d *Document) String() string {
	return strings.Join(d.sections, "\n\n")
}

// GeneratedComment returns the line that introduces an instance collection.
func GeneratedComment(prefix string, count int) string {
	return fmt.Sprintf("%s Generated %d sample instances", prefix, count)
}

// Collection renders items between an opening and closing line, one item per line
// separated by commas.
func Collection(comment, open string, items []string, closing string) string {
	var sb strings.Builder
	if comment != "" {
		sb.WriteString(comment)
		sb.WriteByte('\n')
	}
	sb.WriteString(open)
	sb.WriteByte('\n')
	if len(items) > 0 {
		sb.WriteString(strings.Join(items, ",\n"))
		sb.WriteByte('\n')
	}
	sb.WriteString(closing)
	return sb.String()
}

// Lines joins non-empty lines with newlines.
func Lines(lines ...string) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

// Execute runs a named template and returns its output without trailing newlines.
func Execute(tmpl *template.Template, name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
