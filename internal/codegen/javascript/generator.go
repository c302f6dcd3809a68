// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package javascript renders JavaScript object literals and classes.
package javascript

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dacolabs/fakegen/internal/codegen"
	"github.com/dacolabs/fakegen/internal/codegen/ecma"
)

// JavaScript formats.
const (
	FormatObject codegen.Format = "object"
	FormatClass  codegen.Format = "class-js"
)

// Types maps field types to JSDoc type names.
var Types = ecma.Types(map[codegen.FieldType]string{
	codegen.TypeString:  "string",
	codegen.TypeInteger: "number",
	codegen.TypeBoolean: "boolean",
	codegen.TypeDate:    "Date",
	codegen.TypeArray:   "string[]",
})

//go:embed javascript.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"args": func(fields []codegen.TypedField) string {
		names := make([]string, len(fields))
		for i, f := range fields {
			names[i] = f.Name
		}
		return strings.Join(names, ", ")
	},
}).ParseFS(tmplFS, "javascript.go.tmpl"))

// Register adds JavaScript and its formats to reg.
func Register(reg *codegen.Registry) error {
	if err := reg.RegisterLanguage(codegen.JavaScript, "JavaScript", Types); err != nil {
		return err
	}
	if err := reg.Register(codegen.JavaScript, FormatObject, "Object Literal", generateObject); err != nil {
		return err
	}
	return reg.Register(codegen.JavaScript, FormatClass, "Class", generateClass)
}

// generateObject renders a single template object, or an array of populated objects
// when more than one record is requested.
func generateObject(g *codegen.Generation) (string, error) {
	if g.Multiple() {
		return ecma.Records(g, false, ecma.ObjectInstance(g.Fields))
	}

	def, err := g.TypeDef()
	if err != nil {
		return "", err
	}
	lines := make([]string, 0, len(def.Fields)+2)
	lines = append(lines, "const "+g.CollectionName("")+" = {")
	for _, f := range def.Fields {
		lines = append(lines, fmt.Sprintf("  %s: null, // %s", f.Name, f.Type))
	}
	lines = append(lines, "};")
	return codegen.Lines(lines...), nil
}

func generateClass(g *codegen.Generation) (string, error) {
	def, err := g.TypeDef()
	if err != nil {
		return "", err
	}
	decl, err := codegen.Execute(tmpl, "class", def)
	if err != nil {
		return "", err
	}

	var doc codegen.Document
	doc.Add(decl)
	if g.Multiple() {
		records, err := ecma.Records(g, false, ecma.NewInstance(g.Name))
		if err != nil {
			return "", err
		}
		doc.Add(records)
	}
	return doc.String(), nil
}
