// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package typescript renders TypeScript interfaces, type aliases, classes and Zod schemas.
package typescript

import (
	"embed"
	"strings"
	"text/template"

	"github.com/dacolabs/fakegen/internal/codegen"
	"github.com/dacolabs/fakegen/internal/codegen/ecma"
)

// TypeScript formats.
const (
	FormatInterface codegen.Format = "interface"
	FormatType      codegen.Format = "type"
	FormatClass     codegen.Format = "class-ts"
	FormatZod       codegen.Format = "zod"
)

// Types maps field types to TypeScript type names.
var Types = ecma.Types(map[codegen.FieldType]string{
	codegen.TypeString:  "string",
	codegen.TypeInteger: "number",
	codegen.TypeBoolean: "boolean",
	codegen.TypeDate:    "Date",
	codegen.TypeArray:   "string[]",
})

// ZodTypes maps field types to Zod schema builders. Values are still TypeScript literals.
var ZodTypes = ecma.Types(map[codegen.FieldType]string{
	codegen.TypeString:  "z.string()",
	codegen.TypeInteger: "z.number().int()",
	codegen.TypeBoolean: "z.boolean()",
	codegen.TypeDate:    "z.date()",
	codegen.TypeArray:   "z.array(z.string())",
})

//go:embed typescript.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"params": func(fields []codegen.TypedField) string {
		parts := make([]string, len(fields))
		for i, f := range fields {
			parts[i] = f.Name + ": " + f.Type
		}
		return strings.Join(parts, ", ")
	},
}).ParseFS(tmplFS, "typescript.go.tmpl"))

// Register adds TypeScript and its formats to reg.
func Register(reg *codegen.Registry) error {
	if err := reg.RegisterLanguage(codegen.TypeScript, "TypeScript", Types); err != nil {
		return err
	}
	if err := ZodTypes.Validate(); err != nil {
		return err
	}

	formats := []struct {
		id   codegen.Format
		name string
		fn   codegen.GenerateFunc
	}{
		{FormatInterface, "Interface", generateInterface},
		{FormatType, "Type Alias", generateType},
		{FormatClass, "Class", generateClass},
		{FormatZod, "Zod Schema", generateZod},
	}
	for _, f := range formats {
		if err := reg.Register(codegen.TypeScript, f.id, f.name, f.fn); err != nil {
			return err
		}
	}
	return nil
}

func generateInterface(g *codegen.Generation) (string, error) {
	return render(g, "interface", Types, ecma.ObjectInstance(g.Fields))
}

func generateType(g *codegen.Generation) (string, error) {
	return render(g, "type", Types, ecma.ObjectInstance(g.Fields))
}

func generateClass(g *codegen.Generation) (string, error) {
	return render(g, "class", Types, ecma.NewInstance(g.Name))
}

func generateZod(g *codegen.Generation) (string, error) {
	return render(g, "zod", ZodTypes, ecma.ObjectInstance(g.Fields))
}

// render assembles the declaration and, for more than one record, a typed sample array.
func render(g *codegen.Generation, name string, types codegen.TypeTable, instance func([]string) string) (string, error) {
	def, err := g.TypeDefWith(types)
	if err != nil {
		return "", err
	}
	decl, err := codegen.Execute(tmpl, name, def)
	if err != nil {
		return "", err
	}

	var doc codegen.Document
	doc.Add(decl)
	if g.Multiple() {
		records, err := ecma.Records(g, true, instance)
		if err != nil {
			return "", err
		}
		doc.Add(records)
	}
	return doc.String(), nil
}
