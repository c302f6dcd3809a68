// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package java

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dacolabs/fakegen/internal/codegen"
)

// Java formats.
const (
	FormatClass   codegen.Format = "class"
	FormatRecord  codegen.Format = "record"
	FormatBuilder codegen.Format = "builder"
)

//go:embed java.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"params": func(fields []codegen.TypedField) string {
		parts := make([]string, len(fields))
		for i, f := range fields {
			parts[i] = f.Type + " " + f.Name
		}
		return strings.Join(parts, ", ")
	},
	"args": func(fields []codegen.TypedField) string {
		parts := make([]string, len(fields))
		for i, f := range fields {
			parts[i] = f.Name
		}
		return strings.Join(parts, ", ")
	},
}).ParseFS(tmplFS, "java.go.tmpl"))

// Register adds Java and its formats to reg.
func Register(reg *codegen.Registry) error {
	if err := reg.RegisterLanguage(codegen.Java, "Java", Types); err != nil {
		return err
	}

	formats := []struct {
		id   codegen.Format
		name string
		fn   codegen.GenerateFunc
	}{
		{FormatClass, "POJO Class", generateClass},
		{FormatRecord, "Record (Java 14+)", generateRecord},
		{FormatBuilder, "Builder Pattern", generateBuilder},
	}
	for _, f := range formats {
		if err := reg.Register(codegen.Java, f.id, f.name, f.fn); err != nil {
			return err
		}
	}
	return nil
}

func generateClass(g *codegen.Generation) (string, error) {
	return render(g, "class", constructorInstance(g))
}

func generateRecord(g *codegen.Generation) (string, error) {
	return render(g, "record", constructorInstance(g))
}

func generateBuilder(g *codegen.Generation) (string, error) {
	return render(g, "builder", builderInstance(g))
}

// render assembles imports, the declaration and, for more than one record, the sample list.
func render(g *codegen.Generation, name string, instance func(literals []string) string) (string, error) {
	def, err := g.TypeDef()
	if err != nil {
		return "", err
	}
	decl, err := codegen.Execute(tmpl, name, def)
	if err != nil {
		return "", err
	}

	var doc codegen.Document
	doc.Add(imports(g))
	doc.Add(decl)

	if g.Multiple() {
		records, err := g.Records(instance)
		if err != nil {
			return "", err
		}
		doc.Add(codegen.Collection(
			codegen.GeneratedComment("//", g.Count),
			fmt.Sprintf("List<%s> %s = Arrays.asList(", g.Name, g.CollectionName("List")),
			records,
			");",
		))
	}

	return doc.String(), nil
}

// imports derives the import block from the field types in use.
func imports(g *codegen.Generation) string {
	var lines []string
	if g.HasType(codegen.TypeDate) {
		lines = append(lines, "import java.time.Instant;")
	}
	if g.Multiple() {
		lines = append(lines, "import java.util.Arrays;")
	}
	if g.Multiple() || g.HasType(codegen.TypeArray) {
		lines = append(lines, "import java.util.List;")
	}
	return strings.Join(lines, "\n")
}

func constructorInstance(g *codegen.Generation) func([]string) string {
	return func(literals []string) string {
		return fmt.Sprintf("    new %s(%s)", g.Name, strings.Join(literals, ", "))
	}
}

func builderInstance(g *codegen.Generation) func([]string) string {
	return func(literals []string) string {
		var sb strings.Builder
		sb.WriteString("    " + g.Name + ".builder()\n")
		for i, f := range g.Fields {
			fmt.Fprintf(&sb, "        .%s(%s)\n", f.Name, literals[i])
		}
		sb.WriteString("        .build()")
		return sb.String()
	}
}
