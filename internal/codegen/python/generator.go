// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package python

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dacolabs/fakegen/internal/codegen"
)

// Python formats.
const (
	FormatDict      codegen.Format = "dict"
	FormatDataclass codegen.Format = "dataclass"
	FormatPydantic  codegen.Format = "pydantic"
)

//go:embed python.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "python.go.tmpl"))

// Register adds Python and its formats to reg.
func Register(reg *codegen.Registry) error {
	if err := reg.RegisterLanguage(codegen.Python, "Python", Types); err != nil {
		return err
	}

	formats := []struct {
		id   codegen.Format
		name string
		fn   codegen.GenerateFunc
	}{
		{FormatDict, "Dictionary", generateDict},
		{FormatDataclass, "Dataclass", generateDataclass},
		{FormatPydantic, "Pydantic Model", generatePydantic},
	}
	for _, f := range formats {
		if err := reg.Register(codegen.Python, f.id, f.name, f.fn); err != nil {
			return err
		}
	}
	return nil
}

// generateDict renders a single placeholder dict, or a list of populated dicts
// when more than one record is requested. The list carries the shape on its own.
func generateDict(g *codegen.Generation) (string, error) {
	if !g.Multiple() {
		entries := make([]string, 0, len(g.Fields))
		for _, f := range g.Fields {
			placeholder, err := g.Placeholder(f)
			if err != nil {
				return "", err
			}
			entries = append(entries, fmt.Sprintf("    %s: %s", codegen.Quote(f.Name), placeholder))
		}
		return codegen.Collection("", g.CollectionName("")+" = {", entries, "}"), nil
	}

	records, err := g.Records(func(literals []string) string {
		entries := make([]string, len(literals))
		for i, f := range g.Fields {
			entries[i] = fmt.Sprintf("        %s: %s", codegen.Quote(f.Name), literals[i])
		}
		return codegen.Collection("", "    {", entries, "    }")
	})
	if err != nil {
		return "", err
	}

	var doc codegen.Document
	if g.HasType(codegen.TypeDate) {
		doc.Add("from datetime import datetime")
	}
	doc.Add(collection(g, records))
	return doc.String(), nil
}

func generateDataclass(g *codegen.Generation) (string, error) {
	return render(g, "dataclass", "")
}

func generatePydantic(g *codegen.Generation) (string, error) {
	return render(g, "pydantic", "from pydantic import BaseModel")
}

// render assembles imports, the class declaration and, for more than one record,
// a list of keyword-constructed instances.
func render(g *codegen.Generation, name, thirdParty string) (string, error) {
	def, err := g.TypeDef()
	if err != nil {
		return "", err
	}
	decl, err := codegen.Execute(tmpl, name, def)
	if err != nil {
		return "", err
	}

	var doc codegen.Document
	doc.Add(stdlibImports(g, name == "dataclass"))
	doc.Add(thirdParty)
	doc.Add(decl)

	if g.Multiple() {
		records, err := g.Records(func(literals []string) string {
			args := make([]string, len(literals))
			for i, f := range g.Fields {
				args[i] = fmt.Sprintf("        %s=%s", f.Name, literals[i])
			}
			return codegen.Collection("", "    "+g.Name+"(", args, "    )")
		})
		if err != nil {
			return "", err
		}
		doc.Add(collection(g, records))
	}

	return doc.String(), nil
}

func stdlibImports(g *codegen.Generation, dataclass bool) string {
	var lines []string
	if dataclass {
		lines = append(lines, "from dataclasses import dataclass")
	}
	if g.HasType(codegen.TypeDate) {
		lines = append(lines, "from datetime import datetime")
	}
	if g.HasType(codegen.TypeArray) {
		lines = append(lines, "from typing import List")
	}
	return strings.Join(lines, "\n")
}

func collection(g *codegen.Generation, records []string) string {
	return codegen.Collection(
		codegen.GeneratedComment("#", g.Count),
		g.CollectionName("_list")+" = [",
		records,
		"]",
	)
}
