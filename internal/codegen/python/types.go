// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package python renders Python dicts, dataclasses and Pydantic models.
package python

import (
	"strings"

	"github.com/dacolabs/fakegen/internal/codegen"
)

// Types maps field types to Python type hints, literals and dict placeholders.
var Types = codegen.TypeTable{
	codegen.TypeString:  {Name: "str", Literal: codegen.StringLiteral, Placeholder: `"example_string"`},
	codegen.TypeInteger: {Name: "int", Literal: codegen.IntLiteral, Placeholder: "0"},
	codegen.TypeBoolean: {Name: "bool", Literal: boolLiteral, Placeholder: "True"},
	codegen.TypeDate:    {Name: "datetime", Literal: dateLiteral, Placeholder: `"2024-01-01"`},
	codegen.TypeArray:   {Name: "List[str]", Literal: listLiteral, Placeholder: "[]"},
}

func boolLiteral(v codegen.Value) string {
	if v.Bool {
		return "True"
	}
	return "False"
}

// dateLiteral spells the UTC designator as an offset, which fromisoformat accepts
// on every Python 3 release.
func dateLiteral(v codegen.Value) string {
	iso := v.Text
	if rest, ok := strings.CutSuffix(iso, "Z"); ok {
		iso = rest + "+00:00"
	}
	return "datetime.fromisoformat(" + codegen.Quote(iso) + ")"
}

func listLiteral(v codegen.Value) string {
	return "[" + codegen.QuoteAll(v.Items()) + "]"
}
