// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package java renders Java POJO classes, records and builders.
package java

import (
	"github.com/dacolabs/fakegen/internal/codegen"
)

// Types maps field types to Java type names and literals.
var Types = codegen.TypeTable{
	codegen.TypeString:  {Name: "String", Literal: codegen.StringLiteral},
	codegen.TypeInteger: {Name: "Integer", Literal: codegen.IntLiteral},
	codegen.TypeBoolean: {Name: "Boolean", Literal: codegen.BoolLiteral},
	codegen.TypeDate:    {Name: "Instant", Literal: dateLiteral},
	codegen.TypeArray:   {Name: "List<String>", Literal: listLiteral},
}

// dateLiteral parses the ISO-8601 instant at runtime.
func dateLiteral(v codegen.Value) string {
	return "Instant.parse(" + codegen.Quote(v.Text) + ")"
}

func listLiteral(v codegen.Value) string {
	return "Arrays.asList(" + codegen.QuoteAll(v.Items()) + ")"
}
