// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package codegen

import (
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument(t *testing.T) {
	var doc Document
	doc.Add("import x")
	doc.Add("")
	doc.Add("class X {}")

	assert.Equal(t, "import x\n\nclass X {}", doc.String())

	var empty Document
	assert.Equal(t, "", empty.String())
}

func TestCollection(t *testing.T) {
	got := Collection(GeneratedComment("//", 2), "const xs = [", []string{"  1", "  2"}, "];")
	assert.Equal(t, "// Generated 2 sample instances\nconst xs = [\n  1,\n  2\n];", got)

	got = Collection("", "x = {", nil, "}")
	assert.Equal(t, "x = {\n}", got)
}

func TestLines(t *testing.T) {
	assert.Equal(t, "a\nc", Lines("a", "", "c"))
	assert.Equal(t, "", Lines())
}

func TestGeneration_TypeDef(t *testing.T) {
	types := TypeTable{
		TypeString:  {Name: "String", Literal: StringLiteral},
		TypeInteger: {Name: "Integer", Literal: IntLiteral},
	}
	g := &Generation{
		Name:   "User",
		Fields: []Field{{Name: "id", Type: TypeInteger}, {Name: "userName", Type: TypeString}},
		Types:  types,
		Count:  1,
	}

	def, err := g.TypeDef()
	require.NoError(t, err)
	assert.Equal(t, TypeDef{
		Name: "User",
		Fields: []TypedField{
			{Name: "id", Type: "Integer", Accessor: "Id", FieldType: TypeInteger},
			{Name: "userName", Type: "String", Accessor: "UserName", FieldType: TypeString},
		},
	}, def)

	assert.True(t, g.HasType(TypeInteger))
	assert.False(t, g.HasType(TypeDate))
	assert.False(t, g.Multiple())
	assert.Equal(t, "userList", g.CollectionName("List"))

	g.Fields = append(g.Fields, Field{Name: "born", Type: TypeDate})
	_, err = g.TypeDef()
	assert.ErrorIs(t, err, ErrMissingType)
}

func TestExecute(t *testing.T) {
	tmpl := template.Must(template.New("").Parse(`{{ define "greet" }}hello {{ . }}` + "\n\n" + `{{ end }}`))

	got, err := Execute(tmpl, "greet", "world")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)

	_, err = Execute(tmpl, "missing", nil)
	assert.ErrorContains(t, err, "failed to execute template")
}
