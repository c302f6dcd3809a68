// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package javascript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/fakegen/internal/codegen"
	"github.com/dacolabs/fakegen/internal/codegen/codegentest"
)

func generate(t *testing.T, format codegen.Format, fields []codegen.Field, count int) string {
	t.Helper()
	reg := codegen.NewRegistry()
	require.NoError(t, Register(reg))

	out, err := reg.Generate(codegen.Request{
		Language: codegen.JavaScript,
		Format:   format,
		Name:     "User",
		Fields:   fields,
		Count:    count,
	}, codegentest.Values{})
	require.NoError(t, err)
	return out
}

var fields = []codegen.Field{
	{Name: "id", Type: codegen.TypeInteger},
	{Name: "email", Type: codegen.TypeString},
	{Name: "signedUp", Type: codegen.TypeDate},
}

func TestGenerate_Object(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		expected string
	}{
		{
			name:  "template object",
			count: 1,
			expected: `const user = {
  id: null, // number
  email: null, // string
  signedUp: null, // Date
};`,
		},
		{
			name:  "populated array",
			count: 2,
			expected: `// Generated 2 sample instances
const userList = [
  {
    id: 42,
    email: "email",
    signedUp: new Date("2024-03-15T10:30:00Z")
  },
  {
    id: 42,
    email: "email",
    signedUp: new Date("2024-03-15T10:30:00Z")
  }
];`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, generate(t, FormatObject, fields, tt.count))
		})
	}
}

func TestGenerate_Class(t *testing.T) {
	declaration := `class User {
  /**
   * @param {number} id
   * @param {string} email
   * @param {Date} signedUp
   */
  constructor(id, email, signedUp) {
    this.id = id;
    this.email = email;
    this.signedUp = signedUp;
  }
}`
	assert.Equal(t, declaration, generate(t, FormatClass, fields, 1))

	instance := `  new User(42, "email", new Date("2024-03-15T10:30:00Z"))`
	want := declaration + "\n\n// Generated 3 sample instances\nconst userList = [\n" +
		instance + ",\n" + instance + ",\n" + instance + "\n];"
	assert.Equal(t, want, generate(t, FormatClass, fields, 3))
}

func TestRegister_RejectsForeignFormats(t *testing.T) {
	reg := codegen.NewRegistry()
	require.NoError(t, Register(reg))

	_, err := reg.Get(codegen.JavaScript, "interface")
	assert.ErrorIs(t, err, codegen.ErrNoGenerator)
}
