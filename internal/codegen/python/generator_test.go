// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package python

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/fakegen/internal/codegen"
	"github.com/dacolabs/fakegen/internal/codegen/codegentest"
)

func generate(t *testing.T, format codegen.Format, name string, fields []codegen.Field, count int) string {
	t.Helper()
	reg := codegen.NewRegistry()
	require.NoError(t, Register(reg))

	out, err := reg.Generate(codegen.Request{
		Language: codegen.Python,
		Format:   format,
		Name:     name,
		Fields:   fields,
		Count:    count,
	}, codegentest.Values{})
	require.NoError(t, err)
	return out
}

var eventFields = []codegen.Field{
	{Name: "id", Type: codegen.TypeInteger},
	{Name: "createdAt", Type: codegen.TypeDate},
	{Name: "tags", Type: codegen.TypeArray},
}

func TestGenerate_Dataclass(t *testing.T) {
	tests := []struct {
		name     string
		decl     string
		fields   []codegen.Field
		count    int
		expected string
	}{
		{
			name:   "single record",
			decl:   "User",
			fields: codegentest.UserFields(),
			count:  1,
			expected: `from dataclasses import dataclass

@dataclass
class User:
    id: int
    username: str
    email: str
    isActive: bool`,
		},
		{
			name:   "multiple records with imports",
			decl:   "Event",
			fields: eventFields,
			count:  2,
			expected: `from dataclasses import dataclass
from datetime import datetime
from typing import List

@dataclass
class Event:
    id: int
    createdAt: datetime
    tags: List[str]

# Generated 2 sample instances
event_list = [
    Event(
        id=42,
        createdAt=datetime.fromisoformat("2024-03-15T10:30:00+00:00"),
        tags=["a", "b"]
    ),
    Event(
        id=42,
        createdAt=datetime.fromisoformat("2024-03-15T10:30:00+00:00"),
        tags=["a", "b"]
    )
]`,
		},
		{
			name:   "no fields",
			decl:   "Empty",
			fields: nil,
			count:  1,
			expected: `from dataclasses import dataclass

@dataclass
class Empty:
    pass`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, generate(t, FormatDataclass, tt.decl, tt.fields, tt.count))
		})
	}
}

func TestGenerate_Pydantic(t *testing.T) {
	out := generate(t, FormatPydantic, "User", codegentest.UserFields(), 1)
	assert.Equal(t, `from pydantic import BaseModel

class User(BaseModel):
    id: int
    username: str
    email: str
    isActive: bool`, out)

	out = generate(t, FormatPydantic, "Event", eventFields, 1)
	assert.Equal(t, `from datetime import datetime
from typing import List

from pydantic import BaseModel

class Event(BaseModel):
    id: int
    createdAt: datetime
    tags: List[str]`, out)
}

func TestGenerate_Dict(t *testing.T) {
	out := generate(t, FormatDict, "UserProfile", codegentest.UserFields(), 1)
	assert.Equal(t, `userProfile = {
    "id": 0,
    "username": "example_string",
    "email": "example_string",
    "isActive": True
}`, out)

	fields := []codegen.Field{
		{Name: "name", Type: codegen.TypeString},
		{Name: "joined", Type: codegen.TypeDate},
	}
	out = generate(t, FormatDict, "Member", fields, 2)
	assert.Equal(t, `from datetime import datetime

# Generated 2 sample instances
member_list = [
    {
        "name": "name",
        "joined": datetime.fromisoformat("2024-03-15T10:30:00+00:00")
    },
    {
        "name": "name",
        "joined": datetime.fromisoformat("2024-03-15T10:30:00+00:00")
    }
]`, out)
}

func TestLiterals(t *testing.T) {
	assert.Equal(t, "True", boolLiteral(codegen.BoolValue(true)))
	assert.Equal(t, "False", boolLiteral(codegen.BoolValue(false)))
	assert.Equal(t, `datetime.fromisoformat("2024-03-15T10:30:00+00:00")`, dateLiteral(codegen.DateValue(codegentest.Date)))
	assert.Equal(t, `["x", "y\"z"]`, listLiteral(codegen.ListValue([]string{"x", `y"z`})))
	assert.Equal(t, `[]`, listLiteral(codegen.ListValue(nil)))
}
