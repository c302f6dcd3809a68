// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/fakegen/internal/codegen"
	"github.com/dacolabs/fakegen/internal/codegen/builtin"
	"github.com/dacolabs/fakegen/internal/config"
	"github.com/dacolabs/fakegen/internal/session"
)

// execute runs the root command in an empty working directory unless dir is set.
func execute(t *testing.T, dir string, args ...string) (string, string, error) {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	t.Chdir(dir)

	reg, err := builtin.New()
	require.NoError(t, err)

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd(reg)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func testdata(t *testing.T, name string) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("testdata", name))
	require.NoError(t, err)
	return path
}

func TestGenerate_Flags(t *testing.T) {
	out, _, err := execute(t, "", "generate", "--non-interactive",
		"--lang", "java", "--format", "record", "--name", "User",
		"--field", "id:integer", "--field", "username:string,email:string",
		"--count", "3", "--seed", "1")
	require.NoError(t, err)

	assert.Contains(t, out, "public record User(Integer id, String username, String email) {}")
	assert.Contains(t, out, "// Generated 3 sample instances")
	assert.Equal(t, 3, strings.Count(out, "    new User("))
	assert.True(t, strings.HasSuffix(out, ");\n"))
}

func TestGenerate_SeedIsRepeatable(t *testing.T) {
	args := []string{"gen", "--non-interactive", "-l", "python", "-f", "dataclass", "-n", "Person",
		"--field", "firstName:string,age:integer,tags:array", "-c", "5", "--seed", "99"}

	first, _, err := execute(t, "", args...)
	require.NoError(t, err)
	second, _, err := execute(t, "", args...)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGenerate_Sources(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name: "preset",
			args: []string{"-l", "typescript", "-f", "interface", "--preset", "user"},
			contains: []string{
				"interface User {\n  id: number;\n  username: string;\n  email: string;\n  isActive: boolean;\n}",
			},
		},
		{
			name:     "preset with extra field and explicit name",
			args:     []string{"-l", "javascript", "-f", "class-js", "-n", "Article", "--preset", "blog", "--field", "views:integer"},
			contains: []string{"class Article {", "   * @param {string[]} tags", "   * @param {number} views"},
		},
		{
			name:     "fields file",
			args:     []string{"-l", "java", "-f", "class", "--fields-file", "order.yaml"},
			contains: []string{"public class Order {", "    private Boolean shipped;"},
		},
		{
			name:     "json schema",
			args:     []string{"-l", "python", "-f", "pydantic", "--schema", "user.schema.json"},
			contains: []string{"class User(BaseModel):\n    email: str\n    age: int"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"generate", "--non-interactive"}, tt.args...)
			for i, a := range args {
				if strings.HasSuffix(a, ".yaml") || strings.HasSuffix(a, ".json") {
					args[i] = testdata(t, a)
				}
			}

			out, _, err := execute(t, "", args...)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
		is      error
	}{
		{
			name:    "missing input",
			args:    []string{"-l", "java", "-f", "record"},
			wantErr: "non-interactive mode requires",
		},
		{
			name:    "format of another language",
			args:    []string{"-l", "java", "-f", "dict", "-n", "User", "--field", "id:integer"},
			wantErr: "Available formats: java/builder",
			is:      codegen.ErrNoGenerator,
		},
		{
			name:    "count out of range",
			args:    []string{"-l", "java", "-f", "record", "-n", "User", "--field", "id:integer", "-c", "0"},
			wantErr: "count must be between 1 and 10000",
		},
		{
			name:    "bad field",
			args:    []string{"-l", "java", "-f", "record", "-n", "User", "--field", "id:float"},
			wantErr: `unknown field type "float"`,
		},
		{
			name:    "exclusive sources",
			args:    []string{"-l", "java", "-f", "record", "--preset", "user", "--schema", "x.json"},
			wantErr: "mutually exclusive",
		},
		{
			name:    "unknown preset",
			args:    []string{"-l", "java", "-f", "record", "--preset", "invoice"},
			wantErr: `unknown preset "invoice"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"generate", "--non-interactive"}, tt.args...)
			_, _, err := execute(t, "", args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			if tt.is != nil {
				assert.ErrorIs(t, err, tt.is)
			}
		})
	}
}

func TestGenerate_OutputFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "user.ts")

	out, _, err := execute(t, dir, "generate", "--non-interactive",
		"-l", "typescript", "-f", "zod", "--preset", "user", "-c", "2", "-o", target)
	require.NoError(t, err)

	assert.Contains(t, out, "Generated User")
	assert.Contains(t, out, target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `import { z } from "zod";`))
	assert.Contains(t, string(data), "const userList: User[] = [")
}

func TestGenerate_Copy(t *testing.T) {
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	out, stderr, err := execute(t, "", "generate", "--non-interactive",
		"-l", "python", "-f", "dict", "-n", "Point", "--field", "x:integer,y:integer", "--copy")
	require.NoError(t, err)

	assert.Equal(t, "point = {\n    \"x\": 0,\n    \"y\": 0\n}", copied)
	assert.Equal(t, copied+"\n", out)
	assert.Contains(t, stderr, "Copied to clipboard")
}

func TestGenerate_ConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		Version:  config.CurrentConfigVersion,
		Language: "python",
		Format:   "pydantic",
		Count:    2,
		Presets: map[string][]codegen.Field{
			"point": {{Name: "x", Type: codegen.TypeInteger}, {Name: "y", Type: codegen.TypeInteger}},
		},
	}
	require.NoError(t, cfg.Save(filepath.Join(dir, session.ConfigFileName)))

	out, _, err := execute(t, dir, "generate", "--non-interactive", "--preset", "point")
	require.NoError(t, err)
	assert.Contains(t, out, "class Point(BaseModel):\n    x: int\n    y: int")
	assert.Contains(t, out, "# Generated 2 sample instances")

	// flags win over config
	out, _, err = execute(t, dir, "generate", "--non-interactive", "--preset", "point", "-l", "java", "-f", "record", "-c", "1")
	require.NoError(t, err)
	assert.Equal(t, "public record Point(Integer x, Integer y) {}\n", out)
}

func TestGenerate_ExplicitConfigMissing(t *testing.T) {
	_, _, err := execute(t, "", "--config", "missing.yaml", "generate", "--non-interactive")
	assert.ErrorIs(t, err, session.ErrConfigNotFound)
}

func TestLanguages(t *testing.T) {
	out, _, err := execute(t, "", "languages")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 13)
	assert.Regexp(t, `^LANGUAGE\s+FORMAT\s+DESCRIPTION$`, lines[0])
	assert.Regexp(t, `^java\s+class\s+POJO Class$`, lines[1])
	assert.Regexp(t, `^typescript\s+zod\s+Zod Schema$`, lines[12])

	out, _, err = execute(t, "", "languages", "-o", "json")
	require.NoError(t, err)
	var langs []codegen.LanguageInfo
	require.NoError(t, json.Unmarshal([]byte(out), &langs))
	require.Len(t, langs, 4)
	assert.Equal(t, codegen.Python, langs[1].ID)
	assert.Len(t, langs[1].Formats, 3)

	_, _, err = execute(t, "", "languages", "-o", "xml")
	assert.ErrorContains(t, err, `unsupported output format "xml"`)
}

func TestPresets(t *testing.T) {
	out, _, err := execute(t, "", "presets")
	require.NoError(t, err)
	assert.Regexp(t, `NAME\s+FIELDS`, out)
	assert.Regexp(t, `user\s+id:integer, username:string, email:string, isActive:boolean`, out)

	out, _, err = execute(t, "", "presets", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "- name: blog\n  fields:\n    - name: id\n      type: integer")
}

func TestInit(t *testing.T) {
	dir := t.TempDir()

	out, _, err := execute(t, dir, "init", "--non-interactive", "-l", "typescript", "-f", "zod", "-c", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Initialization completed")

	cfg, err := config.Load(filepath.Join(dir, session.ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, "typescript", cfg.Language)
	assert.Equal(t, "zod", cfg.Format)
	assert.Equal(t, 5, cfg.Count)

	_, _, err = execute(t, dir, "init", "--non-interactive")
	assert.ErrorContains(t, err, "fakegen.yaml already exists")
}

func TestInit_InvalidPair(t *testing.T) {
	dir := t.TempDir()
	_, _, err := execute(t, dir, "init", "--non-interactive", "-l", "python", "-f", "zod")
	require.ErrorIs(t, err, codegen.ErrNoGenerator)

	_, statErr := os.Stat(filepath.Join(dir, session.ConfigFileName))
	assert.True(t, os.IsNotExist(statErr))
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "fakegen version "))

	out, _, err = execute(t, "", "version", "--short")
	require.NoError(t, err)
	assert.NotContains(t, out, "commit")
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "", "--log-level", "debug", "generate", "--non-interactive",
		"-l", "java", "-f", "record", "-n", "A", "--field", "b:string")
	require.NoError(t, err)
	assert.Contains(t, stderr, "session loaded")
	assert.Contains(t, stderr, "generated")
}
