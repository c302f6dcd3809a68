// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name       string
		config     string // written to fakegen.yaml when non-empty
		explicit   string // ConfigPath option, relative to the temp dir
		wantErr    error
		wantFormat string
	}{
		{
			name:    "no config uses defaults",
			wantErr: nil,
		},
		{
			name:       "valid config",
			config:     "version: 1\nlanguage: java\nformat: builder\n",
			wantFormat: "builder",
		},
		{
			name:    "invalid version",
			config:  "version: 7\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:    "malformed yaml",
			config:  "version: [1\n",
			wantErr: ErrInvalidConfig,
		},
		{
			name:     "explicit config missing",
			explicit: "other.yaml",
			wantErr:  ErrConfigNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			origDir, _ := os.Getwd()
			defer func() { _ = os.Chdir(origDir) }()
			require.NoError(t, os.Chdir(dir))

			if tt.config != "" {
				writeConfig(t, dir, tt.config)
			}

			ctx, err := Load(context.Background(), Options{
				ConfigPath: tt.explicit,
				LogOutput:  &bytes.Buffer{},
			})
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			fakegenCtx := From(ctx)
			require.NotNil(t, fakegenCtx)
			assert.Equal(t, tt.wantFormat, fakegenCtx.Config.Format)
			assert.Contains(t, fakegenCtx.Presets, "user")
		})
	}
}

func TestLoad_MergesPresets(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `version: 1
presets:
  user:
    - name: handle
      type: string
  point:
    - name: x
      type: integer
`)

	ctx, err := Load(context.Background(), Options{ConfigPath: path, LogOutput: &bytes.Buffer{}})
	require.NoError(t, err)

	fakegenCtx := From(ctx)
	require.NotNil(t, fakegenCtx)
	assert.Equal(t, path, fakegenCtx.ConfigPath)
	assert.Equal(t, []string{"blog", "point", "product", "user"}, fakegenCtx.Presets.Names())
	assert.Len(t, fakegenCtx.Presets["user"], 1)
}

func TestLoad_LogLevelOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "version: 1\nlogLevel: error\n")

	var logs bytes.Buffer
	_, err := Load(context.Background(), Options{ConfigPath: path, LogLevel: "debug", LogOutput: &logs})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "session loaded")
}

func TestRequireFromCommand(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	_, err := RequireFromCommand(cmd)
	assert.Error(t, err)

	cmd.Flags().String("config", "", "")
	cmd.Flags().String("log-level", "", "")
	cmd.SetErr(&bytes.Buffer{})

	dir := t.TempDir()
	origDir, _ := os.Getwd()
	defer func() { _ = os.Chdir(origDir) }()
	require.NoError(t, os.Chdir(dir))

	require.NoError(t, PreRunLoad(cmd, nil))
	fakegenCtx, err := RequireFromCommand(cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, fakegenCtx.Config.Version)
	assert.Empty(t, fakegenCtx.ConfigPath)
}
