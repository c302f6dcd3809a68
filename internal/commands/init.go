// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dacolabs/fakegen/internal/codegen"
	"github.com/dacolabs/fakegen/internal/config"
	"github.com/dacolabs/fakegen/internal/prompts"
	"github.com/dacolabs/fakegen/internal/session"
)

type initOptions struct {
	language       string
	format         string
	count          int
	nonInteractive bool
}

func newInitCmd(reg *codegen.Registry) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a fakegen.yaml with default settings",
		Long: `Create a fakegen.yaml configuration file in the current directory.
The file stores the default language, format and record count used by generate.`,
		Example: `  # Interactive mode
  fakegen init

  # Non-interactive
  fakegen init --lang typescript --format zod --count 5 --non-interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, reg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.language, "lang", "l", "", "Default language")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Default format")
	cmd.Flags().IntVarP(&opts.count, "count", "c", 1, "Default record count")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(cmd *cobra.Command, reg *codegen.Registry, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfgPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return errors.New(session.ConfigFileName + " already exists")
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(&opts.language, &opts.format, &opts.count, reg.Languages(), config.MaxRecordCount); err != nil {
			return err
		}
	}

	if opts.language != "" || opts.format != "" {
		if _, err := reg.Get(codegen.Language(opts.language), codegen.Format(opts.format)); err != nil {
			return err
		}
	}

	cfg := config.Config{
		Version:  config.CurrentConfigVersion,
		Language: opts.language,
		Format:   opts.format,
		Count:    opts.count,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Config", Value: session.ConfigFileName},
	}, "Initialization completed")
	return nil
}
