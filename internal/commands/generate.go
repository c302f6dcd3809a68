// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/dacolabs/fakegen/internal/codegen"
	"github.com/dacolabs/fakegen/internal/config"
	"github.com/dacolabs/fakegen/internal/fieldset"
	"github.com/dacolabs/fakegen/internal/mockdata"
	"github.com/dacolabs/fakegen/internal/prompts"
	"github.com/dacolabs/fakegen/internal/session"
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type generateOptions struct {
	language       string
	format         string
	name           string
	fields         []string
	preset         string
	fieldsFile     string
	schema         string
	count          int
	seed           uint64
	output         string
	clipboard      bool
	nonInteractive bool
}

func newGenerateCmd(reg *codegen.Registry) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a declaration and sample records",
		Long: fmt.Sprintf(`Generate a type declaration for the given fields and, when --count is greater
than one, a collection of sample records.

Fields come from --field (name:type), --preset, --fields-file (YAML) or
--schema (JSON Schema). --field may be combined with any of the others and
appends to their fields. Missing values are asked for interactively.

Available formats: %s`, strings.Join(reg.Available(), ", ")),
		Example: `  # Interactive mode
  fakegen generate

  # Java record with three sample records
  fakegen generate --lang java --format record --name User \
    --field id:integer --field username:string --field email:string --count 3

  # Pydantic model from a built-in preset, written to a file
  fakegen generate -l python -f pydantic -n Post --preset blog -c 10 -o post.py

  # TypeScript interface from a JSON Schema, copied to the clipboard
  fakegen generate -l typescript -f interface --schema user.schema.json --copy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cmd, ctx, reg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.language, "lang", "l", "", "Target language (java, python, javascript, typescript)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format for the language")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Declaration name, used verbatim")
	cmd.Flags().StringArrayVar(&opts.fields, "field", nil, "Field as name:type; repeatable or comma-separated")
	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "Built-in or configured field preset")
	cmd.Flags().StringVar(&opts.fieldsFile, "fields-file", "", "YAML file with name and fields")
	cmd.Flags().StringVar(&opts.schema, "schema", "", "JSON Schema file whose top-level properties become fields")
	cmd.Flags().IntVarP(&opts.count, "count", "c", 1, fmt.Sprintf("Number of records (1-%d)", config.MaxRecordCount))
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Random seed for repeatable output (0 picks one)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.clipboard, "copy", false, "Copy the output to the clipboard")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Fail instead of prompting for missing values")

	return cmd
}

func runGenerate(cmd *cobra.Command, ctx *session.Context, reg *codegen.Registry, opts *generateOptions) error {
	log := ctx.Logger

	// Config values fill in flags the user did not set
	if !cmd.Flags().Changed("lang") && opts.language == "" {
		opts.language = ctx.Config.Language
	}
	if !cmd.Flags().Changed("format") && opts.format == "" {
		opts.format = ctx.Config.Format
	}
	if !cmd.Flags().Changed("count") && ctx.Config.Count > 0 {
		opts.count = ctx.Config.Count
	}

	name, fields, err := resolveFields(ctx, opts)
	if err != nil {
		return err
	}
	if opts.name == "" {
		opts.name = name
	}

	answers := &prompts.GenerateAnswers{
		Language: opts.language,
		Format:   opts.format,
		Name:     opts.name,
		Count:    strconv.Itoa(opts.count),
	}
	if len(fields) > 0 {
		answers.Fields = fieldset.Format(fields)
	}

	if answers.NeedsInput() {
		if opts.nonInteractive {
			return errors.New("non-interactive mode requires --lang, --format, --name and at least one field")
		}
		if err := prompts.RunGenerateForm(answers, reg.Languages(), ctx.Presets.Names(), config.MaxRecordCount); err != nil {
			return err
		}
		if answers.Preset != "" {
			if fields, err = ctx.Presets.Get(answers.Preset); err != nil {
				return err
			}
		} else if fields, err = fieldset.ParseAll([]string{answers.Fields}); err != nil {
			return err
		}
		if opts.count, err = strconv.Atoi(answers.Count); err != nil {
			return fmt.Errorf("invalid count %q", answers.Count)
		}
	}

	if opts.count < 1 || opts.count > config.MaxRecordCount {
		return fmt.Errorf("count must be between 1 and %d", config.MaxRecordCount)
	}
	if len(fields) == 0 {
		return errors.New("no fields defined")
	}

	req := codegen.Request{
		Language: codegen.Language(answers.Language),
		Format:   codegen.Format(answers.Format),
		Name:     answers.Name,
		Fields:   fields,
		Count:    opts.count,
	}

	start := time.Now()
	text, err := reg.Generate(req, mockdata.New(opts.seed))
	if err != nil {
		return fmt.Errorf("%w. Available formats: %s", err, strings.Join(reg.Available(), ", "))
	}
	log.Debug().
		Str("language", string(req.Language)).
		Str("format", string(req.Format)).
		Int("fields", len(req.Fields)).
		Int("count", req.Count).
		Dur("elapsed", time.Since(start)).
		Msg("generated")

	return emit(cmd, opts, req, text)
}

// resolveFields collects fields from a preset, field file or schema, then appends --field values.
// It also returns a declaration name when the source provides one.
func resolveFields(ctx *session.Context, opts *generateOptions) (string, []codegen.Field, error) {
	sources := 0
	for _, s := range []string{opts.preset, opts.fieldsFile, opts.schema} {
		if s != "" {
			sources++
		}
	}
	if sources > 1 {
		return "", nil, errors.New("--preset, --fields-file and --schema are mutually exclusive")
	}

	var name string
	var fields []codegen.Field

	switch {
	case opts.preset != "":
		presetFields, err := ctx.Presets.Get(opts.preset)
		if err != nil {
			return "", nil, err
		}
		name, fields = codegen.ToPascalCase(opts.preset), presetFields
	case opts.fieldsFile != "":
		f, err := os.Open(opts.fieldsFile) //nolint:gosec // path is provided by user
		if err != nil {
			return "", nil, fmt.Errorf("failed to open field file: %w", err)
		}
		defer f.Close() //nolint:errcheck

		file, err := fieldset.LoadYAML(f)
		if err != nil {
			return "", nil, err
		}
		name, fields = file.Name, file.Fields
	case opts.schema != "":
		data, err := os.ReadFile(opts.schema)
		if err != nil {
			return "", nil, fmt.Errorf("failed to read schema: %w", err)
		}
		file, err := fieldset.FromJSONSchema(data)
		if err != nil {
			return "", nil, err
		}
		name, fields = file.Name, file.Fields
	}

	extra, err := fieldset.ParseAll(opts.fields)
	if err != nil {
		return "", nil, err
	}
	ctx.Logger.Debug().Int("fields", len(fields)+len(extra)).Str("name", name).Msg("fields resolved")
	return name, append(fields, extra...), nil
}

func emit(cmd *cobra.Command, opts *generateOptions, req codegen.Request, text string) error {
	if opts.clipboard {
		if err := copyToClipboard(text); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
	}

	if opts.output == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
		if err == nil && opts.clipboard {
			prompts.PrintResult(cmd.ErrOrStderr(), nil, "Copied to clipboard")
		}
		return err
	}

	if err := os.WriteFile(opts.output, []byte(text+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	result := []prompts.ResultField{
		{Label: "Language", Value: string(req.Language)},
		{Label: "Format", Value: string(req.Format)},
		{Label: "Records", Value: strconv.Itoa(req.Count)},
		{Label: "Output", Value: opts.output},
	}
	msg := "Generated " + req.Name
	if opts.clipboard {
		msg += " and copied to clipboard"
	}
	prompts.PrintResult(cmd.OutOrStdout(), result, msg)
	return nil
}
