// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dacolabs/fakegen/internal/codegen"
)

type listOptions struct {
	output string
}

func newLanguagesCmd(reg *codegen.Registry) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and formats",
		Long:  `List every target language with the formats it supports and their type names.`,
		Example: `  # List languages in table format
  fakegen languages

  # List languages as JSON
  fakegen languages -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLanguages(cmd.OutOrStdout(), reg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format (table, json, yaml)")

	return cmd
}

func runLanguages(w io.Writer, reg *codegen.Registry, opts *listOptions) error {
	languages := reg.Languages()

	switch opts.output {
	case "json":
		return printJSON(w, languages)
	case "yaml":
		return printYAML(w, languages)
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "LANGUAGE\tFORMAT\tDESCRIPTION")
		for _, lang := range languages {
			for _, f := range lang.Formats {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", lang.ID, f.ID, f.Name)
			}
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported output format %q (table, json, yaml)", opts.output)
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(v)
}
