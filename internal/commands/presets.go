// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dacolabs/fakegen/internal/fieldset"
	"github.com/dacolabs/fakegen/internal/session"
)

func newPresetsCmd() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List field presets",
		Long: `List the built-in field presets (user, product, blog) together with presets
defined in the config file. Config presets replace built-ins of the same name.`,
		Example: `  # List presets
  fakegen presets

  # List presets as YAML
  fakegen presets -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runPresets(cmd.OutOrStdout(), ctx.Presets, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format (table, json, yaml)")

	return cmd
}

func runPresets(w io.Writer, presets fieldset.Presets, opts *listOptions) error {
	list := presets.List()

	switch opts.output {
	case "json":
		return printJSON(w, list)
	case "yaml":
		return printYAML(w, list)
	case "table":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "NAME\tFIELDS")
		for _, p := range list {
			_, _ = fmt.Fprintf(tw, "%s\t%s\n", p.Name, fieldset.Format(p.Fields))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported output format %q (table, json, yaml)", opts.output)
	}
}
