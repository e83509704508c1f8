package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/construct-labs/construct/internal/catalog"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported licenses, test frameworks and PHP versions",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry is one catalog value for display.
type listEntry struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Default bool   `json:"default"`
	Detail  string `json:"detail,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	entries := catalogEntries(catalog.Default())
	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

func catalogEntries(c catalog.Catalog) []listEntry {
	var entries []listEntry
	for _, l := range c.Licenses {
		entries = append(entries, listEntry{
			Kind:    "license",
			Name:    l.String(),
			Default: l == c.DefaultLicense,
			Detail:  l.DisplayName(),
		})
	}
	for _, f := range c.TestFrameworks {
		entries = append(entries, listEntry{
			Kind:    "test",
			Name:    f.String(),
			Default: f == c.DefaultTestFramework,
			Detail:  f.Spec().Package,
		})
	}
	for _, v := range c.PHPVersions {
		entries = append(entries, listEntry{
			Kind:    "php",
			Name:    v.String(),
			Default: v.String() == c.DefaultPHPVersion.String(),
		})
	}
	return entries
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "KIND\tNAME\tDEFAULT\tDETAIL")
	for _, e := range entries {
		def := ""
		if e.Default {
			def = "*"
		}
		detail := e.Detail
		if detail == "" {
			detail = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Kind, e.Name, def, detail)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
