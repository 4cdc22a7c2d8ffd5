package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wonderfulspam/struct-changelog/pkg/changelog"
	"github.com/wonderfulspam/struct-changelog/pkg/filter"
	"github.com/wonderfulspam/struct-changelog/pkg/renderer"
)

var reportCmd = &cobra.Command{
	Use:   "report --input <entries-file>",
	Short: "Render a previously serialized change log",
	Long: `Reads change log entries serialized as JSON (flat records with action,
key_path, old_value and new_value fields) and renders them as a report.`,
	RunE: runReport,
}

var (
	reportInput  string
	reportFilter string
	reportFormat string
)

func init() {
	reportCmd.Flags().StringVar(&reportInput, "input", "", "Path to a JSON file of change records")
	reportCmd.Flags().StringVar(&reportFilter, "filter", "", "Expression filtering reported entries")
	reportCmd.Flags().StringVar(&reportFormat, "format", "table", "Output format (json, table, text)")

	reportCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(reportInput)
	if err != nil {
		return fmt.Errorf("reading entries '%s': %w", reportInput, err)
	}

	var records []changelog.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("parsing entries '%s': %w", reportInput, err)
	}

	if reportFilter != "" {
		pred, err := filter.Compile(reportFilter)
		if err != nil {
			return err
		}
		records = filter.Apply(records, pred)
	}

	out, err := renderer.New(nil).Format(records, reportFormat)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
