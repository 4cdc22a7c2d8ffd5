package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/wonderfulspam/struct-changelog/pkg/changelog"
	"github.com/wonderfulspam/struct-changelog/pkg/filter"
	"github.com/wonderfulspam/struct-changelog/pkg/renderer"
)

var diffCmd = &cobra.Command{
	Use:   "diff --old <old-file> --new <new-file>",
	Short: "Compare two structured documents and report the changes",
	Long: `Loads two YAML or JSON documents, runs the structural differ and
reports every addition, edit and removal with its key path.`,
	RunE: runDiff,
}

var (
	oldFile    string
	newFile    string
	selectPath string
	filterExpr string
	diffFormat string
	outputFile string
	noColor    bool
)

func init() {
	diffCmd.Flags().StringVar(&oldFile, "old", "", "Path to the old document (YAML or JSON)")
	diffCmd.Flags().StringVar(&newFile, "new", "", "Path to the new document (YAML or JSON)")
	diffCmd.Flags().StringVar(&selectPath, "select", "", "gjson path narrowing both documents to a subtree before diffing")
	diffCmd.Flags().StringVar(&filterExpr, "filter", "", "Expression filtering reported entries (e.g. 'action == \"edited\"')")
	diffCmd.Flags().StringVar(&diffFormat, "format", "table", "Output format (json, table, text)")
	diffCmd.Flags().StringVar(&outputFile, "output", "", "Output file for the report (default: stdout)")
	diffCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	diffCmd.MarkFlagRequired("old")
	diffCmd.MarkFlagRequired("new")

	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	oldDoc, err := loadDocument(oldFile)
	if err != nil {
		return fmt.Errorf("reading old document '%s': %w", oldFile, err)
	}

	newDoc, err := loadDocument(newFile)
	if err != nil {
		return fmt.Errorf("reading new document '%s': %w", newFile, err)
	}

	if selectPath != "" {
		if oldDoc, err = selectSubtree(oldDoc, selectPath); err != nil {
			return fmt.Errorf("selecting in old document: %w", err)
		}
		if newDoc, err = selectSubtree(newDoc, selectPath); err != nil {
			return fmt.Errorf("selecting in new document: %w", err)
		}
	}

	changes := changelog.New()
	for _, entry := range changelog.Diff(oldDoc, newDoc, nil) {
		changes.Append(entry)
	}
	log.Debugf("diff produced %d entries", changes.Len())

	records := changes.Records()
	if filterExpr != "" {
		pred, err := filter.Compile(filterExpr)
		if err != nil {
			return err
		}
		records = filter.Apply(records, pred)
	}

	return writeReport(cmd, records, diffFormat)
}

func writeReport(cmd *cobra.Command, records []changelog.Record, format string) error {
	r := renderer.New(&renderer.Config{Color: !noColor && outputFile == ""})
	out, err := r.Format(records, format)
	if err != nil {
		return err
	}

	if outputFile != "" {
		return os.WriteFile(outputFile, []byte(out), 0644)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// loadDocument parses a YAML or JSON file into a generic value. JSON is
// a subset of YAML, so one decoder covers both.
func loadDocument(path string) (interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// selectSubtree narrows doc to the subtree at a gjson path. The document
// is re-encoded as JSON first, so selection works for YAML inputs too.
func selectSubtree(doc interface{}, path string) (interface{}, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding document for selection: %w", err)
	}
	res := gjson.GetBytes(data, path)
	if !res.Exists() {
		return nil, fmt.Errorf("path %q matches nothing", path)
	}
	return res.Value(), nil
}
