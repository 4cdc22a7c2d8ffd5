// Package renderer formats change records for display.
package renderer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/wonderfulspam/struct-changelog/pkg/changelog"
)

// Config adjusts report output.
type Config struct {
	// Color enables ANSI-colored action tags and inline string diffs.
	Color bool
}

// Renderer formats change records for display.
type Renderer struct {
	config Config
}

// New returns a renderer. A nil config yields plain, uncolored output.
func New(config *Config) *Renderer {
	if config == nil {
		config = &Config{}
	}
	return &Renderer{config: *config}
}

// Format renders records in the requested format.
func (r *Renderer) Format(records []changelog.Record, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil

	case "table", "":
		return r.formatTable(records), nil

	case "text":
		return r.formatText(records), nil

	default:
		return "", fmt.Errorf("unsupported format: %s (supported: json, table, text)", format)
	}
}

// formatTable renders a summary plus one block per entry.
func (r *Renderer) formatTable(records []changelog.Record) string {
	var buf bytes.Buffer

	buf.WriteString("Change Log\n")
	buf.WriteString("==========\n\n")

	if len(records) == 0 {
		buf.WriteString("No changes recorded.\n")
		return buf.String()
	}

	var added, edited, removed int
	for _, rec := range records {
		switch rec.Action {
		case string(changelog.ActionAdded):
			added++
		case string(changelog.ActionEdited):
			edited++
		case string(changelog.ActionRemoved):
			removed++
		}
	}

	buf.WriteString("Summary:\n")
	buf.WriteString("--------\n")
	buf.WriteString(fmt.Sprintf("  Added: %d\n", added))
	buf.WriteString(fmt.Sprintf("  Edited: %d\n", edited))
	buf.WriteString(fmt.Sprintf("  Removed: %d\n", removed))
	buf.WriteString(fmt.Sprintf("  Total: %d\n", len(records)))

	buf.WriteString("\nEntries:\n")
	buf.WriteString("--------\n")
	for i, rec := range records {
		buf.WriteString(fmt.Sprintf("  %-3d %s %s\n", i, r.actionTag(rec.Action), rec.KeyPath))
		switch rec.Action {
		case string(changelog.ActionAdded):
			buf.WriteString(fmt.Sprintf("      new: %s\n", formatValue(rec.NewValue)))
		case string(changelog.ActionRemoved):
			buf.WriteString(fmt.Sprintf("      old: %s\n", formatValue(rec.OldValue)))
		default:
			buf.WriteString(fmt.Sprintf("      old: %s\n", formatValue(rec.OldValue)))
			buf.WriteString(fmt.Sprintf("      new: %s\n", formatValue(rec.NewValue)))
		}
	}

	return buf.String()
}

// formatText renders one line per entry. Edited string values get an
// inline character diff appended.
func (r *Renderer) formatText(records []changelog.Record) string {
	var buf bytes.Buffer
	for _, rec := range records {
		switch rec.Action {
		case string(changelog.ActionAdded):
			buf.WriteString(fmt.Sprintf("%s %s = %s\n", r.actionTag(rec.Action), rec.KeyPath, formatValue(rec.NewValue)))
		case string(changelog.ActionRemoved):
			buf.WriteString(fmt.Sprintf("%s %s (was %s)\n", r.actionTag(rec.Action), rec.KeyPath, formatValue(rec.OldValue)))
		default:
			line := fmt.Sprintf("%s %s: %s -> %s", r.actionTag(rec.Action), rec.KeyPath, formatValue(rec.OldValue), formatValue(rec.NewValue))
			if oldStr, ok := rec.OldValue.(string); ok {
				if newStr, ok := rec.NewValue.(string); ok {
					line += " (" + r.inlineStringDiff(oldStr, newStr) + ")"
				}
			}
			buf.WriteString(line + "\n")
		}
	}
	return buf.String()
}

// inlineStringDiff renders a character-level diff between two strings.
// Insertions and deletions are colored when enabled, otherwise marked
// with {+...+} and [-...-] tokens.
func (r *Renderer) inlineStringDiff(oldStr, newStr string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(oldStr, newStr, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			if r.config.Color {
				b.WriteString(color.GreenString(d.Text))
			} else {
				b.WriteString("{+" + d.Text + "+}")
			}
		case diffpatch.DiffDelete:
			if r.config.Color {
				b.WriteString(color.RedString(d.Text))
			} else {
				b.WriteString("[-" + d.Text + "-]")
			}
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}

func (r *Renderer) actionTag(action string) string {
	tag := fmt.Sprintf("%-7s", strings.ToUpper(action))
	if !r.config.Color {
		return tag
	}
	switch action {
	case string(changelog.ActionAdded):
		return color.GreenString(tag)
	case string(changelog.ActionRemoved):
		return color.RedString(tag)
	case string(changelog.ActionEdited):
		return color.YellowString(tag)
	}
	return tag
}

func formatValue(v interface{}) string {
	if v == nil {
		return "null"
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
