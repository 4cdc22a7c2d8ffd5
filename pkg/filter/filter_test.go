package filter

import (
	"testing"

	"github.com/wonderfulspam/struct-changelog/pkg/changelog"
)

func sampleRecords() []changelog.Record {
	return []changelog.Record{
		{Action: "edited", KeyPath: "user.name", OldValue: "John", NewValue: "Jane"},
		{Action: "edited", KeyPath: "user.age", OldValue: 30, NewValue: 31},
		{Action: "added", KeyPath: "user.email", NewValue: "jane@example.com"},
		{Action: "removed", KeyPath: "settings.theme", OldValue: "dark"},
	}
}

func TestCompileFilterByAction(t *testing.T) {
	pred, err := Compile(`action == "added"`)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}

	got := Apply(sampleRecords(), pred)
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].KeyPath != "user.email" {
		t.Errorf("kept %q, want user.email", got[0].KeyPath)
	}
}

func TestCompileFilterByPathPrefix(t *testing.T) {
	pred, err := Compile(`path startsWith "user."`)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}

	got := Apply(sampleRecords(), pred)
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for _, rec := range got {
		if rec.KeyPath == "settings.theme" {
			t.Error("settings.theme should have been filtered out")
		}
	}
}

func TestCompileFilterOnValues(t *testing.T) {
	pred, err := Compile(`action == "edited" && old != new`)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}

	got := Apply(sampleRecords(), pred)
	if len(got) != 2 {
		t.Errorf("expected 2 records, got %d", len(got))
	}
}

func TestCompileEmptyExpression(t *testing.T) {
	if _, err := Compile(""); err == nil {
		t.Error("expected error for empty expression")
	}
}

func TestCompileInvalidSyntax(t *testing.T) {
	if _, err := Compile(`action == `); err == nil {
		t.Error("expected error for invalid syntax")
	}
}

func TestNonBooleanResultKeepsNothing(t *testing.T) {
	// A predicate that does not produce a boolean never matches.
	pred, err := Compile(`path`)
	if err != nil {
		// Rejected at compile time is also acceptable.
		return
	}
	if got := Apply(sampleRecords(), pred); len(got) != 0 {
		t.Errorf("non-boolean predicate kept %d records", len(got))
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	pred, err := Compile(`action == "edited"`)
	if err != nil {
		t.Fatal(err)
	}

	got := Apply(sampleRecords(), pred)
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].KeyPath != "user.name" || got[1].KeyPath != "user.age" {
		t.Errorf("order not preserved: %q then %q", got[0].KeyPath, got[1].KeyPath)
	}
}
