// Package filter selects change records with expr-lang expressions.
package filter

import (
	"fmt"

	exprlang "github.com/expr-lang/expr"

	"github.com/wonderfulspam/struct-changelog/pkg/changelog"
)

// Predicate decides whether a change record is kept.
type Predicate func(changelog.Record) bool

// Compile builds a predicate from an expression. The expression is
// evaluated per record with action, path, old and new bound, e.g.
// `action == "edited" && path startsWith "user."`. Expressions must
// produce a boolean.
func Compile(expression string) (Predicate, error) {
	if expression == "" {
		return nil, fmt.Errorf("filter: expression must not be empty")
	}
	program, err := exprlang.Compile(expression,
		exprlang.Env(map[string]interface{}{}),
		exprlang.AllowUndefinedVariables(),
		exprlang.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("filter: compiling %q: %w", expression, err)
	}
	return func(rec changelog.Record) bool {
		out, err := exprlang.Run(program, environment(rec))
		if err != nil {
			return false
		}
		keep, ok := out.(bool)
		return ok && keep
	}, nil
}

// Apply returns the records matching pred, preserving order.
func Apply(records []changelog.Record, pred Predicate) []changelog.Record {
	out := make([]changelog.Record, 0, len(records))
	for _, rec := range records {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func environment(rec changelog.Record) map[string]interface{} {
	return map[string]interface{}{
		"action": rec.Action,
		"path":   rec.KeyPath,
		"old":    rec.OldValue,
		"new":    rec.NewValue,
	}
}
