package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/yaklabco/wpslint/pkg/lint"
)

// checklistHeader mirrors the flag fields, one spreadsheet column each.
var checklistHeader = []string{"rule_id", "category", "severity", "match", "message", "suggestion"}

// Checklist exports the flags as a CSV accessibility checklist, one row per
// flag in engine order. An empty flag slice still yields the header row.
func (e *Exporter) Checklist(ctx context.Context, flags []lint.Flag) (Artifact, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(checklistHeader); err != nil {
		return Artifact{}, fmt.Errorf("write header: %w", err)
	}
	for _, flag := range flags {
		row := []string{
			flag.RuleID,
			flag.Category,
			string(flag.Severity),
			flag.Match,
			flag.Message,
			flag.Suggestion,
		}
		if err := w.Write(row); err != nil {
			return Artifact{}, fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return Artifact{}, fmt.Errorf("flush checklist: %w", err)
	}

	name := fmt.Sprintf("Accessibility_Checklist_%s.csv", e.stamp())
	return e.write(ctx, KindChecklist, name, buf.Bytes())
}
