package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/yaklabco/wpslint/pkg/runner"
)

const severityWarn = "warn"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version   string         `json:"version"`
	Documents []JSONDocument `json:"documents"`
	Summary   JSONSummary    `json:"summary"`
}

// JSONDocument represents a single document's results.
type JSONDocument struct {
	Path         string          `json:"path"`
	Format       string          `json:"format"`
	Flags        []JSONFlag      `json:"flags"`
	Clean        string          `json:"clean,omitempty"`
	NoUsableText bool            `json:"noUsableText,omitempty"`
	Rewritten    bool            `json:"rewritten,omitempty"`
	RuleErrors   []JSONRuleError `json:"ruleErrors,omitempty"`
	Error        string          `json:"error,omitempty"`
}

// JSONFlag represents a single flag.
type JSONFlag struct {
	RuleID     string `json:"ruleId"`
	Category   string `json:"category"`
	Severity   string `json:"severity"`
	Match      string `json:"match"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// JSONRuleError records a rule skipped at lint time.
type JSONRuleError struct {
	RuleID string `json:"ruleId"`
	Error  string `json:"error"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	DocumentsChecked   int            `json:"documentsChecked"`
	DocumentsWithFlags int            `json:"documentsWithFlags"`
	DocumentsNoText    int            `json:"documentsNoText"`
	DocumentsRewritten int            `json:"documentsRewritten"`
	DocumentsErrored   int            `json:"documentsErrored"`
	TotalFlags         int            `json:"totalFlags"`
	BySeverity         map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalFlags, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version:   "1.0.0",
		Documents: make([]JSONDocument, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	if len(result.Documents) > 0 {
		output.Documents = make([]JSONDocument, 0, len(result.Documents))
	}

	for _, doc := range result.Documents {
		jsonDoc := JSONDocument{
			Path:   r.opts.displayPath(doc.Path),
			Format: string(doc.Format),
			Flags:  make([]JSONFlag, 0),
		}

		switch {
		case doc.Error != nil:
			jsonDoc.Error = doc.Error.Error()
			output.Summary.DocumentsErrored++

		case doc.NoUsableText:
			jsonDoc.NoUsableText = true
			output.Summary.DocumentsNoText++

		case doc.Result != nil:
			jsonDoc.Rewritten = doc.Written
			jsonDoc.Clean = doc.Result.Clean

			for _, flag := range doc.Result.Flags {
				jsonDoc.Flags = append(jsonDoc.Flags, JSONFlag{
					RuleID:     flag.RuleID,
					Category:   flag.Category,
					Severity:   string(flag.Severity),
					Match:      flag.Match,
					Message:    flag.Message,
					Suggestion: flag.Suggestion,
				})
				output.Summary.TotalFlags++

				severity := string(flag.Severity)
				if severity == "" {
					severity = severityWarn
				}
				output.Summary.BySeverity[severity]++
			}

			// Sorted for stable output.
			ruleIDs := make([]string, 0, len(doc.Result.RuleErrors))
			for ruleID := range doc.Result.RuleErrors {
				ruleIDs = append(ruleIDs, ruleID)
			}
			sort.Strings(ruleIDs)
			for _, ruleID := range ruleIDs {
				jsonDoc.RuleErrors = append(jsonDoc.RuleErrors, JSONRuleError{
					RuleID: ruleID,
					Error:  doc.Result.RuleErrors[ruleID].Error(),
				})
			}
		}

		if len(jsonDoc.Flags) > 0 {
			output.Summary.DocumentsWithFlags++
		}
		if jsonDoc.Rewritten {
			output.Summary.DocumentsRewritten++
		}

		output.Documents = append(output.Documents, jsonDoc)
		output.Summary.DocumentsChecked++
	}

	return output
}
