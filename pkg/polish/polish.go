// Package polish wraps the optional remote rewrite/chat service.
//
// The service is feature-flagged by the presence of an API key: absence is a
// configuration value, not an error path. The deterministic rule-based clean
// copy is always computed first; polish failures of any kind fall back to
// the text that was passed in.
package polish

import (
	"context"

	"github.com/yaklabco/wpslint/internal/logging"
)

// SystemPersona is the fixed system prompt for all polish and chat requests.
const SystemPersona = "You are the Accessibility WPS Assistant. Use inclusive, plain language and task-not-method phrasing."

// PolishInstruction asks the model to produce the second-pass clean copy.
const PolishInstruction = "Rewrite into inclusive, task-focused language; remove needless prerequisites; keep plain language."

// Transformer is a remote text-transform service. There is no contract over
// its output beyond being text.
type Transformer interface {
	// Transform applies instruction to text and returns the transformed text.
	Transform(ctx context.Context, instruction, text string) (string, error)
}

// Polish applies t to text, falling back to the unmodified input when the
// transformer is absent or fails. It never returns an error: the rule-based
// clean copy already in hand is always an acceptable answer.
func Polish(ctx context.Context, t Transformer, instruction, text string) string {
	if t == nil {
		return text
	}

	out, err := t.Transform(ctx, instruction, text)
	if err != nil {
		logging.FromContext(ctx).Warn("polish failed, keeping rule-based copy",
			logging.FieldError, err,
		)
		return text
	}
	return out
}
