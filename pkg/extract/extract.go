// Package extract converts uploaded document bytes into plain text.
//
// Extraction is a best-effort collaborator: on any internal failure it
// returns an empty string rather than an error. Callers treat an empty
// result as "no usable text" and decide for themselves whether that is
// worth reporting.
package extract

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/yaklabco/wpslint/internal/logging"
)

// Format is a declared input document format.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatDOCX     Format = "docx"
	FormatPDF      Format = "pdf"
	FormatUnknown  Format = "unknown"
)

// DetectFormat maps a file name to its declared format by extension.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return FormatText
	case ".md", ".markdown":
		return FormatMarkdown
	case ".docx":
		return FormatDOCX
	case ".pdf":
		return FormatPDF
	default:
		return FormatUnknown
	}
}

// Service extracts plain text from document bytes.
type Service struct{}

// New creates an extraction Service.
func New() *Service {
	return &Service{}
}

// Extract returns the plain text of data in the declared format.
// Failures of any kind yield an empty string; the reason is debug-logged.
func (s *Service) Extract(ctx context.Context, data []byte, format Format) string {
	logger := logging.FromContext(ctx)

	var (
		text string
		err  error
	)

	switch format {
	case FormatText:
		text = sanitizeText(data)
	case FormatMarkdown:
		text, err = extractMarkdown(data)
	case FormatDOCX:
		text, err = extractDOCX(data)
	case FormatPDF:
		text, err = extractPDF(data)
	case FormatUnknown:
		logger.Debug("extract: unknown format, no text produced")
		return ""
	default:
		logger.Debug("extract: unsupported format", logging.FieldFormat, string(format))
		return ""
	}

	if err != nil {
		logger.Debug("extract failed",
			logging.FieldFormat, string(format),
			logging.FieldError, err,
		)
		return ""
	}
	return text
}

// sanitizeText decodes bytes as UTF-8, replacing invalid sequences.
func sanitizeText(data []byte) string {
	return strings.ToValidUTF8(string(data), "�")
}
