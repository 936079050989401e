// Package output provides output formatting interfaces.
// This package produces human and machine-readable reports; all presentation
// rounding happens here and nowhere else.
package output

import (
	"io"

	"fargate-cost/core/advisor"
	"fargate-cost/core/pricing"
	"fargate-cost/core/selector"
	"fargate-cost/core/workload"
	"fargate-cost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Report is the complete sizing result for one workload
type Report struct {
	// Workload is the sized workload
	Workload workload.Workload `json:"workload"`

	// Total is the aggregated request the tier had to cover
	Total workload.Requests `json:"total"`

	// Provision holds the primary and alternate tier selections
	Provision *selector.Provision `json:"provision"`

	// Evaluation is the right-sizing advice
	Evaluation advisor.Evaluation `json:"evaluation"`

	// Currency is the cost currency
	Currency pricing.Currency `json:"currency"`

	// Metadata contains execution context
	Metadata ReportMetadata `json:"metadata"`
}

// ReportMetadata contains execution context
type ReportMetadata struct {
	// Timestamp is when the report was produced
	Timestamp string `json:"timestamp"`

	// Version is the tool version
	Version string `json:"version"`
}

// NewFormatter returns the formatter for a format name
func NewFormatter(format Format) (Formatter, error) {
	switch format {
	case FormatCLI, "":
		return &CLIFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{}, nil
	default:
		return nil, errors.Inputf("unknown output format: %s", format)
	}
}
