package output

import (
	"fmt"
	"io"
)

// MarkdownFormatter renders the report as a markdown section
type MarkdownFormatter struct{}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format { return FormatMarkdown }

// Render writes the report as markdown
func (f *MarkdownFormatter) Render(w io.Writer, report *Report) error {
	name := report.Workload.Name
	if name == "" {
		name = "workload"
	}
	fmt.Fprintf(w, "## %s\n\n", name)

	fmt.Fprintln(w, "| Resources details | Resources value |")
	fmt.Fprintln(w, "|---|---|")
	fmt.Fprintf(w, "| Total resources required | %s |\n", formatPair(report.Total.CPU, report.Total.Memory))

	primary := report.Provision.Primary
	fmt.Fprintf(w, "| Fargate resource tier provisioned | %s |\n", formatPair(primary.Tier.CPU, primary.Tier.Memory))
	fmt.Fprintf(w, "| Resources surplus | %s |\n", formatPair(primary.CPUSurplus, primary.MemorySurplus))
	fmt.Fprintln(w)

	if report.Evaluation.Optimal {
		fmt.Fprintf(w, "The resources provisioned are optimal: %s\n",
			describeOption(report.Evaluation.Options[0], report.Currency.String()))
		return nil
	}

	fmt.Fprintln(w, "The resources provisioned are not optimal. Options:")
	fmt.Fprintln(w)
	for _, opt := range report.Evaluation.Options {
		fmt.Fprintf(w, "- %s\n", describeOption(opt, report.Currency.String()))
		if delta := describeAdjustment(opt); delta != "" {
			fmt.Fprintf(w, "  - %s\n", delta)
		}
		fmt.Fprintf(w, "  - request **%s** for the service\n",
			formatPair(opt.OptimalRequest.CPU, opt.OptimalRequest.Memory))
	}
	return nil
}
