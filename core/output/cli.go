package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"fargate-cost/core/advisor"
)

// CLIFormatter renders a human-readable table plus a right-sizing verdict
type CLIFormatter struct{}

// Format returns the format type
func (f *CLIFormatter) Format() Format { return FormatCLI }

// Render writes the report as a plain-text table
func (f *CLIFormatter) Render(w io.Writer, report *Report) error {
	if report.Workload.Name != "" {
		fmt.Fprintf(w, "Workload: %s\n\n", report.Workload.Name)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Resources details\tResources value")
	fmt.Fprintf(tw, "Total resources required\t%s\n", formatPair(report.Total.CPU, report.Total.Memory))

	primary := report.Provision.Primary
	fmt.Fprintf(tw, "Fargate resource tier provisioned\t%s\n", formatPair(primary.Tier.CPU, primary.Tier.Memory))

	marker := "OK"
	if primary.CPUSurplus > 0 || primary.MemorySurplus > 0 {
		marker = "surplus"
	}
	fmt.Fprintf(tw, "Resources surplus\t%s (%s)\n", formatPair(primary.CPUSurplus, primary.MemorySurplus), marker)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	return f.renderVerdict(w, report)
}

func (f *CLIFormatter) renderVerdict(w io.Writer, report *Report) error {
	eval := report.Evaluation

	if eval.Optimal {
		opt := eval.Options[0]
		fmt.Fprintln(w, "The resources provisioned are optimal.")
		fmt.Fprintf(w, "  - %s\n", describeOption(opt, report.Currency.String()))
		return nil
	}

	fmt.Fprintln(w, "The resources provisioned are not optimal. Choose either option:")
	for _, opt := range eval.Options {
		fmt.Fprintf(w, "  - %s\n", describeOption(opt, report.Currency.String()))
		if delta := describeAdjustment(opt); delta != "" {
			fmt.Fprintf(w, "      %s\n", delta)
		}
		fmt.Fprintf(w, "      request %s for the service\n",
			formatPair(opt.OptimalRequest.CPU, opt.OptimalRequest.Memory))
		if opt.Selection.UnderProvisioned {
			fmt.Fprintln(w, "      note: smaller than the current request, the workload must fit this envelope")
		}
	}
	fmt.Fprintln(w, "Note: CPU is ~10x more expensive than memory per unit-hour, prefer growing memory over CPU.")
	return nil
}

// describeOption renders "Fargate tier 2.00 vCPU, 5.00 GB [$2.95/day]"
func describeOption(opt advisor.Option, currency string) string {
	cost, _ := opt.CostPerDay.Round(2).Float64()
	return fmt.Sprintf("Fargate tier %s [%s %.2f/day]",
		formatPair(opt.Selection.Tier.CPU, opt.Selection.Tier.Memory), currency, cost)
}

// describeAdjustment renders the per-dimension raise/lower deltas
func describeAdjustment(opt advisor.Option) string {
	var delta string
	if opt.CPUAdjustment > 0 {
		delta = fmt.Sprintf("raise CPU by %.2f vCPU", opt.CPUAdjustment)
	} else if opt.CPUAdjustment < 0 {
		delta = fmt.Sprintf("lower CPU by %.2f vCPU", -opt.CPUAdjustment)
	}

	if opt.MemoryAdjustment != 0 {
		if delta != "" {
			delta += ", "
		}
		if opt.MemoryAdjustment > 0 {
			delta += fmt.Sprintf("raise memory by %.2f GB", opt.MemoryAdjustment)
		} else {
			delta += fmt.Sprintf("lower memory by %.2f GB", -opt.MemoryAdjustment)
		}
	}
	return delta
}

func formatPair(cpu, memory float64) string {
	return fmt.Sprintf("%.2f vCPU, %.2f GB", cpu, memory)
}
