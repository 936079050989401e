// Package cmd - estimate command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"fargate-cost/core/catalog"
	"fargate-cost/core/engine"
	"fargate-cost/core/output"
	"fargate-cost/core/pricing"
	"fargate-cost/core/workload"
	"fargate-cost/internal/config"
	"fargate-cost/internal/logging"
)

var (
	outputFormat   string
	workloadsFile  string
	serviceCPU     float64
	serviceMemory  float64
	sidecarCPU     float64
	sidecarMemory  float64
	reservedMemory float64
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Size a workload against the Fargate tier catalog",
	Long: `Aggregate a workload's requests, find the minimal covering Fargate tier and
a cheaper alternate, and report the daily cost of each option.

Requests come either from flags (one workload) or an HCL workloads file.

Examples:
  fargate-cost estimate --cpu 2 --memory 3.75
  fargate-cost estimate --cpu 1.5 --memory 5 --sidecar-cpu 0.5 --sidecar-memory 0.5
  fargate-cost estimate --workloads workloads.hcl --format markdown`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
	estimateCmd.Flags().StringVarP(&workloadsFile, "workloads", "w", "", "HCL file with workload definitions")
	estimateCmd.Flags().Float64Var(&serviceCPU, "cpu", 0, "service CPU request in vCPU")
	estimateCmd.Flags().Float64Var(&serviceMemory, "memory", 0, "service memory request in GB")
	estimateCmd.Flags().Float64Var(&sidecarCPU, "sidecar-cpu", 0, "sidecar CPU request in vCPU")
	estimateCmd.Flags().Float64Var(&sidecarMemory, "sidecar-memory", 0, "sidecar memory request in GB")
	estimateCmd.Flags().Float64Var(&reservedMemory, "reserved-memory", workload.DefaultReservedMemory, "memory reserved by Kubernetes components in GB")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	eng, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	workloads, err := collectWorkloads()
	if err != nil {
		return err
	}

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	formatter, err := output.NewFormatter(format)
	if err != nil {
		return err
	}

	for i, w := range workloads {
		logging.Debug("sizing workload", zap.String("name", w.Name))

		report, err := eng.Estimate(w)
		if err != nil {
			return fmt.Errorf("workload %q: %w", w.Name, err)
		}

		if i > 0 {
			fmt.Println()
		}
		if err := formatter.Render(os.Stdout, report); err != nil {
			return err
		}
	}

	return nil
}

// buildEngine constructs the engine from configured prices
func buildEngine(cfg *config.Config) (*engine.Engine, error) {
	model, err := pricing.Parse(cfg.Pricing.PerVCPUHour, cfg.Pricing.PerGBHour, pricing.Currency(cfg.Pricing.Currency))
	if err != nil {
		return nil, err
	}
	return engine.New(catalog.Default(), model, Version), nil
}

// collectWorkloads reads workloads from the file flag or builds one from the
// request flags
func collectWorkloads() ([]workload.Workload, error) {
	if workloadsFile != "" {
		return workload.LoadFile(workloadsFile)
	}

	w := workload.Workload{
		Name:     "workload",
		Service:  workload.Requests{CPU: serviceCPU, Memory: serviceMemory},
		Sidecar:  workload.Requests{CPU: sidecarCPU, Memory: sidecarMemory},
		Reserved: workload.Requests{Memory: reservedMemory},
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return []workload.Workload{w}, nil
}
