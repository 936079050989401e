// Package cmd - pricing command
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fargate-cost/internal/config"
)

// pricingCmd prints the configured per-unit prices
var pricingCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Print the configured Fargate unit prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "Resource\tPrice")
		fmt.Fprintf(tw, "per vCPU per hour\t%s %s\n", cfg.Pricing.Currency, cfg.Pricing.PerVCPUHour)
		fmt.Fprintf(tw, "per GB per hour\t%s %s\n", cfg.Pricing.Currency, cfg.Pricing.PerGBHour)
		if err := tw.Flush(); err != nil {
			return err
		}

		if cfg.Pricing.Region != "" {
			fmt.Printf("\nBased on Fargate Linux/x86 pricing for %s\n", cfg.Pricing.Region)
		}
		return nil
	},
}
