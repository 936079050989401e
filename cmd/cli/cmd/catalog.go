// Package cmd - catalog command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"fargate-cost/core/catalog"
	"fargate-cost/internal/config"
)

var catalogJSON bool

// catalogCmd prints the tier catalog
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the Fargate resource tier catalog",
	Long: `Print every valid Fargate (vCPU, memory) combination with its daily cost,
in the order the selection algorithm scans them.`,
	RunE: runCatalog,
}

func init() {
	catalogCmd.Flags().BoolVar(&catalogJSON, "json", false, "print the catalog as JSON")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat := catalog.Default()

	if catalogJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(cat.Tiers())
	}

	eng, err := buildEngine(config.Get())
	if err != nil {
		return err
	}
	model := eng.Pricing()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Tier\tvCPU\tMemory (GB)\tCost/day")
	for _, tier := range cat.Tiers() {
		cost, _ := model.CostPerDay(tier).Round(2).Float64()
		fmt.Fprintf(tw, "%s\t%g\t%g\t%s %.2f\n", tier.Label, tier.CPU, tier.Memory, model.Currency, cost)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Bands reference:")
	fmt.Print(catalog.ReferenceTable)
	fmt.Println("Based on " + catalog.ReferenceURL)
	return nil
}
