// Package cmd provides the CLI commands for fargate-cost.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fargate-cost/internal/config"
	"fargate-cost/internal/logging"
)

// Version is the tool version
const Version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fargate-cost",
	Short: "Right-size workloads against AWS Fargate resource tiers",
	Long: `fargate-cost sizes workloads against the fixed catalog of Fargate
(vCPU, memory) resource tiers and prices the result.

Given a workload's CPU and memory requests it finds the smallest tier that
covers the request, a cheaper alternate tier when CPU lands between bands, and
the request values that would waste nothing.

Examples:
  fargate-cost estimate --cpu 2 --memory 3.75
  fargate-cost estimate --workloads workloads.hcl --format json
  fargate-cost catalog`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fargate-cost.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(pricingCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("fargate-cost version " + Version)
	},
}
