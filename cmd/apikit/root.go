package main

import (
	"github.com/spf13/cobra"

	"github.com/serhatcn/apikit/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "apikit",
	Short:         "API request-dispatch client",
	Long:          "apikit dispatches HTTP requests through the apiclient pipeline:\norigin resolution, retries with exponential backoff, per-attempt timeouts,\nand classified success/error payloads.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if verbose {
			level = "debug"
		}
		logger.Init(&logger.Config{Level: level, Format: logger.FormatConsole, Output: "stderr"})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(requestCmd)
	rootCmd.AddCommand(versionCmd)
}
