package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/serhatcn/apikit/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Get().String())
	},
}
