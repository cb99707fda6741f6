// Copyright Niklas Bubeck, 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of scholar-page",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scholar-page %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
