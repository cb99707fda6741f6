// Copyright Niklas Bubeck, 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nbubeck/scholar-page/internal/scholar"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the author profile once and print it",
	Long: `Fetch performs a single profile fetch against the Semantic Scholar API,
normalizes the response, and prints the snapshot as JSON. Useful for checking
the author ID, API key, and derived fields without starting the server.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().String("author", "", "author ID (overrides config)")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()

	authorID := cfg.Scholar.AuthorID
	if v, _ := cmd.Flags().GetString("author"); v != "" {
		authorID = v
	}

	client := scholar.NewClient(cfg.Scholar)
	snap, err := client.FetchAuthor(cmd.Context(), authorID)
	if err != nil {
		return fmt.Errorf("fetching profile: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}
