package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/registry"
)

var catalogsCmd = &cobra.Command{
	Use:   "catalogs",
	Short: "List block catalogs",
	Long:  `Shows the registered block catalogs a board can draw from.`,
	Args:  cobra.NoArgs,
	Run:   runCatalogs,
}

func runCatalogs(cmd *cobra.Command, args []string) {
	catalogs := registry.List()

	if len(catalogs) == 0 {
		fmt.Println("No catalogs available.")
		return
	}

	fmt.Println("Available catalogs:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, c := range catalogs {
		maxIDLen = max(maxIDLen, len(c.ID))
	}

	fmt.Printf("  %-*s  %5s  %s\n", maxIDLen, "ID", "Types", "Title")
	fmt.Printf("  %-*s  %5s  %s\n", maxIDLen, "--", "-----", "-----")
	for _, c := range catalogs {
		fmt.Printf("  %-*s  %5d  %s\n", maxIDLen, c.ID, c.Types, c.Title)
	}

	fmt.Println()
	fmt.Println("Run 'match3 play --catalog <id>' to play with a catalog.")
}
