package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	flagExport      bool
	flagExportFile  string
	flagClear       bool
	flagStats       bool
	flagInteractive bool
	flagLimit       int
)

var reportsCmd = &cobra.Command{
	Use:   "reports [catalog]",
	Short: "Show, export or clear saved sessions",
	Long: `List saved session reports, best first (fewest tiles left, then fewest
moves). Pass a catalog ID to restrict the list; --seed lists every session
played on that seed.

Examples:
  match3 reports
  match3 reports classic --limit 5
  match3 reports --seed 42
  match3 reports --export --out results.json
  match3 reports --stats
  match3 reports --clear bombs
  match3 reports -i`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReports,
}

func init() {
	reportsCmd.Flags().BoolVar(&flagExport, "export", false, `Export all reports as {"results":[...]} JSON sorted by seed`)
	reportsCmd.Flags().StringVar(&flagExportFile, "out", "", "Write the export to this file instead of stdout")
	reportsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the reports of the catalog (all catalogs if none given)")
	reportsCmd.Flags().BoolVar(&flagStats, "stats", false, "Show per-catalog statistics")
	reportsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse reports in the terminal UI")
	reportsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of reports to list")
}

func runReports(cmd *cobra.Command, args []string) {
	catalog := ""
	if len(args) == 1 {
		catalog = args[0]
		if !registry.Exists(catalog) && catalog != inlineCatalogID {
			fmt.Fprintf(os.Stderr, "Error: unknown catalog %q\n", catalog)
			fmt.Fprintln(os.Stderr, "Run 'match3 catalogs' to see available catalogs.")
			os.Exit(1)
		}
	}

	if err := reports(catalog); err != nil {
		exitErr("%v", err)
	}
}

func reports(catalog string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening report database: %w", err)
	}
	defer store.Close()

	switch {
	case flagInteractive:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err = tui.RunReports(store, width, height)
	case flagExport:
		err = exportReports(store)
	case flagClear:
		err = clearReports(store, catalog)
	case flagStats:
		err = printStats(store)
	case flagSeed != 0:
		err = printSeedReports(store, flagSeed)
	default:
		err = printBestReports(store, catalog)
	}
	return err
}

func exportReports(store *storage.Store) error {
	data, err := store.ExportJSON()
	if err != nil {
		return err
	}
	if flagExportFile == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(flagExportFile, data, 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	fmt.Printf("Exported reports to %s\n", flagExportFile)
	return nil
}

func clearReports(store *storage.Store, catalog string) error {
	n, err := store.ClearReports(catalog)
	if err != nil {
		return err
	}
	scope := "all catalogs"
	if catalog != "" {
		scope = catalog
	}
	fmt.Printf("Deleted %d report(s) from %s.\n", n, scope)
	return nil
}

func printBestReports(store *storage.Store, catalog string) error {
	entries, err := store.BestReports(catalog, flagLimit)
	if err != nil {
		return err
	}

	title := "all catalogs"
	if catalog != "" {
		title = catalog
	}
	fmt.Printf("Best sessions - %s\n", title)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No reports saved yet.")
		fmt.Println()
		fmt.Println("Press S in 'match3 play' or run 'match3 sim --save' to record one.")
		return nil
	}
	printEntries(entries, true)
	return nil
}

func printSeedReports(store *storage.Store, seed int64) error {
	entries, err := store.ReportsForSeed(seed)
	if err != nil {
		return err
	}
	fmt.Printf("Sessions on seed %d\n", seed)
	fmt.Println()
	if len(entries) == 0 {
		fmt.Println("No reports saved for this seed.")
		return nil
	}
	printEntries(entries, false)
	return nil
}

func printEntries(entries []storage.ReportEntry, ranked bool) {
	fmt.Printf("  %-4s  %-10s  %-12s  %5s  %5s  %6s  %s\n", "Rank", "Catalog", "Seed", "Moves", "Left", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %-12s  %5s  %5s  %6s  %s\n", "----", "-------", "----", "-----", "----", "-----", "----")
	for i, e := range entries {
		rank := "-"
		if ranked {
			rank = fmt.Sprintf("%d", i+1)
		}
		fmt.Printf("  %-4s  %-10s  %-12d  %5d  %5d  %6d  %s\n",
			rank, e.Catalog, e.Report.Seed, e.Report.Moves, e.Report.BlocksRemaining,
			e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printStats(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No reports saved yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-10s  %8s  %7s  %11s  %12s  %6s  %s\n",
		"Catalog", "Sessions", "Cleared", "Fewest left", "Fewest moves", "Best", "Last played")
	for _, id := range ids {
		st := stats[id]
		fmt.Printf("  %-10s  %8d  %7d  %11d  %12d  %6d  %s\n",
			st.Catalog, st.Sessions, st.Cleared, st.FewestLeft, st.FewestMoves,
			st.HighScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}

	latest, err := store.LatestReport()
	if errors.Is(err, storage.ErrNoReports) {
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Latest: seed %d on %s, %d moves, %d left\n",
		latest.Report.Seed, latest.Catalog, latest.Report.Moves, latest.Report.BlocksRemaining)
	return nil
}
