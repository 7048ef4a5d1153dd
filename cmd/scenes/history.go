package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scenes/internal/platform/tui"
	"github.com/vovakirdan/tui-scenes/internal/registry"
	"github.com/vovakirdan/tui-scenes/internal/storage"
)

var (
	flagLimit  int
	flagBrowse bool
	flagClear  bool
)

var historyCmd = &cobra.Command{
	Use:   "history [scene]",
	Short: "Show recorded runs",
	Long: `Display the most recent runs, for one scene or for all of them.

Without a scene, a per-scene summary is printed before the runs.

Examples:
  scenes history
  scenes history xmas --limit 20
  scenes history --browse
  scenes history mems --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Open the interactive history browser")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs of the scene")
}

func runHistory(_ *cobra.Command, args []string) {
	sceneID := ""
	if len(args) == 1 {
		sceneID = args[0]
		if !registry.Exists(sceneID) {
			unknownScene(sceneID)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if err := showHistory(store, sceneID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		store.Close()
		os.Exit(1)
	}
}

func showHistory(store *storage.Store, sceneID string) error {
	switch {
	case flagBrowse:
		cfg := runtimeConfig()
		_, err := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
		return err

	case flagClear:
		if sceneID == "" {
			return fmt.Errorf("--clear needs a scene")
		}
		if err := store.ClearRuns(sceneID); err != nil {
			return err
		}
		fmt.Printf("Cleared the run history of %s.\n", sceneID)
		return nil
	}

	if sceneID == "" {
		if err := printSummary(store); err != nil {
			return err
		}
	}

	runs, err := store.RecentRuns(sceneID, flagLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'scenes play <id>' to record the first one!")
		return nil
	}

	fmt.Println("Recent runs")
	fmt.Println()
	fmt.Printf("  %-5s  %-8s  %-9s  %-7s  %-9s  %-5s  %s\n", "ID", "Scene", "Ticks", "Skipped", "Duration", "End", "Date")
	fmt.Printf("  %-5s  %-8s  %-9s  %-7s  %-9s  %-5s  %s\n", "--", "-----", "-----", "-------", "--------", "---", "----")
	for _, r := range runs {
		fmt.Printf("  %-5d  %-8s  %-9d  %-7d  %-9s  %-5s  %s\n",
			r.ID, r.SceneID, r.Ticks, r.Failures, r.Duration.Round(100*time.Millisecond), r.EndReason,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printSummary(store *storage.Store) error {
	stats, err := store.AllSceneStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		return nil
	}

	fmt.Println("Scenes")
	fmt.Println()
	fmt.Printf("  %-8s  %-5s  %-11s  %-9s  %s\n", "Scene", "Runs", "Ticks", "Longest", "Last played")
	fmt.Printf("  %-8s  %-5s  %-11s  %-9s  %s\n", "-----", "----", "-----", "-------", "-----------")
	for _, info := range registry.List() {
		st, ok := stats[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-8s  %-5d  %-11d  %-9d  %s\n",
			st.SceneID, st.Runs, st.TotalTicks, st.MaxTicks, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	fmt.Println()
	return nil
}
