// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/you-radio/internal/history"
	"github.com/pdiddy/you-radio/pkg/types"
)

const defaultHistoryDB = ".you-radio/history.db"

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded conversion runs",
	Long: `History lists conversion runs recorded with convert --history-db,
newest first. Use --run with a run ID to show the per-file results of that
run.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	historyCmd.Flags().Int64("run", 0, "show per-file results for this run ID")
	historyCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(historyCmd)
}

// historyPath returns the database used by the history command: the
// configured history_db, or the default location.
func historyPath() string {
	if p := viper.GetString("history_db"); p != "" {
		return p
	}
	return defaultHistoryDB
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	runID, _ := cmd.Flags().GetInt64("run")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	path := historyPath()
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("no history database at %s: %w", path, err)
	}

	store, err := history.NewStore(path)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	if runID != 0 {
		files, err := store.Files(ctx, runID)
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(os.Stdout, files)
		}
		formatFiles(os.Stdout, files)
		return nil
	}

	runs, err := store.Recent(ctx, limit)
	if err != nil {
		return err
	}
	if jsonOutput {
		return writeJSON(os.Stdout, runs)
	}
	formatRuns(os.Stdout, runs)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatRuns(w io.Writer, runs []history.Run) {
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded.")
		return
	}

	fmt.Fprintf(w, "%-6s  %-20s  %-9s  %-6s  %-7s  %s\n",
		"Run", "Started", "Converted", "Failed", "Entries", "Input")
	fmt.Fprintln(w, strings.Repeat("-", 80))
	for _, r := range runs {
		fmt.Fprintf(w, "%-6d  %-20s  %-9d  %-6d  %-7d  %s\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Converted, r.Failed, r.Entries, r.InputDir)
	}
}

func formatFiles(w io.Writer, files []types.FileResult) {
	if len(files) == 0 {
		fmt.Fprintln(w, "No files in this run.")
		return
	}

	for _, f := range files {
		if f.Failed() {
			fmt.Fprintf(w, "✗ %s: %s\n", f.Source, f.Error)
			continue
		}
		fmt.Fprintf(w, "✓ %s → %s (%d entries)\n", f.Source, f.Output, f.Entries)
	}
}
