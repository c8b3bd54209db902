// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/you-radio/internal/convert"
	"github.com/pdiddy/you-radio/internal/history"
	"github.com/pdiddy/you-radio/internal/metrics"
	"github.com/pdiddy/you-radio/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert station JSON files into M3U playlists",
	Long: `Convert reads every *.json file in the input directory, each a JSON array
of categories with stations, and writes <name>.m3u to the output directory.
Stations without a stream_url_app are left out. Existing playlists are
overwritten.

A file that cannot be read, parsed, or written is reported and skipped; the
remaining files are still converted. Use --strict to exit non-zero when that
happens.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("input-dir", "json/stations", "directory containing station JSON files")
	convertCmd.Flags().String("output-dir", "m3u/stations", "directory for generated M3U playlists")
	convertCmd.Flags().String("logo-base-url", types.DefaultLogoBaseURL, "URL prefix for station logo paths")
	convertCmd.Flags().String("report", "", "write a YAML report of the run to this file")
	convertCmd.Flags().String("metrics-file", "", "write Prometheus text-format metrics to this file")
	convertCmd.Flags().String("history-db", "", "record the run in this SQLite database")
	convertCmd.Flags().Bool("strict", false, "exit non-zero if any file fails or the input directory is unreadable")

	for key, flag := range map[string]string{
		"input_dir":     "input-dir",
		"output_dir":    "output-dir",
		"logo_base_url": "logo-base-url",
		"report":        "report",
		"metrics_file":  "metrics-file",
		"history_db":    "history-db",
		"strict":        "strict",
	} {
		_ = viper.BindPFlag(key, convertCmd.Flags().Lookup(flag))
	}

	rootCmd.AddCommand(convertCmd)
}

// conversionConfig resolves the run configuration from flags, environment,
// and config file, in that order of precedence.
func conversionConfig() types.ConversionConfig {
	return types.ConversionConfig{
		InputDir:    viper.GetString("input_dir"),
		OutputDir:   viper.GetString("output_dir"),
		LogoBaseURL: viper.GetString("logo_base_url"),
		ReportPath:  viper.GetString("report"),
		MetricsPath: viper.GetString("metrics_file"),
		HistoryDB:   viper.GetString("history_db"),
		Strict:      viper.GetBool("strict"),
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return convertAll(ctx, conversionConfig(), os.Stdout, os.Stderr)
}

// convertAll runs one conversion and writes the optional run outputs.
// Failures of those outputs are warnings; only strict mode turns conversion
// failures into an error.
func convertAll(ctx context.Context, cfg types.ConversionConfig, stdout, stderr io.Writer) error {
	result, err := convert.ConvertDir(ctx, cfg, stdout)
	if ctx.Err() != nil {
		return fmt.Errorf("conversion interrupted: %w", ctx.Err())
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error reading directory:", err)
		if cfg.Strict {
			return err
		}
		return nil
	}

	if cfg.ReportPath != "" {
		if err := convert.WriteReport(cfg.ReportPath, convert.NewReport(cfg, result)); err != nil {
			fmt.Fprintf(stderr, "warning: report write failed: %v\n", err)
		}
	}

	if cfg.MetricsPath != "" {
		rec := metrics.NewRecorder()
		rec.Observe(result)
		if err := rec.WriteTextfile(cfg.MetricsPath); err != nil {
			fmt.Fprintf(stderr, "warning: %v\n", err)
		}
	}

	if cfg.HistoryDB != "" {
		if err := recordHistory(ctx, cfg, result); err != nil {
			fmt.Fprintf(stderr, "warning: history not recorded: %v\n", err)
		}
	}

	if cfg.Strict && result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

func recordHistory(ctx context.Context, cfg types.ConversionConfig, result convert.BatchResult) error {
	store, err := history.NewStore(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Record(ctx, cfg, result)
	return err
}
