// Package cli implements the cobra command surface. Commands talk to
// the core exclusively through the driving ports; the composition root
// injects the concrete services before Execute runs.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	chartfile "github.com/brittanydani/mysky-sub002/internal/adapters/driven/chart/file"
	"github.com/brittanydani/mysky-sub002/internal/core/domain"
	"github.com/brittanydani/mysky-sub002/internal/core/ports/driving"
	"github.com/brittanydani/mysky-sub002/internal/logger"
)

// version is stamped by the build; "dev" otherwise.
var version = "dev"

var (
	readingService driving.ReadingService
	journalService driving.JournalService
)

var (
	flagVerbose   bool
	flagChartPath string
	flagDate      string
)

var rootCmd = &cobra.Command{
	Use:   "mysky",
	Short: "Daily transit readings from your natal chart",
	Long: `mysky reads today's sky against your natal chart and assembles a
daily reading: a guidance line, a shadow quote with its closing, and a
journaling prompt. Selections are deterministic per date and avoid
repeating content shown in the last two weeks.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagChartPath, "chart", "", "path to the natal chart file (default ~/.mysky/chart.toml)")
}

// SetServices injects the core services. Called by the composition
// root before Execute.
func SetServices(reading driving.ReadingService, journal driving.JournalService) {
	readingService = reading
	journalService = journal
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadChart resolves the chart file path and loads the natal chart.
func loadChart() (*domain.NatalChart, error) {
	path := flagChartPath
	if path == "" {
		var err error
		path, err = chartfile.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	chart, err := chartfile.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading chart: %w", err)
	}
	return chart, nil
}

// resolveDate parses the --date flag, defaulting to today.
func resolveDate() (time.Time, error) {
	if flagDate == "" {
		return time.Now(), nil
	}
	date, err := time.Parse("2006-01-02", flagDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", flagDate, domain.ErrInvalidInput)
	}
	return date, nil
}
