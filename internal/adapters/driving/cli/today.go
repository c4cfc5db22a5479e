package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
)

var todayJSON bool

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the daily reading",
	Long: `Assembles the daily reading for your natal chart: a guidance line,
a shadow quote with its paired closing, and a journaling prompt.
The same date always produces the same reading.`,
	Args: cobra.NoArgs,
	RunE: runToday,
}

func init() {
	todayCmd.Flags().StringVar(&flagDate, "date", "", "reading date as YYYY-MM-DD (default today)")
	todayCmd.Flags().BoolVar(&todayJSON, "json", false, "output the reading as JSON")
	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, _ []string) error {
	if readingService == nil {
		return errors.New("reading service not configured")
	}

	chart, err := loadChart()
	if err != nil {
		return err
	}
	date, err := resolveDate()
	if err != nil {
		return err
	}

	reading, err := readingService.DailyReading(context.Background(), chart, date)
	if err != nil {
		return fmt.Errorf("building reading: %w", err)
	}

	if todayJSON {
		return outputReadingJSON(cmd, reading)
	}
	return outputReading(cmd, reading)
}

func outputReadingJSON(cmd *cobra.Command, reading *domain.DailyReading) error {
	data, err := json.MarshalIndent(reading, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal reading: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputReading(cmd *cobra.Command, reading *domain.DailyReading) error {
	date := reading.Date.Format("Monday, January 2")
	cmd.Println(styleHeading.Render(date))
	cmd.Println(styleMuted.Render(describeContext(&reading.Context)))
	cmd.Println()

	cmd.Println(styleLabel.Render("Guidance"))
	cmd.Println(styleBody.Render(reading.Guidance.Item.Body))
	cmd.Println()

	cmd.Println(styleLabel.Render("Shadow quote"))
	cmd.Println(styleBody.Render(reading.Quote.Item.Body))
	if reading.Closing.Item.Body != "" {
		cmd.Println(styleBody.Render(styleMuted.Render(reading.Closing.Item.Body)))
	}
	cmd.Println()

	cmd.Println(styleLabel.Render("Journal prompt"))
	cmd.Println(styleBody.Render(reading.Prompt.Item.Body))

	return nil
}

// describeContext renders a one-line summary of the day's activation.
func describeContext(actx *domain.ActivationContext) string {
	parts := []string{string(actx.Intensity) + " day"}
	if actx.Intensity == domain.IntensityDeep {
		parts[0] = styleDeep.Render(parts[0])
	}
	if actx.MoonPhase != domain.PhaseBucketUnknown {
		parts = append(parts, string(actx.MoonPhase)+" moon")
	}
	if len(actx.Signals) > 0 {
		parts = append(parts, fmt.Sprintf("%d active signals", len(actx.Signals)))
	}
	return strings.Join(parts, " · ")
}
