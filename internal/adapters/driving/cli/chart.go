package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Show the loaded natal chart",
	Long:  `Prints the natal chart placements as resolved from the chart file.`,
	Args:  cobra.NoArgs,
	RunE:  runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, _ []string) error {
	chart, err := loadChart()
	if err != nil {
		return err
	}

	title := "Natal chart"
	if chart.Birth.Place != "" {
		title = fmt.Sprintf("Natal chart · %s", chart.Birth.Place)
	}
	cmd.Println(styleHeading.Render(title))
	if !chart.Birth.Date.IsZero() {
		cmd.Println(styleMuted.Render(chart.Birth.Date.Format("January 2, 2006")))
	}
	cmd.Println()

	for _, body := range domain.Bodies {
		p, ok := chart.Placements[body]
		if !ok {
			continue
		}
		line := fmt.Sprintf("  %-10s %5.1f° %s", p.Body, p.DegreeInSign, p.Sign)
		if p.House > 0 {
			line += fmt.Sprintf(", house %d", p.House)
		}
		if p.Retrograde {
			line += " " + styleMuted.Render("Rx")
		}
		cmd.Println(line)
	}

	if !chart.Birth.TimeKnown {
		cmd.Println()
		cmd.Println(styleMuted.Render("Birth time unknown; house placements are unreliable."))
	}

	return nil
}
