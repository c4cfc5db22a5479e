package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brittanydani/mysky-sub002/internal/core/domain"
)

var aspectsJSON bool

var aspectsCmd = &cobra.Command{
	Use:   "aspects",
	Short: "Show today's transiting-Moon aspects",
	Long: `Lists the aspects the transiting Moon makes to your natal chart
for a date, tightest first, together with the activation context the
reading is scored against.`,
	Args: cobra.NoArgs,
	RunE: runAspects,
}

func init() {
	aspectsCmd.Flags().StringVar(&flagDate, "date", "", "date as YYYY-MM-DD (default today)")
	aspectsCmd.Flags().BoolVar(&aspectsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(aspectsCmd)
}

func runAspects(cmd *cobra.Command, _ []string) error {
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

	ctx := context.Background()
	aspects, err := readingService.Aspects(ctx, chart, date)
	if err != nil {
		return fmt.Errorf("computing aspects: %w", err)
	}
	actx, err := readingService.Context(ctx, chart, date)
	if err != nil {
		return fmt.Errorf("building context: %w", err)
	}

	if aspectsJSON {
		return outputAspectsJSON(cmd, aspects, actx)
	}
	return outputAspects(cmd, aspects, actx)
}

func outputAspectsJSON(cmd *cobra.Command, aspects []domain.SimpleAspect, actx *domain.ActivationContext) error {
	payload := struct {
		Aspects []domain.SimpleAspect     `json:"aspects"`
		Context *domain.ActivationContext `json:"context"`
	}{aspects, actx}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal aspects: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAspects(cmd *cobra.Command, aspects []domain.SimpleAspect, actx *domain.ActivationContext) error {
	if len(aspects) == 0 {
		cmd.Println("No aspects within orb today.")
		return nil
	}

	cmd.Println(styleHeading.Render("Transiting Moon"))
	cmd.Println()
	for _, a := range aspects {
		cmd.Printf("  %s %s natal %s  %s\n",
			a.Transiting, a.Type, a.Natal,
			styleMuted.Render(fmt.Sprintf("(orb %.2f°)", a.Orb)))
	}
	cmd.Println()
	cmd.Println(styleMuted.Render(describeContext(actx)))

	return nil
}
