package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	journalPromptID string
	journalDays     int
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Manage journal entries",
	Long: `Write and review journal entries. Entries written against prompts
feed back into prompt selection: a steady writing habit surfaces more
reflective prompts.`,
	RunE: runJournalList,
}

var journalWriteCmd = &cobra.Command{
	Use:   "write [text]",
	Short: "Write a journal entry",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runJournalWrite,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent entries",
	RunE:  runJournalList,
}

var journalRemoveCmd = &cobra.Command{
	Use:   "remove [id]",
	Short: "Remove an entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalRemove,
}

var journalPatternCmd = &cobra.Command{
	Use:   "pattern",
	Short: "Show recent writing pattern",
	RunE:  runJournalPattern,
}

func init() {
	journalWriteCmd.Flags().StringVar(&journalPromptID, "prompt", "", "prompt id the entry responds to")
	journalListCmd.Flags().IntVarP(&journalDays, "days", "d", 14, "window of days to list")

	journalCmd.AddCommand(journalWriteCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalRemoveCmd)
	journalCmd.AddCommand(journalPatternCmd)
	rootCmd.AddCommand(journalCmd)
}

func runJournalWrite(cmd *cobra.Command, args []string) error {
	if journalService == nil {
		return errors.New("journal service not configured")
	}

	body := strings.Join(args, " ")
	entry, err := journalService.Write(context.Background(), journalPromptID, body)
	if err != nil {
		return fmt.Errorf("writing entry: %w", err)
	}

	cmd.Printf("Saved entry %s\n", entry.ID)
	return nil
}

func runJournalList(cmd *cobra.Command, _ []string) error {
	if journalService == nil {
		return errors.New("journal service not configured")
	}

	entries, err := journalService.List(context.Background(), journalDays)
	if err != nil {
		return fmt.Errorf("listing entries: %w", err)
	}
	if len(entries) == 0 {
		cmd.Println("No entries yet.")
		return nil
	}

	for _, e := range entries {
		cmd.Println(styleLabel.Render(e.WrittenAt.Format("Mon Jan 2")) + "  " + styleMuted.Render(e.ID))
		cmd.Println(styleBody.Render(e.Body))
		cmd.Println()
	}
	return nil
}

func runJournalRemove(cmd *cobra.Command, args []string) error {
	if journalService == nil {
		return errors.New("journal service not configured")
	}

	if err := journalService.Remove(context.Background(), args[0]); err != nil {
		return fmt.Errorf("removing entry: %w", err)
	}
	cmd.Println("Entry removed.")
	return nil
}

func runJournalPattern(cmd *cobra.Command, _ []string) error {
	if journalService == nil {
		return errors.New("journal service not configured")
	}

	pattern, err := journalService.Pattern(context.Background(), time.Now())
	if err != nil {
		return fmt.Errorf("analysing journal: %w", err)
	}

	cmd.Printf("Entries in the last two weeks: %d\n", pattern.EntryCount)
	cmd.Printf("Days written on: %d\n", pattern.ActiveDays)
	if pattern.Reflective {
		cmd.Println("You're in a steady writing rhythm; prompts will lean reflective.")
	}
	return nil
}
