package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/brittanydani/mysky-sub002/internal/core/ports/driving"
	"github.com/brittanydani/mysky-sub002/internal/logger"
)

var schedulerService driving.Scheduler

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the background scheduler",
	Long: `Runs the background scheduler in the foreground: the daily reading
refresh after midnight and periodic pruning of old shown-item records.
Stops on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(daemonCmd)
}

// SetScheduler injects the scheduler. Called by the composition root.
func SetScheduler(s driving.Scheduler) {
	schedulerService = s
}

func runDaemon(cmd *cobra.Command, _ []string) error {
	if schedulerService == nil {
		return errors.New("scheduler not configured")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- schedulerService.Start(ctx)
	}()

	cmd.Println("Scheduler running. Press Ctrl+C to stop.")

	select {
	case sig := <-sigCh:
		logger.Info("received %s, stopping scheduler", sig)
		if err := schedulerService.Stop(); err != nil {
			return err
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}
