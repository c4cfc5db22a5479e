package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDaemonCmd_Use(t *testing.T) {
	assert.Equal(t, "daemon", daemonCmd.Use)
}

func TestDaemonCmd_RequiresScheduler(t *testing.T) {
	prev := schedulerService
	schedulerService = nil
	defer func() { schedulerService = prev }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"daemon"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "scheduler not configured")
}
