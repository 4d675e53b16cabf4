package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd(t *testing.T) {
	assert.Equal(t, "fretwork", rootCmd.Use)
	assert.True(t, rootCmd.HasSubCommands())

	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"tracks", "render", "export"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
