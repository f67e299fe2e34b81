// File: cmd/root_test.go
package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootRegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["demo"])
	assert.True(t, names["version"])
}

func TestRootFlags(t *testing.T) {
	require.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))

	demo, _, err := rootCmd.Find([]string{"demo"})
	require.NoError(t, err)
	for _, name := range []string{"url", "headless", "dry-run"} {
		assert.NotNil(t, demo.Flags().Lookup(name), "missing flag %s", name)
	}
}

func TestVersionIsSet(t *testing.T) {
	assert.NotEmpty(t, Version)
	assert.Equal(t, Version, rootCmd.Version)
}
