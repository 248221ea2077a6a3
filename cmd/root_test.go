//go:build !integration

package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subcommandNames(cmds []*cobra.Command) map[string]bool {
	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}
	return names
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := subcommandNames(rootCmd.Commands())
	for _, name := range []string{"serve", "migrate", "seed", "import", "families", "products", "configure"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "fibercat", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestFamiliesCommand_HasSubcommands(t *testing.T) {
	names := subcommandNames(familiesCmd.Commands())
	for _, name := range []string{"list", "show", "export"} {
		assert.True(t, names[name], "families should have subcommand %q", name)
	}
	for _, name := range []string{"category", "subcategory"} {
		assert.NotNil(t, familiesCmd.PersistentFlags().Lookup(name), "families should have --%s", name)
	}
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}

func TestImportCommand_Flags(t *testing.T) {
	for _, name := range []string{"dry-run", "concurrency", "json"} {
		assert.NotNil(t, importCmd.Flags().Lookup(name), "import should have --%s flag", name)
	}
	assert.Error(t, importCmd.Args(importCmd, nil), "import needs at least one source")
}

func TestConfigureCommand_Flags(t *testing.T) {
	for _, name := range []string{"application", "profile", "fiber-type", "connector-a", "connector-b", "jacket", "length", "save", "json"} {
		assert.NotNil(t, configureCmd.Flags().Lookup(name), "configure should have --%s flag", name)
	}
}
