//go:build !integration

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/nexlume/fibercat/internal/config"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// testConfig points cfg at a fresh SQLite file and returns its path.
func testConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fibercat.db")
	cfg = &config.Config{
		Store:  config.StoreConfig{Driver: "sqlite", Path: path},
		Server: config.ServerConfig{Port: 8080, RateBurst: 10},
		Import: config.ImportConfig{Concurrency: 2},
		Fetch:  config.FetchConfig{TimeoutSecs: 5, MaxRetries: 1, UserAgent: "fibercat-test"},
		Log:    config.LogConfig{Level: "info", Format: "json"},
	}
	return path
}

// setFlags sets flags on cmd and restores their defaults when the test ends.
func setFlags(t *testing.T, cmd *cobra.Command, values map[string]string) {
	t.Helper()
	cmd.InheritedFlags() // merges parent persistent flags into cmd.Flags()
	for name, v := range values {
		f := cmd.Flags().Lookup(name)
		require.NotNil(t, f, "flag %q", name)
		require.NoError(t, f.Value.Set(v))
		f.Changed = true
		t.Cleanup(func() {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
}

// execute runs cmd's RunE with a background context and captures stdout.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	cmd.InheritedFlags()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetContext(context.Background())
	t.Cleanup(func() {
		cmd.SetOut(nil)
		cmd.SetErr(nil)
	})
	err := cmd.RunE(cmd, args)
	return out.String() + errOut.String(), err
}
