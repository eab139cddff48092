package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapgrid/internal/cli/config"
	"github.com/leapstack-labs/leapgrid/internal/cli/testutil"
)

// loadProject sets up a test project and loads its config with the given
// output mode.
func loadProject(t *testing.T, mode string) string {
	t.Helper()
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	dir := testutil.SetupTestProject(t)
	t.Setenv("LEAPGRID_OUTPUT", mode)
	_, err := config.LoadConfig(filepath.Join(dir, "leapgrid.yaml"), nil)
	require.NoError(t, err)
	return dir
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCommandMetadata(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{cmd: NewTreeCommand(), use: "tree"},
		{cmd: NewResolveCommand(), use: "resolve [column-id...]", flags: []string{"watch"}},
		{cmd: NewLocateCommand(), use: "locate <locator>..."},
		{cmd: NewExportCommand(), use: "export", flags: []string{"write"}},
		{cmd: NewAutosizeCommand(), use: "autosize", flags: []string{"cells", "sorted"}},
		{cmd: NewREPLCommand(), use: "repl"},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short, "Short should not be empty")
			assert.NotEmpty(t, tt.cmd.Long, "Long should not be empty")
			for _, flag := range tt.flags {
				assert.NotNil(t, tt.cmd.Flags().Lookup(flag), "flag %q should exist", flag)
			}
		})
	}
}

func TestCommand_MissingResult(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cfgPath := filepath.Join(t.TempDir(), "leapgrid.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("result: missing.yaml\n"), 0600))
	_, err := config.LoadConfig(cfgPath, nil)
	require.NoError(t, err)

	_, _, err = runCommand(t, NewTreeCommand())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "result file does not exist")
}
