package cmd

import (
	"bytes"
	"testing"

	"github.com/cyberarsenal/cyberarsenal/internal/colors"
	"github.com/cyberarsenal/cyberarsenal/internal/config"
	"github.com/cyberarsenal/cyberarsenal/internal/logging"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Cleanup(func() {
		settingsPath = ""
		verbose = false
		colors.SetDebug(false)
		_ = logging.ShutdownGlobal()
	})
}

func TestSetupAppliesSettingsFlag(t *testing.T) {
	resetFlags(t)
	settingsPath = "/tmp/custom.db"

	require.NoError(t, setup(&cobra.Command{Use: "list"}, nil))

	assert.Equal(t, "/tmp/custom.db", config.Get("database_path", ""))
	assert.False(t, config.GetBool("debug", true))
	assert.Empty(t, logging.CurrentLogFile())
}

func TestSetupVerboseEnablesFileLogging(t *testing.T) {
	resetFlags(t)
	verbose = true

	require.NoError(t, setup(&cobra.Command{Use: "list"}, nil))

	assert.True(t, config.GetBool("debug", false))
	assert.Contains(t, logging.CurrentLogFile(), "_list.log")
}

func TestPrintHelpText(t *testing.T) {
	root := &cobra.Command{Use: "cyberarsenal", Short: "Recipes."}
	root.AddCommand(
		&cobra.Command{Use: "version", Short: "Show version information"},
		&cobra.Command{Use: "list", Short: "List catalog commands"},
		&cobra.Command{Use: "hidden", Short: "Not listed"},
	)

	var buf bytes.Buffer
	printHelpText(&buf, root)
	out := buf.String()

	assert.Contains(t, out, "Recipes.")
	assert.Contains(t, out, "--settings")
	assert.NotContains(t, out, "hidden")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("list")), bytes.Index(buf.Bytes(), []byte("version    ")))
}
