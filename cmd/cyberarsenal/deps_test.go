package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cyberarsenal/cyberarsenal/internal/catalog"
	"github.com/cyberarsenal/cyberarsenal/internal/clipboard"
	"github.com/cyberarsenal/cyberarsenal/internal/config"
	"github.com/cyberarsenal/cyberarsenal/internal/recipe"
	"github.com/cyberarsenal/cyberarsenal/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient serves every command interface from memory.
type fakeClient struct {
	commands  []recipe.Command
	loadErr   error
	provider  string
	clipboard clipboard.Writer

	imported    []catalog.Entry
	importPath  string
	importWiped bool
}

func (f *fakeClient) LoadCommands(context.Context) ([]recipe.Command, error) {
	return f.commands, f.loadErr
}

func (f *fakeClient) SearchProvider(override string) (search.Provider, error) {
	name := override
	if name == "" {
		name = f.provider
	}
	return search.New(name)
}

func (f *fakeClient) NameWidth() int { return 8 }

func (f *fakeClient) Clipboard() clipboard.Writer { return f.clipboard }

func (f *fakeClient) ImportEntries(_ context.Context, path string, entries []catalog.Entry, replace bool) (string, error) {
	f.imported = entries
	f.importPath = path
	f.importWiped = replace
	if path == "" {
		path = "default.db"
	}
	return path, nil
}

func (f *fakeClient) Version() string { return "1.2.3+abc1234" }

func testCommands() []recipe.Command {
	return []recipe.Command{
		recipe.New(0, "ping0", "ping", "network", "Simple ping with verbose on", "Sends **ICMP** echo requests.", "-v <destination|127.0.0.1>",
			[]string{"ping 127.0.0.1"}),
		recipe.New(1, "nmap_syn", "nmap", "pentest|network", "SYN scan", "", "-sS -p <ports|1-1024> <target>", nil),
		recipe.New(2, "scp_pull", "scp", "sysadmin", "", "", "<user>@<host>:<src> <dest|.>", nil),
	}
}

func setupConfig(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	config.Load()
	db := filepath.Join(t.TempDir(), "settings.db")
	config.Set("database_path", db)
	return db
}

func TestAppClientEmptyCatalogUsesExamples(t *testing.T) {
	setupConfig(t)
	client := &appClient{}

	cmds, err := client.LoadCommands(context.Background())
	require.NoError(t, err)
	require.Len(t, cmds, 1)
	assert.Equal(t, "ping0", cmds[0].Name)

	config.Set("builtin_examples", "false")
	cmds, err = client.LoadCommands(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cmds)
}

func TestAppClientImportThenLoad(t *testing.T) {
	db := setupConfig(t)
	client := &appClient{}
	entries := []catalog.Entry{
		{Name: "nc_listen", Executable: "nc", Types: "network", Args: "-lvnp <port|4444>"},
		{Name: "whoami", Executable: "whoami", Types: "sysadmin"},
	}

	path, err := client.ImportEntries(context.Background(), "", entries, false)
	require.NoError(t, err)
	assert.Equal(t, db, path)

	cmds, err := client.LoadCommands(context.Background())
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Equal(t, "nc -lvnp 4444 ", cmds[0].RenderResolved())
	assert.Equal(t, 1, cmds[1].ID)
}

func TestAppClientImportIntoExplicitPath(t *testing.T) {
	setupConfig(t)
	client := &appClient{}
	other := filepath.Join(t.TempDir(), "nested", "other.db")

	path, err := client.ImportEntries(context.Background(), other, []catalog.Entry{{Name: "id", Executable: "id"}}, true)
	require.NoError(t, err)
	assert.Equal(t, other, path)

	cmds, err := client.LoadCommands(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ping0", cmds[0].Name, "configured catalog stays empty")
}

func TestAppClientSearchProvider(t *testing.T) {
	setupConfig(t)
	client := &appClient{}

	p, err := client.SearchProvider("")
	require.NoError(t, err)
	assert.Equal(t, "substring", p.Name())

	config.Set("search_provider", "token")
	p, err = client.SearchProvider("")
	require.NoError(t, err)
	assert.Equal(t, "token", p.Name())

	p, err = client.SearchProvider("regex")
	require.NoError(t, err)
	assert.Equal(t, "regex", p.Name())

	_, err = client.SearchProvider("fuzzy")
	assert.ErrorContains(t, err, "search_provider")
}

func TestAppClientSettings(t *testing.T) {
	db := setupConfig(t)
	buf := &clipboard.Buffer{}
	client := &appClient{clipboard: buf}

	assert.Equal(t, 20, client.NameWidth())
	assert.Equal(t, db, client.DatabasePath())
	assert.Same(t, buf, client.Clipboard())
	assert.NotEmpty(t, client.Version())
}
