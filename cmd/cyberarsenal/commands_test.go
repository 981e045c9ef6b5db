package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cyberarsenal/cyberarsenal/internal/catalog"
	"github.com/cyberarsenal/cyberarsenal/internal/clipboard"
	"github.com/cyberarsenal/cyberarsenal/internal/colors"
	"github.com/cyberarsenal/cyberarsenal/internal/tui/state"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func captureColors(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	colors.SetOutput(&buf, &buf)
	t.Cleanup(func() { colors.SetOutput(nil, nil) })
	return &buf
}

func stubTerminal(t *testing.T, tty bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func() bool { return tty }
	t.Cleanup(func() { isTerminal = orig })
}

func TestCommandConstructorsRejectNilClient(t *testing.T) {
	assert.Panics(t, func() { NewListCmd(nil) })
	assert.Panics(t, func() { NewShowCmd(nil) })
	assert.Panics(t, func() { NewCopyCmd(nil) })
	assert.Panics(t, func() { NewImportCmd(nil) })
	assert.Panics(t, func() { NewVersionCmd(nil) })
	assert.Panics(t, func() { NewTUICmd(nil) })
}

func TestListPrintsAnnotatedRows(t *testing.T) {
	client := &fakeClient{commands: testCommands()}

	out, err := execute(t, NewListCmd(client))

	require.NoError(t, err)
	assert.Equal(t,
		"[ping0   ] ping -v <destination>\n"+
			"[nmap_syn] nmap -sS -p <ports> <target>\n"+
			"[scp_pull] scp <user>@<host>:<src> <dest>\n",
		out)
}

func TestListSearch(t *testing.T) {
	client := &fakeClient{commands: testCommands()}

	out, err := execute(t, NewListCmd(client), "--search", "NETWORK")
	require.NoError(t, err)
	assert.Contains(t, out, "ping0")
	assert.Contains(t, out, "nmap_syn")
	assert.NotContains(t, out, "scp_pull")

	out, err = execute(t, NewListCmd(client), "--provider", "token", "--search", "type:pentest exe:nmap")
	require.NoError(t, err)
	assert.Equal(t, "[nmap_syn] nmap -sS -p <ports> <target>\n", out)

	out, err = execute(t, NewListCmd(client), "--search", "nothing-matches")
	require.NoError(t, err)
	assert.Equal(t, "No commands found\n", out)
}

func TestListErrors(t *testing.T) {
	_, err := execute(t, NewListCmd(&fakeClient{loadErr: catalog.ErrEmptyPath}))
	assert.ErrorIs(t, err, catalog.ErrEmptyPath)

	_, err = execute(t, NewListCmd(&fakeClient{}), "--provider", "fuzzy")
	assert.ErrorContains(t, err, "unknown provider")
}

func TestShowPrintsInfo(t *testing.T) {
	stubTerminal(t, false)
	client := &fakeClient{commands: testCommands()}

	out, err := execute(t, NewShowCmd(client), "ping0")

	require.NoError(t, err)
	assert.Contains(t, out, "Command:ping\nTYPE:NETWORK\nExplanation:\nSimple ping with verbose on\nDetails:\n")
	assert.Contains(t, out, "ICMP")
	assert.Contains(t, out, "echo requests.")
	assert.Contains(t, out, "ping -v <destination> \nExamples:\n > ping 127.0.0.1")
}

func TestShowUnknownCommand(t *testing.T) {
	_, err := execute(t, NewShowCmd(&fakeClient{commands: testCommands()}), "nope")
	assert.ErrorIs(t, err, catalog.ErrCommandNotFound)

	_, err = execute(t, NewShowCmd(&fakeClient{}))
	assert.Error(t, err)
}

func TestCopyWritesResolvedLineToClipboard(t *testing.T) {
	out := captureColors(t)
	buf := &clipboard.Buffer{}
	client := &fakeClient{commands: testCommands(), clipboard: buf}

	_, err := execute(t, NewCopyCmd(client), "ping0", "--set", "destination=8.8.8.8")

	require.NoError(t, err)
	assert.Equal(t, "ping -v 8.8.8.8", buf.Text)
	assert.Contains(t, out.String(), "Copied: ping -v 8.8.8.8")
	assert.Equal(t, "ping -v 127.0.0.1 ", client.commands[0].RenderResolved(), "catalog entry stays untouched")
}

func TestCopyPrint(t *testing.T) {
	client := &fakeClient{commands: testCommands(), clipboard: &clipboard.Buffer{}}

	out, err := execute(t, NewCopyCmd(client), "scp_pull", "--print",
		"--set", "user=root", "--set", "<host>=10.0.0.5", "--set", "2=/etc/passwd")

	require.NoError(t, err)
	assert.Equal(t, "scp root@10.0.0.5:/etc/passwd .\n", out)
	assert.Empty(t, client.clipboard.(*clipboard.Buffer).Text)
}

func TestCopyRejectsBadOverrides(t *testing.T) {
	client := &fakeClient{commands: testCommands(), clipboard: &clipboard.Buffer{}}

	_, err := execute(t, NewCopyCmd(client), "ping0", "--set", "destination")
	assert.ErrorContains(t, err, "expected placeholder=value")

	_, err = execute(t, NewCopyCmd(client), "ping0", "--set", "port=22")
	assert.ErrorContains(t, err, `no placeholder "port"`)

	_, err = execute(t, NewCopyCmd(client), "ping0", "--set", "0=literal")
	assert.ErrorContains(t, err, `no placeholder "0"`, "literal segments cannot be set")
}

func TestCopyClipboardUnavailable(t *testing.T) {
	w := new(clipboard.MockWriter)
	w.On("WriteAll", "nmap -sS -p 1-1024 <target>").Return(&clipboard.Error{Op: "write", Err: clipboard.ErrUnavailable})
	client := &fakeClient{commands: testCommands(), clipboard: w}

	_, err := execute(t, NewCopyCmd(client), "nmap_syn")

	require.Error(t, err)
	assert.ErrorIs(t, err, clipboard.ErrUnavailable)
	assert.Contains(t, err.Error(), "--print")
	w.AssertExpectations(t)
}

func TestImportReadsFileAndImports(t *testing.T) {
	out := captureColors(t)
	file := filepath.Join(t.TempDir(), "commands.toml")
	require.NoError(t, os.WriteFile(file, []byte(`
[command.nc_listen]
name_exe = "nc"
cmd_types = "network"
args = "-lvnp <port|4444>"

[command.arp_scan]
name_exe = "arp-scan"
cmd_types = "network"
args = "-l"
`), 0o600))
	client := &fakeClient{}

	_, err := execute(t, NewImportCmd(client), "-f", file, "-d", "target.db", "--replace")

	require.NoError(t, err)
	require.Len(t, client.imported, 2)
	assert.Equal(t, "arp_scan", client.imported[0].Name)
	assert.Equal(t, "target.db", client.importPath)
	assert.True(t, client.importWiped)
	assert.Contains(t, out.String(), "Imported 2 commands into target.db")
}

func TestImportEmptyFileReportsNoCommands(t *testing.T) {
	out := captureColors(t)
	file := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(file, []byte("command: {}\n"), 0o600))
	client := &fakeClient{}

	_, err := execute(t, NewImportCmd(client), "-f", file, "--replace")

	require.NoError(t, err)
	assert.Empty(t, client.imported)
	assert.True(t, client.importWiped)
	assert.Contains(t, out.String(), "No commands found in "+file)
	assert.Contains(t, out.String(), "Imported 0 commands into default.db")
}

func TestImportRequiresFile(t *testing.T) {
	_, err := execute(t, NewImportCmd(&fakeClient{}))
	assert.ErrorContains(t, err, `"file"`)

	file := filepath.Join(t.TempDir(), "commands.json")
	require.NoError(t, os.WriteFile(file, []byte(`{}`), 0o600))
	_, err = execute(t, NewImportCmd(&fakeClient{}), "-f", file)
	assert.ErrorIs(t, err, catalog.ErrUnsupportedFormat)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, NewVersionCmd(&fakeClient{}))

	require.NoError(t, err)
	assert.Equal(t, "cyberarsenal version 1.2.3+abc1234\n", out)
}

func TestTUIFallsBackToListWithoutTerminal(t *testing.T) {
	stubTerminal(t, false)
	orig := runProgram
	runProgram = func(tea.Model) error {
		t.Fatal("program must not start without a terminal")
		return nil
	}
	t.Cleanup(func() { runProgram = orig })

	out, err := execute(t, NewTUICmd(&fakeClient{commands: testCommands()}))

	require.NoError(t, err)
	assert.Contains(t, out, "[ping0   ] ping -v <destination>\n")
}

func TestTUIRunsProgram(t *testing.T) {
	stubTerminal(t, true)
	var got tea.Model
	orig := runProgram
	runProgram = func(m tea.Model) error {
		got = m
		return nil
	}
	t.Cleanup(func() { runProgram = orig })

	_, err := execute(t, NewTUICmd(&fakeClient{commands: testCommands(), provider: "token"}))

	require.NoError(t, err)
	model, ok := got.(*state.Model)
	require.True(t, ok)
	assert.Len(t, model.Filtered(), 3)
	assert.Equal(t, state.ModeBrowsing, model.Mode())
}

func TestTUIPropagatesErrors(t *testing.T) {
	stubTerminal(t, true)
	orig := runProgram
	runProgram = func(tea.Model) error { return errors.New("no tty") }
	t.Cleanup(func() { runProgram = orig })

	_, err := execute(t, NewTUICmd(&fakeClient{commands: testCommands()}))
	assert.EqualError(t, err, "tui: no tty")

	_, err = execute(t, NewTUICmd(&fakeClient{loadErr: errors.New("locked")}))
	assert.EqualError(t, err, "load catalog: locked")
}

func TestRunExitCodes(t *testing.T) {
	out := captureColors(t)

	assert.Equal(t, 0, run(func() error { return nil }))
	assert.Equal(t, 1, run(func() error { return errors.New("boom") }))
	assert.Contains(t, out.String(), "boom")
}
