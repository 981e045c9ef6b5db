package main

import (
	"context"
	"fmt"

	"github.com/cyberarsenal/cyberarsenal/internal/catalog"
	"github.com/cyberarsenal/cyberarsenal/internal/clipboard"
	"github.com/cyberarsenal/cyberarsenal/internal/config"
	"github.com/cyberarsenal/cyberarsenal/internal/logging"
	"github.com/cyberarsenal/cyberarsenal/internal/recipe"
	"github.com/cyberarsenal/cyberarsenal/internal/search"
	"github.com/cyberarsenal/cyberarsenal/internal/version"
)

// appClient resolves every dependency from the loaded configuration at call
// time, after the root command's pre-run has read flags and config files.
type appClient struct {
	clipboard clipboard.Writer
}

var defaultClient = &appClient{clipboard: clipboard.System{}}

// LoadCommands reads the catalog database. An empty catalog gets the built-in
// examples when builtin_examples is set.
func (a *appClient) LoadCommands(ctx context.Context) ([]recipe.Command, error) {
	store, err := catalog.Open(a.DatabasePath())
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Warn("close catalog failed", "error", err)
		}
	}()

	cmds, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if len(cmds) == 0 && config.GetBool("builtin_examples", true) {
		logging.Info("catalog is empty, using built-in examples", "path", store.Path())
		cmds = catalog.Examples(0)
	}
	return cmds, nil
}

// ImportEntries writes entries into the catalog at path, or the configured
// catalog when path is empty.
func (a *appClient) ImportEntries(ctx context.Context, path string, entries []catalog.Entry, replace bool) (string, error) {
	if path == "" {
		path = a.DatabasePath()
	}
	store, err := catalog.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logging.Warn("close catalog failed", "error", err)
		}
	}()

	if err := store.Import(ctx, entries, replace); err != nil {
		return "", err
	}
	return store.Path(), nil
}

// SearchProvider builds the configured search provider. An override name
// replaces search_provider.
func (a *appClient) SearchProvider(override string) (search.Provider, error) {
	name := override
	if name == "" {
		name = config.Get("search_provider", "substring")
	}
	p, err := search.New(name, search.WithCaseInsensitive(!config.GetBool("search_case_sensitive", false)))
	if err != nil {
		return nil, fmt.Errorf("search_provider: %w", err)
	}
	return p, nil
}

// NameWidth is the padding of the name column in annotated rows.
func (a *appClient) NameWidth() int {
	return config.GetInt("name_width", 20)
}

// DatabasePath is the configured catalog path.
func (a *appClient) DatabasePath() string {
	return config.Get("database_path", "")
}

// Clipboard returns the clipboard writer.
func (a *appClient) Clipboard() clipboard.Writer {
	return a.clipboard
}

// Version returns the build version.
func (a *appClient) Version() string {
	return version.String()
}
