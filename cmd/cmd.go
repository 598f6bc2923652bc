// Package cmd holds the folio subcommands. Each execute* helper carries the
// command's logic so it can be tested without cobra plumbing.
package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/kastheco/folio/config"
	"github.com/kastheco/folio/content"
	"github.com/kastheco/folio/log"
	"github.com/kastheco/folio/prefs"
)

// LoadContent reads the content document. override wins over the configured
// path; with neither the embedded content is used.
func LoadContent(cfg *config.Config, override string) (*content.Data, error) {
	path := cfg.ContentPath
	if override != "" {
		path = override
	}
	if path == "" {
		return content.Default(), nil
	}
	return content.Load(path)
}

// LoadContentOrDefault is LoadContent for the portfolio views: a document that
// cannot be read or parsed is logged and the embedded content is shown
// instead. The second result names where the content came from.
func LoadContentOrDefault(cfg *config.Config, override string) (*content.Data, string) {
	data, err := LoadContent(cfg, override)
	if err != nil {
		log.WarningLog.Printf("using embedded content: %v", err)
		return content.Default(), "embedded"
	}
	switch {
	case override != "":
		return data, filepath.Base(override)
	case cfg.ContentPath != "":
		return data, filepath.Base(cfg.ContentPath)
	}
	return data, "embedded"
}

// OpenPrefs opens the preference database named by cfg. When the database
// cannot be opened the preferences live in memory for this run and the error
// is logged.
func OpenPrefs(cfg *config.Config) (*prefs.Preferences, prefs.Store) {
	store, err := openPrefsStore(cfg)
	if err != nil {
		log.WarningLog.Printf("preferences will not be saved: %v", err)
		mem := prefs.NewMemoryStore()
		return prefs.Load(mem), mem
	}
	return prefs.Load(store), store
}

func openPrefsStore(cfg *config.Config) (*prefs.SQLiteStore, error) {
	path, err := cfg.PrefsPath()
	if err != nil {
		return nil, err
	}
	return prefs.NewSQLiteStore(path)
}

// loadConfig loads the config file and the log files for a subcommand.
// The returned func closes the logs.
func loadConfig() (*config.Config, func()) {
	log.Initialize(false)
	return config.LoadConfig(), log.Close
}

var errNoContent = errors.New("content document is empty")

func checkContent(data *content.Data) error {
	if data == nil {
		return errNoContent
	}
	if data.Contact.Name == "" && data.Homepage.Title == "" {
		return fmt.Errorf("%w: set contact.name or homepage.title", errNoContent)
	}
	return nil
}
