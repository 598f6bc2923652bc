// Package check audits the files and services a folio install depends on.
package check

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kastheco/folio/config"
	"github.com/kastheco/folio/content"
	"github.com/kastheco/folio/cv"
	"github.com/kastheco/folio/prefs"
	"github.com/kastheco/folio/section"
)

// Status represents the state of a single audited item.
type Status int

const (
	StatusOK      Status = iota // present and usable
	StatusSkipped               // not configured, nothing to check
	StatusMissing               // configured but absent
	StatusBroken                // present but unusable
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSkipped:
		return "skipped"
	case StatusMissing:
		return "missing"
	case StatusBroken:
		return "broken"
	default:
		return "unknown"
	}
}

// Entry is one audited item.
type Entry struct {
	Name   string
	Status Status
	Detail string // e.g. resolved path, section list, error message
}

// Result is the complete output of folio check.
type Result struct {
	Entries []Entry
}

// Summary returns the healthy and total counts. Skipped entries count towards
// neither.
func (r *Result) Summary() (ok, total int) {
	for _, e := range r.Entries {
		switch e.Status {
		case StatusSkipped:
		case StatusOK:
			ok++
			total++
		default:
			total++
		}
	}
	return ok, total
}

// Audit checks the config file, the content document, the preferences
// database and the CV source described by cfg. configPath is the config file
// that was loaded.
func Audit(ctx context.Context, cfg *config.Config, configPath string) *Result {
	return &Result{Entries: []Entry{
		auditConfig(configPath),
		auditContent(cfg.ContentPath),
		auditPrefs(cfg),
		auditCV(ctx, cfg.CV),
	}}
}

func auditConfig(path string) Entry {
	e := Entry{Name: "config", Detail: path}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			e.Status = StatusMissing
			return e
		}
		e.Status = StatusBroken
		e.Detail = err.Error()
		return e
	}
	if _, err := config.LoadConfigFrom(path); err != nil {
		e.Status = StatusBroken
		e.Detail = err.Error()
		return e
	}
	e.Status = StatusOK
	return e
}

func auditContent(path string) Entry {
	e := Entry{Name: "content"}
	var data *content.Data
	if path == "" {
		data = content.Default()
		e.Detail = "embedded"
	} else {
		d, err := content.Load(path)
		if err != nil {
			e.Status = StatusBroken
			if errors.Is(err, os.ErrNotExist) {
				e.Status = StatusMissing
			}
			e.Detail = err.Error()
			return e
		}
		data = d
		e.Detail = path
	}
	reg := section.Build(data)
	e.Detail = fmt.Sprintf("%s, %d sections %v", e.Detail, reg.Len(), reg.IDs())
	e.Status = StatusOK
	return e
}

func auditPrefs(cfg *config.Config) Entry {
	e := Entry{Name: "preferences"}
	path, err := cfg.PrefsPath()
	if err != nil {
		e.Status = StatusBroken
		e.Detail = err.Error()
		return e
	}
	e.Detail = path
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		// Created on first launch.
		e.Status = StatusSkipped
		e.Detail = path + " (not created yet)"
		return e
	}
	store, err := prefs.NewSQLiteStore(path)
	if err != nil {
		e.Status = StatusBroken
		e.Detail = err.Error()
		return e
	}
	defer store.Close()
	if _, err := store.Get(prefs.KeyTheme); err != nil && !errors.Is(err, prefs.ErrNotFound) {
		e.Status = StatusBroken
		e.Detail = err.Error()
		return e
	}
	p := prefs.Load(store)
	e.Detail = fmt.Sprintf("%s (theme=%s, scroll snap=%t)", path, p.Theme(), p.ScrollSnapEnabled())
	e.Status = StatusOK
	return e
}

func auditCV(ctx context.Context, c config.CVConfig) Entry {
	e := Entry{Name: "cv"}
	switch {
	case c.URL != "":
		// Remote sources are only fetched on demand.
		e.Status = StatusOK
		e.Detail = c.URL
		return e
	case c.Path == "":
		e.Status = StatusSkipped
		e.Detail = "no source configured"
		return e
	}

	path := filepath.Clean(c.Path)
	data, err := (&cv.FileFetcher{Path: path}).Fetch(ctx)
	if err != nil {
		e.Status = StatusBroken
		if errors.Is(err, os.ErrNotExist) {
			e.Status = StatusMissing
		}
		e.Detail = err.Error()
		return e
	}
	info, err := cv.Inspect(data)
	if err != nil {
		e.Status = StatusBroken
		e.Detail = err.Error()
		return e
	}
	e.Status = StatusOK
	e.Detail = fmt.Sprintf("%s (%d pages)", path, info.Pages)
	return e
}
