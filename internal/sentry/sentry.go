// Package sentry reports crashes and log output to Sentry when the user has
// opted into telemetry and a DSN is configured. Without both, every function
// here returns immediately.
package sentry

import (
	"runtime"
	"strconv"
	"time"

	gosentry "github.com/getsentry/sentry-go"
)

// flushTimeout bounds how long shutdown waits on queued events.
const flushTimeout = 2 * time.Second

var enabled bool

// Init starts the client for release folio@version. A disabled or empty
// configuration is not an error.
func Init(version, dsn string, telemetryEnabled bool) error {
	enabled = false
	if !telemetryEnabled || dsn == "" {
		return nil
	}
	if err := gosentry.Init(clientOptions(version, dsn)); err != nil {
		return err
	}
	gosentry.ConfigureScope(func(scope *gosentry.Scope) {
		scope.SetTags(runtimeTags(version))
	})
	enabled = true
	return nil
}

func clientOptions(version, dsn string) gosentry.ClientOptions {
	return gosentry.ClientOptions{
		Dsn:              dsn,
		Release:          "folio@" + version,
		AttachStacktrace: true,
		SampleRate:       1.0,
	}
}

func runtimeTags(version string) map[string]string {
	return map[string]string{
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"go_version": runtime.Version(),
		"version":    version,
	}
}

// IsEnabled reports whether Init started a client.
func IsEnabled() bool {
	return enabled
}

// Flush blocks until queued events are sent or flushTimeout passes.
func Flush() {
	if enabled {
		gosentry.Flush(flushTimeout)
	}
}

// RecoverPanic must be deferred directly. It records a panic as an event and
// panics again so the process still crashes.
func RecoverPanic() {
	if !enabled {
		return
	}
	if r := recover(); r != nil {
		gosentry.CurrentHub().Recover(r)
		gosentry.Flush(flushTimeout)
		panic(r)
	}
}

// SetContext attaches the session's theme, snap preference and content
// source to later events.
func SetContext(theme string, scrollSnap bool, contentSource string) {
	if !enabled {
		return
	}
	gosentry.ConfigureScope(func(scope *gosentry.Scope) {
		scope.SetTags(pageTags(theme, scrollSnap))
		scope.SetContext("page", gosentry.Context{
			"theme":          theme,
			"scroll_snap":    scrollSnap,
			"content_source": contentSource,
		})
	})
}

func pageTags(theme string, scrollSnap bool) map[string]string {
	return map[string]string{
		"theme":       theme,
		"scroll_snap": strconv.FormatBool(scrollSnap),
	}
}
