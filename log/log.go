package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	sentrypkg "github.com/kastheco/folio/internal/sentry"
)

var (
	WarningLog *log.Logger
	InfoLog    *log.Logger
	ErrorLog   *log.Logger
)

var logFileName = filepath.Join(os.TempDir(), "folio.log")

var globalLogFile *os.File

func init() {
	// Loggers are usable before Initialize so packages that log during
	// tests or early startup never dereference nil.
	setLoggers(io.Discard, false)
}

// Initialize should be called once at the beginning of the program to set up
// logging. When telemetry is enabled, warnings and errors are additionally
// forwarded to Sentry as breadcrumbs and events.
func Initialize(telemetry ...bool) {
	f, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		panic(fmt.Sprintf("could not open log file: %s", err))
	}
	globalLogFile = f
	setLoggers(f, len(telemetry) > 0 && telemetry[0])
}

func setLoggers(w io.Writer, telemetry bool) {
	var infoW, warnW, errW io.Writer = w, w, w
	if telemetry {
		infoW = sentrypkg.NewWriter(w, sentrypkg.LevelInfo)
		warnW = sentrypkg.NewWriter(w, sentrypkg.LevelWarning)
		errW = sentrypkg.NewWriter(w, sentrypkg.LevelError)
	}
	InfoLog = log.New(infoW, "INFO:", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(warnW, "WARNING:", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(errW, "ERROR:", log.Ldate|log.Ltime|log.Lshortfile)
}

// Close closes the log file. Safe to call when Initialize was never called.
func Close() {
	if globalLogFile == nil {
		return
	}
	_ = globalLogFile.Close()
	globalLogFile = nil
	setLoggers(io.Discard, false)
}

// LogFile returns the path of the log file.
func LogFile() string {
	return logFileName
}

// Every is used to log at most once every timeout duration.
type Every struct {
	mu      sync.Mutex
	timeout time.Duration
	last    time.Time
}

func NewEvery(timeout time.Duration) *Every {
	return &Every{timeout: timeout}
}

// ShouldLog returns true if the timeout has passed since the last log.
func (e *Every) ShouldLog() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := time.Now()
	if e.last.IsZero() || now.Sub(e.last) >= e.timeout {
		e.last = now
		return true
	}
	return false
}
