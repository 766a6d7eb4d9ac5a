// Package logging appends errors and optional JSON trace entries to a log
// file shared by the controller and the builders it launches.
package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const logFileName = "mpv-context-menu.log"

// RunIDEnv carries the run ID into builder subprocesses.
const RunIDEnv = "MPV_CONTEXT_MENU_RUN_ID"

// Roles tag which process wrote an entry.
const (
	RoleController = "controller"
	RoleBuilder    = "builder"
)

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = DefaultPath()
	runID        = uuid.NewString()
	role         = RoleController
)

// DefaultPath is the log file used when none is configured: the user cache
// directory, or the temp directory when there is none. mpv starts scripts
// from arbitrary working directories, so a relative path is never used.
func DefaultPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "mpv-context-menu", logFileName)
}

// RunID identifies this process in the shared log. Builder subprocesses
// inherit it through the environment so their entries can be correlated.
func RunID() string {
	mu.Lock()
	defer mu.Unlock()
	return runID
}

// SetRunID adopts an inherited run ID. Invalid values are ignored.
func SetRunID(id string) {
	if _, err := uuid.Parse(id); err != nil {
		return
	}
	mu.Lock()
	runID = id
	mu.Unlock()
}

// SetRole tags subsequent entries with r.
func SetRole(r string) {
	mu.Lock()
	role = r
	mu.Unlock()
}

// Path returns the current log destination.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Error writes err to the log as one plain line.
func Error(err error) {
	if err == nil {
		return
	}
	mu.Lock()
	path, id, r := logPath, runID, role
	mu.Unlock()

	line := fmt.Sprintf("%s [%s %s] %v\n", time.Now().Format("2006/01/02 15:04:05"), r, id, err)
	if werr := appendTo(path, []byte(line)); werr != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", werr)
	}
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

type traceEntry struct {
	Time    time.Time   `json:"time"`
	Run     string      `json:"run"`
	Role    string      `json:"role"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Trace appends a JSON entry to the log when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	enabled, path, id, r := traceEnabled, logPath, runID, role
	mu.Unlock()
	if !enabled {
		return
	}

	data, err := json.Marshal(traceEntry{
		Time:    time.Now().UTC(),
		Run:     id,
		Role:    r,
		Event:   event,
		Payload: payload,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
		return
	}
	if err := appendTo(path, append(data, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "trace logging failed: %v\n", err)
	}
}

// appendTo writes data with a single write so entries from the controller
// and a builder do not interleave.
func appendTo(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Configure sets the log destination, creating its directory. An empty path
// selects DefaultPath.
func Configure(path string) {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		path = filepath.Join(os.TempDir(), logFileName)
	}
	mu.Lock()
	logPath = path
	mu.Unlock()
}
