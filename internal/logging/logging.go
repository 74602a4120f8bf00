// Package logging provides component-scoped debug logging.
//
// A running picker owns the terminal, so log output goes to a file
// rather than stderr. Logging is off by default; Init enables it for
// the life of the process. Callers take a scoped logger via Component
// and never check whether logging is on.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.Nop()
	sink   io.Closer
)

// Init enables debug logging to the given file path, creating parent
// directories as needed. An empty path logs to chronopick-debug.log in
// the working directory.
func Init(path string) error {
	if path == "" {
		path = "chronopick-debug.log"
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("logging: failed to create directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("logging: failed to open %s: %w", path, err)
	}

	mu.Lock()
	defer mu.Unlock()
	if sink != nil {
		sink.Close()
	}
	sink = f
	logger = zerolog.New(f).With().Timestamp().Logger()
	return nil
}

// Component returns a logger scoped to the named component. Before
// Init is called it discards everything.
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger.With().Str("component", name).Logger()
}

// Close flushes and disables logging. Safe to call when logging was
// never enabled.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	logger = zerolog.Nop()
	if sink == nil {
		return nil
	}
	err := sink.Close()
	sink = nil
	return err
}
