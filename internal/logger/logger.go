// Package logger provides a configurable logger across the module.
//
// The default logger writes human-readable lines to stdout at info level.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger zerolog.Logger
)

func init() {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

// SetOutput changes the output of the global logger.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Output(w)
}

// SetLevel changes the minimum level of the global logger.
func SetLevel(level zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger = logger.Level(level)
}

// Set allows a user to replace the global logger.
func Set(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Disable the logger.
func Disable() {
	Set(zerolog.Nop())
}

// Logger returns a sub-logger of the module's global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
