// ABOUTME: Debug logger for the TUI that writes to a file in the config dir
// ABOUTME: Keeps diagnostics off the terminal so they don't corrupt the display

package debuglog

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	mu      sync.Mutex
	logger  *logrus.Logger
	logFile *os.File
)

// Init opens debug.log inside the given config directory and routes all
// subsequent Log/Error/Warn calls there. An empty configDir disables logging.
func Init(configDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if configDir == "" {
		logger = nil
		return nil
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		logger = nil
		return err
	}

	logPath := filepath.Join(configDir, "debug.log")
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		logger = nil
		return err
	}

	l := logrus.New()
	l.SetOutput(f)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	logFile = f
	logger = l
	return nil
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logger = nil
}

// Log writes a debug message
func Log(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		return
	}
	logger.Debugf(format, args...)
}

// Error logs an error with context
func Error(context string, err error) {
	if err == nil {
		return
	}

	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return
	}
	logger.WithField("context", context).Error(err)
}

// Warn logs a warning message
func Warn(format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if logger == nil {
		return
	}
	logger.Warnf(format, args...)
}
