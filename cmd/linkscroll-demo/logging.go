package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const (
	logFileName = "linkscroll-demo.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging returns a file-backed logger when debug is set and a no-op
// logger otherwise. The log file rotates to .old once it exceeds maxLogSize.
// Logging never goes to the terminal: the screen belongs to tcell.
func setupLogging(debug bool, dir string) (zerolog.Logger, *os.File) {
	if !debug {
		return zerolog.Nop(), nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		return zerolog.Nop(), nil
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		_ = os.Rename(path, path+".old")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0664)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return zerolog.Nop(), nil
	}

	return zerolog.New(f).With().Timestamp().Logger(), f
}
