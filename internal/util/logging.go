// Package util provides common utilities including logging helpers,
// file system locations, and small generic helpers.
package util

import (
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// SetupLogging sends the standard logger to path. With an empty path log
// output is discarded, since anything written to the terminal would land on
// top of the dashboard. The returned closer is never nil.
func SetupLogging(path, prefix string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}
	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		log.SetOutput(io.Discard)
		return nopCloser{}, err
	}
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
