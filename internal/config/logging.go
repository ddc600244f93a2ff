package config

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// NewLogger builds the logger described by s. Output goes to LOG_FILE when
// set and to fallback otherwise; terminal games pass io.Discard so logs
// never land on the game screen. The returned close func releases the file.
func (s Settings) NewLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if s.LogLevel != "" {
		lvl, err := log.ParseLevel(s.LogLevel)
		if err != nil {
			return nil, nil, fmt.Errorf("LOG_LEVEL: %w", err)
		}
		level = lvl
	}

	out := fallback
	closeFn := func() error { return nil }
	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}
