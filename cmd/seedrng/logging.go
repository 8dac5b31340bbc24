package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// setupLogger configures a charmbracelet logger writing to w. debug forces
// the debug level regardless of level.
func setupLogger(w io.Writer, level string, debug bool) (*log.Logger, error) {
	lvl := log.DebugLevel
	if !debug {
		var err error
		lvl, err = log.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "seedrng",
	}), nil
}
