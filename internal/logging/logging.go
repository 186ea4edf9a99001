// Package logging builds the diagnostic logger shared by the game loops.
// The engine packages never log; only the presentation layer does.
package logging

import (
	"fmt"
	"io"
	"strings"

	hclog "github.com/hashicorp/go-hclog"
)

// Name is the root logger name.
const Name = "quickmaths"

// DefaultLevel keeps the terminal quiet unless something goes wrong.
const DefaultLevel = "warn"

// New returns a leveled logger writing to w. An empty level means
// DefaultLevel; "off" discards everything.
func New(level string, w io.Writer) (hclog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if lvl == hclog.Off {
		w = io.Discard
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   Name,
		Output: w,
		Level:  lvl,
	}), nil
}

// Discard returns a logger that drops everything. Tests use it.
func Discard() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel})
}

// ParseLevel maps a level name to an hclog level.
func ParseLevel(level string) (hclog.Level, error) {
	s := strings.TrimSpace(strings.ToLower(level))
	if s == "" {
		s = DefaultLevel
	}
	lvl := hclog.LevelFromString(s)
	if lvl == hclog.NoLevel {
		return hclog.NoLevel, fmt.Errorf("unknown log level %q", level)
	}
	return lvl, nil
}
