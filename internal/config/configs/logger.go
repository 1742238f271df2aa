package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger configures the process logger (LOG_*).
type Logger struct {
	// Level is a slog level name such as "debug" or "warn". Offsets like
	// "info+2" are accepted. Anything unparsable logs at info.
	Level string `env:"LEVEL" envDefault:"info"`
	// Format selects the encoding: "json" or "text".
	Format string `env:"FORMAT" envDefault:"text"`
	// Source adds the calling file and line to every record.
	Source bool `env:"SOURCE"`
}

// LevelValue parses Level. "warning" is accepted as an alias of "warn".
func (c Logger) LevelValue() slog.Level {
	name := strings.TrimSpace(c.Level)
	if strings.EqualFold(name, "warning") {
		name = "warn"
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// Handler returns a slog handler writing to w in the configured format.
// Formats other than json fall back to text.
func (c Logger) Handler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.LevelValue(), AddSource: c.Source}
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
