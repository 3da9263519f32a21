package cli

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/dsys/log"
)

// logFormat, logLevel, and logColor configure the logger as a side effect of
// parsing via encoding.TextUnmarshaler, early enough to affect error messages
// reported while kong parses the rest of the command line.
type (
	logFormat string
	logLevel  string
	logColor  string
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *logColor) UnmarshalText(text []byte) error {
	*c = logColor(text)
	if opt, ok := c.option(); ok {
		log.Config(opt)
	}

	return nil
}

// option returns the logger option forcing color on or off. It reports
// false for "auto", which leaves terminal detection to the logger.
func (c logColor) option() (log.Option, bool) {
	switch c {
	case "always":
		return log.WithColor(true), true
	case "never":
		return log.WithColor(false), true
	default:
		return nil, false
	}
}

type logConfig struct {
	Level      logLevel  `default:"info" enum:"${logLevelEnum}" help:"Set log level."`
	Format     logFormat `default:"text" enum:"${logFormatEnum}" help:"Set log format."`
	Color      logColor  `default:"auto" enum:"auto,always,never" help:"Colorize pretty output (${enum})."`
	TimeLayout string    `default:"RFC3339" help:"Set timestamp format."`
	Caller     bool      `default:"false" help:"Include caller information." negatable:""`
	Pretty     bool      `default:"true" help:"Align and highlight text output." negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevelEnum":  strings.Join(slices.Collect(log.Levels()), ","),
		"logFormatEnum": strings.Join(slices.Collect(log.Formats()), ","),
	}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start(ctx context.Context) {
	opts := []log.Option{
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	}

	if opt, ok := f.Color.option(); ok {
		opts = append(opts, opt)
	}

	log.Config(opts...)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("color", string(f.Color)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan performs an early pass over command-line arguments to extract and
// apply logger configuration before kong begins parsing, so the logger is
// configured regardless of flag position. Boolean flags never pass through
// UnmarshalText, so this is the only place they apply early.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			return
		}

		name, value, assigned := strings.Cut(args[i], "=")

		key, negated := strings.CutPrefix(name, "--no-log-")
		if !negated {
			var ok bool
			if key, ok = strings.CutPrefix(name, "--log-"); !ok {
				continue
			}
		}

		switch key {
		case "level", "format", "color":
			if negated {
				continue
			}

			// Non-boolean flag: consume next arg as value if not assigned
			if !assigned && i+1 < len(args) && args[i+1] != "" &&
				args[i+1][0] != '-' {
				i++
				value = args[i]
			}

			f.set(key, value)

		case "pretty", "caller":
			// Boolean flag: only parse value if explicitly assigned with =
			enable := true

			if assigned {
				v, err := strconv.ParseBool(value)
				if err != nil {
					continue
				}

				enable = v
			}

			f.toggle(key, enable != negated)
		}
	}
}

func (f *logConfig) set(key, value string) {
	switch key {
	case "level":
		_ = f.Level.UnmarshalText([]byte(value))
	case "format":
		_ = f.Format.UnmarshalText([]byte(value))
	case "color":
		_ = f.Color.UnmarshalText([]byte(value))
	}
}

func (f *logConfig) toggle(key string, enable bool) {
	switch key {
	case "pretty":
		f.Pretty = enable
		log.Config(log.WithPretty(enable))
	case "caller":
		f.Caller = enable
		log.Config(log.WithCaller(enable))
	}
}
