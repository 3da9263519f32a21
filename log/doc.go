// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// The package offers configurable time formatting, caller information,
// and output formats that are applied at logger creation time using
// functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Info("document loaded", slog.String("path", path))
//	logger.Error("parse failed", slog.Any("error", err))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithTimeLayout("kitchen"),
//		log.WithCaller(true))
//
// Text output is "pretty" by default: values are unquoted and, when the
// output is a terminal, colored. [WithPretty] and [WithColor] override this.
//
// # Zero Value
//
// A zero [Logger] is valid and discards everything. Libraries accept a Logger
// option and log unconditionally; nothing is written unless the caller
// supplies a real one.
//
// # Package Logger
//
// The package-level functions ([Info], [DebugContext], ...) write through a
// default logger on standard error, which [Config] reconfigures.
//
// # Supported Levels
//
// [LevelTrace], [LevelDebug], [LevelInfo], [LevelWarn] and [LevelError].
// Trace sits below slog's Debug and is printed as TRACE.
package log
