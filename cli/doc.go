// Package cli contains the command line interface for dsys.
//
// # Usage
//
//	dsys [flags] <command> [args]
//
// Commands:
//   - fmt native|json|yaml [source...]: reformat documents
//   - get <source> <path> [--as type]: print the node at a dotted path
//   - tree [source...]: draw the structure of documents
//   - diff <a> <b>: compare two documents
//   - types: list registered value types
//   - init [--force]: write the current flag values to the config file
//
// # Configuration
//
// Flag defaults are read from the "config" block of a dsys document stored
// in the user configuration directory (for example ~/.config/dsys/config):
//
//	config {
//	  $string log-level debug
//	  $bool   comments  true
//	  enum { $int WIDTH 640 }
//	}
//
// Command-line flags override values from the file.
//
// # Document Options
//
//   - --enum, -e: NAME=VALUE pairs separated by ';', substituted into values
//     and bound in expressions
//   - --comments: skip // and /* */ comments
//   - --max-depth: maximum block nesting depth
//
// # Logging Options
//
//   - --log-level: minimum log level (trace, debug, info, warn, error)
//   - --log-format: output format (text, json)
//   - --log-color: colorize pretty output (auto, always, never)
//   - --log-time-layout: timestamp format (RFC3339, Kitchen, or a layout)
//   - --log-caller: include caller information
//   - --log-pretty: align and highlight text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o dsys .
//
//   - --pprof-mode: enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: profile output directory (default ~/.cache/dsys/pprof)
package cli
