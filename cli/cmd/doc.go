// Package cmd implements the dsys subcommands.
//
// Commands read documents from the sources named on the command line, with
// "-" standing for stdin. Multiple sources are concatenated in order, so later
// files override values set by earlier ones.
package cmd

var (
	// CacheIdentifier is the kong variable identifier containing the path to
	// the runtime cache directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable identifier containing the path to
	// the configuration file. It is also the name of the block in that file
	// holding flag values.
	ConfigIdentifier = "config"
)
