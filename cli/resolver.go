package cli

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/dsys/ds"
	"github.com/ardnew/dsys/log"
)

// resolve returns a [kong.ConfigurationLoader] reading flag values from the
// block called name in a dsys document.
//
// Entries are matched to flags by name, with underscores accepted in place of
// hyphens. Bool values resolve to booleans and every other value to its text
// form, which kong parses with the flag's own mapper. A nested block becomes
// a NAME=VALUE list for map flags.
//
//	config {
//	  // verbose
//	  $string log-level debug
//	  $bool   comments  true
//	  enum { $int WIDTH 640 $int HEIGHT 480 }
//	}
//
// Comments are allowed. A file that does not parse is logged and ignored.
func resolve(ctx context.Context, name string) kong.ConfigurationLoader {
	return func(r io.Reader) (kong.Resolver, error) {
		root, err := ds.ReadDocument(ctx, r, ds.WithComments(true))
		if err != nil {
			log.WarnContext(ctx, "ignoring configuration file",
				slog.Any("error", err),
			)

			return config{}, nil
		}

		blk := root.Block(name)
		if blk == nil {
			return config{}, nil
		}

		return configFrom(blk), nil
	}
}

// config implements [kong.Resolver] for dsys configuration blocks.
type config map[string]any

func configFrom(blk *ds.Block) config {
	cfg := make(config, blk.Len())

	for name, node := range blk.All() {
		switch n := node.(type) {
		case ds.Value:
			cfg[name] = flagValue(n)

		case *ds.Block:
			pairs := make([]string, 0, n.Len())

			for key, child := range n.All() {
				if v, ok := child.(ds.Value); ok {
					pairs = append(pairs, key+"="+v.String())
				}
			}

			cfg[name] = strings.Join(pairs, ";")
		}
	}

	return cfg
}

func flagValue(v ds.Value) any {
	if v.Tag() == ds.TagBool {
		return v.Bool()
	}

	return v.String()
}

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}
