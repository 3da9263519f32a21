package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/dsys/ds"
	"github.com/ardnew/dsys/log"
	"github.com/ardnew/dsys/profile"
)

// configIndent is the indentation used in generated configuration files.
const configIndent = "  "

// Init generates a configuration file holding the current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file" short:"f"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) error {
	ktx := kongContextFrom(ctx)

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	_, err := os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(ErrFileExists)
	}

	file, err := os.Create(confPath)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}
	defer file.Close()

	err = buildConfig(ktx).Format(file, ds.WithIndent(configIndent))
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(ctx, "initialized configuration file",
		slog.String("path", confPath),
	)

	return nil
}

// buildConfig returns a document with one block, named by
// [ConfigIdentifier], holding the value of every visible flag.
func buildConfig(ktx *kong.Context) *ds.Block {
	root := ds.NewBlock(nil)
	cfg := root.AddBlock(ConfigIdentifier)

	skip := []string{"help", "version", profile.Tag}

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(skip, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		addFlag(cfg, flag.Name, ktx.FlagValue(flag))
	}

	return root
}

// addFlag stores a flag value in b. Empty values are left out so the
// flag's default applies when the file is read back.
func addFlag(b *ds.Block, name string, x any) {
	switch x := x.(type) {
	case nil:

	case string:
		if x != "" {
			b.SetString(name, x)
		}

	case map[string]string:
		if len(x) == 0 {
			return
		}

		m := b.AddBlock(name)
		for _, k := range slices.Sorted(maps.Keys(x)) {
			m.SetString(k, x[k])
		}

	case []string:
		if len(x) > 0 {
			b.SetString(name, strings.Join(x, ","))
		}

	default:
		if v, ok := ds.FromNative(b.Settings(), x); ok {
			b.AddChild(name, v)

			return
		}

		if s := fmt.Sprint(x); s != "" {
			b.SetString(name, s)
		}
	}
}
