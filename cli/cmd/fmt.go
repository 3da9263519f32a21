package cmd

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ardnew/dsys/ds"
)

// Fmt parses documents and writes them back out in the chosen format.
type Fmt struct {
	Native Native `cmd:"" default:"withargs" help:"Format as a dsys document (default)."`
	JSON   JSON   `cmd:""                    help:"Format as JSON."`
	YAML   YAML   `cmd:""                    help:"Format as YAML."`
}

// Native writes the document in its canonical text form.
type Native struct {
	Root   string `help:"Wrap the output in a block with this name." placeholder:"NAME"`
	Indent int    `default:"0" help:"Indent with this many spaces, or with tabs if 0." short:"i"`
	Sorted bool   `help:"Write keys in lexical order instead of document order."`
	Color  string `default:"auto" enum:"auto,always,never" help:"Highlight output (${enum})."`

	Source []string `arg:"" help:"Source input files or '-' for stdin." name:"source" optional:""`
}

// Run executes the fmt native command.
func (f *Native) Run(ctx context.Context) error {
	blk, err := readDocument(ctx, f.Source)
	if err != nil {
		return err
	}

	w := stdout(ctx)

	return blk.Format(w, f.options(useColor(f.Color, w))...)
}

func (f *Native) options(color bool) []ds.FormatOption {
	indent := "\t"
	if f.Indent > 0 {
		indent = strings.Repeat(" ", f.Indent)
	}

	opts := []ds.FormatOption{
		ds.WithIndent(indent),
		ds.WithSortedKeys(f.Sorted),
		ds.WithColor(color),
	}

	if f.Root != "" {
		opts = append(opts, ds.WithRoot(f.Root))
	}

	return opts
}

// JSON writes the document as a JSON object.
type JSON struct {
	Indent int `default:"2" help:"Indent width for JSON output; 0 writes one line." short:"i"`

	Source []string `arg:"" help:"Source input files or '-' for stdin." name:"source" optional:""`
}

// Run executes the fmt json command.
func (j *JSON) Run(ctx context.Context) error {
	blk, err := readDocument(ctx, j.Source)
	if err != nil {
		return err
	}

	err = blk.FormatJSON(ctx, stdout(ctx), j.Indent)
	if err != nil {
		return ds.WrapError(err).With(slog.String("format", "json"))
	}

	return nil
}

// YAML writes the document as YAML, keeping document order.
type YAML struct {
	Indent int `default:"2" help:"Indent width for YAML output; 0 writes flow style." short:"i"`

	Source []string `arg:"" help:"Source input files or '-' for stdin." name:"source" optional:""`
}

// Run executes the fmt yaml command.
func (y *YAML) Run(ctx context.Context) error {
	blk, err := readDocument(ctx, y.Source)
	if err != nil {
		return err
	}

	err = blk.FormatYAML(ctx, stdout(ctx), y.Indent)
	if err != nil {
		return ds.WrapError(err).With(slog.String("format", "yaml"))
	}

	return nil
}
