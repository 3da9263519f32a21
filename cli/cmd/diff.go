package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/ardnew/dsys/ds"
)

// Diff compares two documents. Blocks compare without regard to key order;
// containers and values compare exactly. When the documents differ, it
// prints a line diff of their sorted text forms and fails.
type Diff struct {
	Color string `default:"auto" enum:"auto,always,never" help:"Highlight output (${enum})."`

	A string `arg:"" help:"First document."  name:"a"`
	B string `arg:"" help:"Second document." name:"b"`
}

// Run executes the diff command.
func (d *Diff) Run(ctx context.Context) error {
	a, err := readDocument(ctx, []string{d.A})
	if err != nil {
		return err
	}

	b, err := readDocument(ctx, []string{d.B})
	if err != nil {
		return err
	}

	if ds.Equal(a, b) {
		return nil
	}

	ta, err := a.ToText(ds.WithSortedKeys(true))
	if err != nil {
		return err
	}

	tb, err := b.ToText(ds.WithSortedKeys(true))
	if err != nil {
		return err
	}

	w := stdout(ctx)

	if err := writeDiff(w, ta, tb, useColor(d.Color, w)); err != nil {
		return err
	}

	return ErrDiffer.With(slog.String("a", d.A), slog.String("b", d.B))
}

// writeDiff writes a line diff of a and b, prefixing each line with '-',
// '+', or ' '.
func writeDiff(w io.Writer, a, b string, colored bool) error {
	dmp := diffmatchpatch.New()

	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)

	for _, c := range []*color.Color{del, ins} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	for _, df := range diffs {
		for line := range strings.Lines(df.Text) {
			line = strings.TrimSuffix(line, "\n")

			var err error

			switch df.Type {
			case diffmatchpatch.DiffDelete:
				_, err = del.Fprintln(w, "-"+line)
			case diffmatchpatch.DiffInsert:
				_, err = ins.Fprintln(w, "+"+line)
			default:
				_, err = fmt.Fprintln(w, " "+line)
			}

			if err != nil {
				return err
			}
		}
	}

	return nil
}
