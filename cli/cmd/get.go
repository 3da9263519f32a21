package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/dsys/ds"
)

// maxSuggestions limits the paths offered when a lookup fails.
const maxSuggestions = 3

// Get prints the node found at a dotted path.
type Get struct {
	As string `help:"Convert the value to this type before printing." placeholder:"TYPE"`

	Source string `arg:"" help:"Source input file or '-' for stdin."               name:"source"`
	Path   string `arg:"" help:"Dotted path to the node, e.g. render.light[1].color." name:"path"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) error {
	root, err := readDocument(ctx, []string{g.Source})
	if err != nil {
		return err
	}

	node, ok := root.Resolve(g.Path)
	if !ok {
		return ErrPathNotFound.With(
			slog.String("path", g.Path),
			slog.Any("suggestions", suggest(root, g.Path)),
		)
	}

	w := stdout(ctx)

	switch n := node.(type) {
	case ds.Value:
		if g.As != "" {
			n, err = convert(n, g.As)
			if err != nil {
				return err
			}
		}

		_, err = fmt.Fprintln(w, n.String())

		return err

	case *ds.Block:
		return n.Format(w)

	case *ds.Container:
		return writeContainer(w, lastSegment(g.Path), n)
	}

	return nil
}

func writeContainer(w io.Writer, name string, c *ds.Container) error {
	for _, blk := range c.Blocks() {
		if err := blk.Format(w, ds.WithRoot(name)); err != nil {
			return err
		}
	}

	return nil
}

// lastSegment returns the final name of a dotted path, without any index.
func lastSegment(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		path = path[i+1:]
	}

	if i := strings.IndexByte(path, '['); i > 0 {
		path = path[:i]
	}

	return path
}

// convert returns v as a Value of the named type using the lossy
// conversions every Value provides. User types reparse the text form.
func convert(v ds.Value, typeName string) (ds.Value, error) {
	f, ok := ds.Lookup(typeName)
	if !ok {
		return nil, ErrUnknownType.With(
			slog.String("type", typeName),
			slog.Any("types", ds.Types()),
		)
	}

	target := f(nil, v.String())

	switch target.Tag() {
	case ds.TagString:
		return ds.NewString(nil, v.String()), nil
	case ds.TagInt:
		return ds.NewInt(nil, v.Int()), nil
	case ds.TagFloat:
		return ds.NewFloat(nil, v.Float()), nil
	case ds.TagBool:
		return ds.NewBool(nil, v.Bool()), nil
	case ds.TagColor:
		return ds.NewColor(nil, v.Color()), nil
	case ds.TagVector2:
		return ds.NewVector2(nil, v.Vector2()), nil
	case ds.TagVector3:
		return ds.NewVector3(nil, v.Vector3()), nil
	case ds.TagVector4:
		return ds.NewVector4(nil, v.Vector4()), nil
	default:
		return target, nil
	}
}

// suggest returns the document paths closest to path.
func suggest(root *ds.Block, path string) []string {
	matches := fuzzy.Find(path, paths(root, "", nil))

	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}

	return out
}

// paths appends the path of every node below b to out, depth first.
func paths(b *ds.Block, prefix string, out []string) []string {
	for name, node := range b.All() {
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		out = append(out, path)

		switch n := node.(type) {
		case *ds.Block:
			out = paths(n, path, out)

		case *ds.Container:
			for i, blk := range n.Blocks() {
				out = paths(blk, fmt.Sprintf("%s[%d]", path, i), out)
			}
		}
	}

	return out
}
