package ds

import (
	"bufio"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/fatih/color"
)

// FormatOption configures text serialization.
type FormatOption func(*formatter)

// WithIndent sets the string written once per nesting level. The default is a
// single tab.
func WithIndent(indent string) FormatOption {
	return func(f *formatter) {
		f.indent = indent
	}
}

// WithRoot wraps the output in a block named name.
func WithRoot(name string) FormatOption {
	return func(f *formatter) {
		f.root = &name
	}
}

// WithSortedKeys emits entries in lexical key order instead of insertion
// order.
func WithSortedKeys(sorted bool) FormatOption {
	return func(f *formatter) {
		f.sorted = sorted
	}
}

// WithColor highlights the output with ANSI escape sequences.
func WithColor(enable bool) FormatOption {
	return func(f *formatter) {
		f.colors = &palette{}
		if enable {
			f.colors = newPalette()
		}
	}
}

// Format writes the Block in the native text form.
//
// Each Block entry is written as "name" followed by its members in braces,
// each Value as $type "name" "value", and each Container as one such block
// per element, all under the same name.
func (b *Block) Format(w io.Writer, opts ...FormatOption) error {
	f := &formatter{indent: "\t", colors: &palette{}}
	for _, opt := range opts {
		opt(f)
	}

	bw := bufio.NewWriter(w)
	f.w = bw

	if f.root != nil {
		f.open(*f.root, 0)
		f.block(b, 1)
		f.close(0)
	} else {
		f.block(b, 0)
	}

	if f.err != nil {
		return f.err
	}

	return bw.Flush()
}

// ToText returns the Block in the native text form. See [Block.Format].
func (b *Block) ToText(opts ...FormatOption) (string, error) {
	var sb strings.Builder

	if err := b.Format(&sb, opts...); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatter writes the native text form. The first error sticks and ends the
// walk.
type formatter struct {
	w      *bufio.Writer
	indent string
	root   *string
	sorted bool
	colors *palette // zero palette paints nothing
	err    error
}

func (f *formatter) block(b *Block, depth int) {
	keys := b.keys
	if f.sorted {
		keys = slices.Sorted(slices.Values(keys))
	}

	for _, k := range keys {
		if f.err != nil {
			return
		}

		switch n := b.nodes[k].(type) {
		case Value:
			f.value(k, n, depth)
		case *Block:
			f.open(k, depth)
			f.block(n, depth+1)
			f.close(depth)
		case *Container:
			for i, elem := range n.blocks {
				if elem == nil {
					f.err = ErrInvalidStructure.With(
						slog.String("name", k),
						slog.Int("index", i),
						slog.String("error", "container element is not a block"),
					)

					return
				}

				f.open(k, depth)
				f.block(elem, depth+1)
				f.close(depth)
			}
		default:
			f.err = ErrInvalidStructure.With(
				slog.String("name", k),
				slog.String("type", resultTypeName(n)),
			)

			return
		}
	}
}

func (f *formatter) value(name string, v Value, depth int) {
	f.pad(depth)
	f.write(f.paint(f.colors.typeName, "$"+v.TypeName()))
	f.write(" ")
	f.write(f.paint(f.colors.name, quote(name)))
	f.write(" ")
	f.write(f.paint(f.colors.value(v.Tag()), quote(v.String())))
	f.write("\n")
}

func (f *formatter) open(name string, depth int) {
	f.pad(depth)
	f.write(f.paint(f.colors.block, quote(name)))
	f.write("\n")
	f.pad(depth)
	f.write(f.paint(f.colors.brace, "{"))
	f.write("\n")
}

func (f *formatter) close(depth int) {
	f.pad(depth)
	f.write(f.paint(f.colors.brace, "}"))
	f.write("\n")
}

func (f *formatter) pad(depth int) {
	for range depth {
		f.write(f.indent)
	}
}

func (f *formatter) write(s string) {
	if f.err != nil {
		return
	}

	_, f.err = f.w.WriteString(s)
}

func (f *formatter) paint(fn func(a ...any) string, s string) string {
	if fn == nil {
		return s
	}

	return fn(s)
}

// quote encloses s in double quotes, escaping quotes and backslashes.
func quote(s string) string {
	var sb strings.Builder

	sb.Grow(len(s) + 2)
	sb.WriteByte('"')

	for _, r := range s {
		if r == '"' || r == '\\' {
			sb.WriteByte('\\')
		}

		sb.WriteRune(r)
	}

	sb.WriteByte('"')

	return sb.String()
}

// palette holds the highlight functions used by the colored output.
type palette struct {
	typeName func(a ...any) string
	name     func(a ...any) string
	block    func(a ...any) string
	brace    func(a ...any) string
	str      func(a ...any) string
	number   func(a ...any) string
	boolean  func(a ...any) string
	vector   func(a ...any) string
}

func newPalette() *palette {
	return &palette{
		typeName: sprint(color.RGB(74, 92, 138)),
		name:     sprint(color.RGB(196, 96, 16)),
		block:    sprint(color.RGB(128, 168, 196)),
		brace:    sprint(color.RGB(196, 128, 128)),
		str:      sprint(color.RGB(8, 196, 16)),
		number:   sprint(color.RGB(128, 216, 236)),
		boolean:  sprint(color.New(color.FgCyan)),
		vector:   sprint(color.RGB(198, 198, 46)),
	}
}

// sprint returns the print function of c with terminal detection overridden.
func sprint(c *color.Color) func(a ...any) string {
	c.EnableColor()

	return c.SprintFunc()
}

func (p *palette) value(t TypeTag) func(a ...any) string {
	switch t {
	case TagInt, TagFloat:
		return p.number
	case TagBool:
		return p.boolean
	case TagColor, TagVector2, TagVector3, TagVector4:
		return p.vector
	default:
		return p.str
	}
}
