package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

// prettyHandler writes one line per record:
//
//	TIME LEVEL message key=value ...
//
// Values are not quoted, and when colors are enabled keys are dimmed and
// values are colored by kind.
type prettyHandler struct {
	opts       slog.HandlerOptions
	formatTime FormatTime
	paint      *painter
	mu         *sync.Mutex
	w          io.Writer
	prefix     string // group prefix for keys, with trailing '.'
	attrs      []byte // preformatted attributes from WithAttrs
}

func newPrettyHandler(
	w io.Writer,
	opts *slog.HandlerOptions,
	formatTime FormatTime,
	colored bool,
) *prettyHandler {
	return &prettyHandler{
		opts:       *opts,
		formatTime: formatTime,
		paint:      newPainter(colored),
		mu:         &sync.Mutex{},
		w:          w,
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	floor := slog.LevelInfo
	if h.opts.Level != nil {
		floor = h.opts.Level.Level()
	}

	return level >= floor
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() && h.formatTime != nil {
		if ts := h.formatTime(r.Time); ts != "" {
			buf.WriteString(h.paint.time(ts))
			buf.WriteByte(' ')
		}
	}

	buf.WriteString(h.paint.level(r.Level))

	if h.opts.AddSource {
		if src := r.Source(); src != nil && src.File != "" {
			buf.WriteByte(' ')
			buf.WriteString(h.paint.key(
				filepath.Base(src.File) + ":" + strconv.Itoa(src.Line),
			))
		}
	}

	buf.WriteByte(' ')
	buf.WriteString(r.Message)
	buf.Write(h.attrs)

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.prefix, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	buf := bytes.NewBuffer(bytes.Clone(h.attrs))
	for _, a := range attrs {
		h.writeAttr(buf, h.prefix, a)
	}

	cpy := *h
	cpy.attrs = buf.Bytes()

	return &cpy
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	cpy := *h
	cpy.prefix = h.prefix + name + "."

	return &cpy
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	if h.opts.ReplaceAttr != nil && a.Value.Kind() != slog.KindGroup {
		a = h.opts.ReplaceAttr(nil, a)
	}

	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		group := prefix
		if a.Key != "" {
			group += a.Key + "."
		}

		for _, ga := range a.Value.Group() {
			h.writeAttr(buf, group, ga)
		}

		return
	}

	buf.WriteByte(' ')
	buf.WriteString(h.paint.key(prefix + a.Key + "="))
	buf.WriteString(h.paint.value(a.Value))
}

// painter colors the parts of a pretty record. A painter with colors disabled
// returns its input unchanged.
type painter struct {
	dim, str, num, yes, no, other *color.Color

	levels map[slog.Level]*color.Color
}

func newPainter(enabled bool) *painter {
	p := &painter{
		dim:     color.New(color.FgHiBlack),
		str:     color.New(color.FgCyan),
		num:     color.New(color.FgYellow),
		yes:     color.New(color.FgGreen),
		no:      color.New(color.FgRed),
		other:   color.New(color.FgMagenta),
		levels: map[slog.Level]*color.Color{
			slog.Level(LevelTrace): color.New(color.FgHiBlack),
			slog.LevelDebug:        color.New(color.FgBlue),
			slog.LevelInfo:         color.New(color.FgGreen),
			slog.LevelWarn:         color.New(color.FgYellow),
			slog.LevelError:        color.New(color.FgRed, color.Bold),
		},
	}

	for _, c := range append(
		[]*color.Color{p.dim, p.str, p.num, p.yes, p.no, p.other},
		p.levelColors()...,
	) {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

func (p *painter) levelColors() []*color.Color {
	out := make([]*color.Color, 0, len(p.levels))
	for _, c := range p.levels {
		out = append(out, c)
	}

	return out
}

func (p *painter) time(s string) string { return p.dim.Sprint(s) }

func (p *painter) key(s string) string { return p.dim.Sprint(s) }

func (p *painter) level(l slog.Level) string {
	name := fmt.Sprintf("%-5s", strings.ToUpper(Level(l).String()))

	c := p.levels[slog.LevelError]

	switch {
	case l < slog.LevelDebug:
		c = p.levels[slog.Level(LevelTrace)]
	case l < slog.LevelInfo:
		c = p.levels[slog.LevelDebug]
	case l < slog.LevelWarn:
		c = p.levels[slog.LevelInfo]
	case l < slog.LevelError:
		c = p.levels[slog.LevelWarn]
	}

	return c.Sprint(name)
}

func (p *painter) value(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return p.str.Sprint(v.String())

	case slog.KindInt64, slog.KindUint64, slog.KindFloat64:
		return p.num.Sprint(v.String())

	case slog.KindBool:
		if v.Bool() {
			return p.yes.Sprint("true")
		}

		return p.no.Sprint("false")

	case slog.KindDuration:
		return p.other.Sprint(v.Duration().String())

	case slog.KindTime:
		return p.other.Sprint(v.Time().Format(time.RFC3339))

	default:
		if err, ok := v.Any().(error); ok {
			return p.no.Sprint(err.Error())
		}

		return p.str.Sprint(v.String())
	}
}
