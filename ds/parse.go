package ds

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/ardnew/dsys/log"
)

// LoadDocument opens the file at path and parses it as a document.
func LoadDocument(
	ctx context.Context,
	path string,
	opts ...Option,
) (*Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ErrOpen.Wrap(err).With(slog.String("path", path))
	}
	defer f.Close()

	return ReadDocument(ctx, f, opts...)
}

// ReadDocument parses a document from an io.Reader.
func ReadDocument(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*Block, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrRead.Wrap(err)
	}

	return parseDocument(ctx, data, opts...)
}

// ParseString parses a document from a string.
func ParseString(ctx context.Context, s string, opts ...Option) (*Block, error) {
	return parseDocument(ctx, []byte(s), opts...)
}

// parser holds the parser state.
type parser struct {
	*stream

	ctx      context.Context
	settings *Settings
	enums    map[string]string
	strip    bool // skip comments
	maxDepth int
	logger   log.Logger
}

func parseDocument(
	ctx context.Context,
	data []byte,
	opts ...Option,
) (*Block, error) {
	p := &parser{
		ctx:      ctx,
		maxDepth: DefaultMaxDepth,
	}

	for _, opt := range opts {
		opt(p)
	}

	p.stream = newStream(data, p.strip)
	p.settings = NewSettings(p.enums)

	p.logger.TraceContext(ctx, "parse start",
		slog.Int("length", len(data)),
		slog.Int("enums", len(p.enums)),
	)

	root, err := p.parseRoot()
	if err != nil {
		p.logger.DebugContext(ctx, "parse failed", slog.Any("error", err))

		return nil, err
	}

	p.logger.TraceContext(ctx, "parse complete",
		slog.Int("entries", root.Len()))

	return root, nil
}

// parseRoot parses members until end of input.
func (p *parser) parseRoot() (*Block, error) {
	p.skipSpace()

	if p.eof() {
		return nil, ErrEmptyDocument
	}

	root := NewBlock(p.settings)
	counter := 0

	for {
		more, err := p.parseMember(root, "", 0, &counter)
		if err != nil {
			return nil, err
		}

		if more {
			continue
		}

		if p.eof() {
			return root, nil
		}

		// The member loop only stops early at a closing brace.
		return nil, ErrUnmatchedBrace.WithPosition(p.position())
	}
}

// parseMember parses one member into blk. It reports false without consuming
// anything when it reaches '}' or end of input.
//
// blockType is the declared type of bare tokens in the enclosing typed block,
// or empty. counter is the next positional key at this level.
func (p *parser) parseMember(
	blk *Block,
	blockType string,
	depth int,
	counter *int,
) (bool, error) {
	p.skipSpace()

	if p.eof() || p.peek() == '}' {
		return false, nil
	}

	// Stray separator.
	if p.peek() == ',' {
		p.advance()

		return true, nil
	}

	pos := p.position()
	quoted := p.peek() == '"'

	tok, err := p.readToken()
	if err != nil {
		return false, err
	}

	if !quoted && len(tok) > 1 && tok[0] == '$' {
		return p.parseTyped(blk, strings.ToLower(tok[1:]), depth, pos)
	}

	m := p.tell()
	p.skipSpace()

	if !p.eof() && p.peek() == '{' {
		return p.parseBlock(blk, tok, blockType, depth, pos)
	}

	p.seek(m)

	typeName := blockType
	if typeName == "" {
		typeName = TypeString
	}

	key := strconv.Itoa(*counter)
	*counter++

	p.addValue(blk, typeName, key, p.settings.Substitute(tok), pos)
	p.skipSeparator()

	return true, nil
}

// parseTyped parses the remainder of a member that began with "$type": either
// a typed leaf "name value" or a typed block "name { ... }".
func (p *parser) parseTyped(
	blk *Block,
	typeName string,
	depth int,
	pos Position,
) (bool, error) {
	name, err := p.expectToken("name", typeName)
	if err != nil {
		return false, err
	}

	p.skipSpace()

	if !p.eof() && p.peek() == '{' {
		return p.parseBlock(blk, name, typeName, depth, pos)
	}

	raw, err := p.expectToken("value", name)
	if err != nil {
		return false, err
	}

	p.addValue(blk, typeName, name, p.settings.Substitute(raw), pos)
	p.skipSeparator()

	return true, nil
}

// parseBlock parses "{ member* }" at the cursor and stores the result in
// parent under name.
func (p *parser) parseBlock(
	parent *Block,
	name string,
	blockType string,
	depth int,
	pos Position,
) (bool, error) {
	if depth+1 > p.maxDepth {
		return false, ErrMaxDepth.WithPosition(pos).With(
			slog.String("name", name),
			slog.Int("max_depth", p.maxDepth),
		)
	}

	p.advance() // skip '{'

	sub := NewBlock(p.settings)
	counter := 0

	for {
		more, err := p.parseMember(sub, blockType, depth+1, &counter)
		if err != nil {
			if !p.recoverable(err) {
				return false, err
			}

			p.logger.WarnContext(p.ctx, "truncating malformed block",
				slog.String("name", name),
				slog.String("at", pos.String()),
				slog.Any("error", err),
			)

			p.skipBlock()
		}

		if !more || err != nil {
			break
		}
	}

	if p.eof() {
		return false, ErrUnexpectedEOF.WithPosition(pos).
			With(slog.String("name", name), slog.String("expected", "}"))
	}

	p.advance() // skip '}'

	parent.AddChild(name, sub)

	p.logger.TraceContext(p.ctx, "parsed block",
		slog.String("name", name),
		slog.String("type", blockType),
		slog.Int("entries", sub.Len()),
		slog.Int("depth", depth+1),
	)

	return true, nil
}

// recoverable reports whether a member error inside a nested block can be
// handled by truncating that block.
func (p *parser) recoverable(err error) bool {
	return errors.Is(err, ErrParse)
}

// skipBlock advances to the closing brace of the innermost open block,
// skipping nested blocks and quoted tokens. It stops at end of input.
func (p *parser) skipBlock() {
	depth := 0

	for !p.eof() {
		switch p.peek() {
		case '"':
			if _, err := p.readQuoted(); err != nil {
				return
			}

			continue
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return
			}

			depth--
		}

		p.advance()
	}
}

func (p *parser) addValue(blk *Block, typeName, name, raw string, pos Position) {
	if blk.AddValue(typeName, name, raw) == nil {
		p.logger.DebugContext(p.ctx, "ignoring value of unknown type",
			slog.String("type", typeName),
			slog.String("name", name),
			slog.String("at", pos.String()),
		)

		return
	}

	p.logger.TraceContext(p.ctx, "parsed value",
		slog.String("type", typeName),
		slog.String("name", name),
		slog.String("raw", raw),
	)
}

// expectToken skips whitespace and reads the token that must follow a typed
// declaration. what names the expected token and owner the preceding one,
// both for error reporting.
func (p *parser) expectToken(what, owner string) (string, error) {
	p.skipSpace()

	if p.eof() {
		return "", ErrUnexpectedEOF.WithPosition(p.position()).
			With(slog.String("expected", what), slog.String("after", owner))
	}

	if c := p.peek(); c == '}' || c == ',' || c == '{' {
		return "", ErrParse.WithPosition(p.position()).With(
			slog.String("expected", what),
			slog.String("after", owner),
			slog.String("found", string(c)),
		)
	}

	return p.readToken()
}

func (p *parser) skipSeparator() {
	m := p.tell()
	p.skipSpace()

	if !p.eof() && p.peek() == ',' {
		p.advance()

		return
	}

	p.seek(m)
}

// readToken reads a quoted or unquoted token at the cursor.
func (p *parser) readToken() (string, error) {
	if p.peek() == '"' {
		return p.readQuoted()
	}

	start := p.pos
	for !p.eof() && !p.atDelimiter() {
		p.advance()
	}

	return string(p.input[start:p.pos]), nil
}

func (p *parser) atDelimiter() bool {
	c := p.peek()

	return unicode.IsSpace(c) || c == '}' || c == ',' || p.atComment()
}

// readQuoted reads a token enclosed in double quotes. Within it, \" and \\
// stand for a literal quote and backslash; other backslashes are kept.
func (p *parser) readQuoted() (string, error) {
	pos := p.position()

	p.advance() // skip opening '"'

	var sb strings.Builder

	for !p.eof() {
		c := p.peek()

		switch c {
		case '"':
			p.advance()

			return sb.String(), nil
		case '\\':
			if next := p.peekN(2); next == `\"` || next == `\\` {
				p.advance()
				c = p.peek()
			}
		}

		sb.WriteRune(c)
		p.advance()
	}

	return "", ErrUnexpectedEOF.WithPosition(pos).
		With(slog.String("error", "unterminated string"))
}
