package ds

import (
	"unicode"
	"unicode/utf8"
)

// stream is a seekable cursor over document source that tracks line and
// column as it advances.
type stream struct {
	input    []byte
	pos      int
	line     int
	col      int
	comments bool // skip // and /* */ comments between tokens
}

// mark is a saved stream position that can be restored with seek.
type mark struct {
	pos, line, col int
}

func newStream(input []byte, comments bool) *stream {
	return &stream{input: input, line: 1, col: 1, comments: comments}
}

func (s *stream) peek() rune {
	if s.eof() {
		return 0
	}

	r, _ := utf8.DecodeRune(s.input[s.pos:])

	return r
}

func (s *stream) peekN(n int) string {
	if s.pos+n > len(s.input) {
		return string(s.input[s.pos:])
	}

	return string(s.input[s.pos : s.pos+n])
}

func (s *stream) advance() {
	if s.eof() {
		return
	}

	r, size := utf8.DecodeRune(s.input[s.pos:])

	s.pos += size
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
}

func (s *stream) eof() bool {
	return s.pos >= len(s.input)
}

func (s *stream) position() Position {
	return Position{
		Offset: s.pos,
		Line:   s.line,
		Column: s.col,
	}
}

func (s *stream) tell() mark { return mark{s.pos, s.line, s.col} }

func (s *stream) seek(m mark) { s.pos, s.line, s.col = m.pos, m.line, m.col }

// atComment reports whether a comment starts at the cursor.
func (s *stream) atComment() bool {
	if !s.comments || s.peek() != '/' {
		return false
	}

	next := s.peekN(2)

	return next == "//" || next == "/*"
}

// skipSpace skips whitespace and, when enabled, comments.
func (s *stream) skipSpace() {
	for !s.eof() {
		switch {
		case unicode.IsSpace(s.peek()):
			s.advance()
		case s.atComment() && s.peekN(2) == "//":
			s.skipLineComment()
		case s.atComment():
			s.skipBlockComment()
		default:
			return
		}
	}
}

func (s *stream) skipLineComment() {
	for !s.eof() && s.peek() != '\n' {
		s.advance()
	}
}

func (s *stream) skipBlockComment() {
	s.advance() // skip '/'
	s.advance() // skip '*'

	for !s.eof() {
		if s.peekN(2) == "*/" {
			s.advance()
			s.advance()

			return
		}

		s.advance()
	}
}
