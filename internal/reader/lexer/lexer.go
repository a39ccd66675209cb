// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for lispy.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/lispy/internal/common/struct/loc"
	"github.com/michaelmacinnis/lispy/internal/common/struct/token"
)

// Error token values.
const (
	MissingTag   = "atom has no tag"
	MissingText  = "sigil has no text"
	Unterminated = "unterminated string"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	state action // Current action.

	current loc.T // Location of the current byte.
	start   loc.T // Location of the current token's first byte.

	tokens []*token.T
}

// New creates a new T to scan text. Label can be a file name or other identifier.
func New(label, text string) *T {
	l := &T{
		bytes:   text,
		current: *loc.New(label),
	}

	l.start = l.current
	l.state = skipWhitespace

	return l
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil when the text is exhausted.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		if l.state == nil {
			return nil
		}

		l.state = l.state(l)
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	l.current.Advance(r)
	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	source := l.start

	l.tokens = append(l.tokens, token.New(c, v, &source))
	l.skip()
}

func (l *T) fail(msg string) action {
	l.emit(token.Error, msg)

	return nil
}

func (l *T) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.first = l.index
	l.start = l.current
}

// T states.

func afterColon(l *T) action {
	l.first = l.index

	if !word(l) {
		return l.fail(MissingTag)
	}

	l.emit(token.Atom, l.Text())

	return skipWhitespace
}

func afterTilde(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == '"':
			l.accept(r, w)

			return inSigilText
		case r == eof || delimiter(r):
			return l.fail(MissingText)
		}

		l.accept(r, w)
	}
}

func inComment(l *T) action {
	for {
		r := l.next()
		if r == '\n' || r == eof {
			l.skip()

			return skipWhitespace
		}
	}
}

func inSigilText(l *T) action {
	if !quoted(l) {
		return l.fail(Unterminated)
	}

	l.emit(token.Sigil, l.Text())

	return skipWhitespace
}

func inString(l *T) action {
	if !quoted(l) {
		return l.fail(Unterminated)
	}

	l.emit(token.String, l.Text())

	return skipWhitespace
}

func inWord(l *T) action {
	word(l)

	text := l.Text()
	if integer(text) {
		l.emit(token.Integer, text)
	} else {
		l.emit(token.Name, text)
	}

	return skipWhitespace
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case r == ',' || unicode.IsSpace(r):
			l.accept(r, w)
			l.skip()

			continue
		}

		l.accept(r, w)

		switch r {
		case '#':
			return inComment
		case '(', ')', '[', ']', '&':
			l.emit(token.Class(r), string(r))

			return skipWhitespace
		case ':':
			return afterColon
		case '"':
			return inString
		case '~':
			return afterTilde
		}

		return inWord
	}
}

// Helpers.

func delimiter(r rune) bool {
	return r == ',' || unicode.IsSpace(r) || strings.ContainsRune(`#()[]"`, r)
}

func integer(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}

	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// quoted consumes the rest of a double-quoted string. It returns false if
// the closing quote is missing.
func quoted(l *T) bool {
	for {
		switch l.next() {
		case '\\':
			if l.next() == eof {
				return false
			}
		case '"':
			return true
		case eof:
			return false
		}
	}
}

// word consumes a run of non-delimiters. It returns false if the run is empty.
func word(l *T) bool {
	start := l.index

	for {
		r, w := l.peek()
		if r == eof || delimiter(r) {
			return l.index > start
		}

		l.accept(r, w)
	}
}
