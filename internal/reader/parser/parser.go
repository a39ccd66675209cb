// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for lispy.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/michaelmacinnis/adapted"

	"github.com/michaelmacinnis/lispy/internal/common/interface/entity"
	"github.com/michaelmacinnis/lispy/internal/common/struct/token"
	"github.com/michaelmacinnis/lispy/internal/common/type/atom"
	"github.com/michaelmacinnis/lispy/internal/common/type/integer"
	"github.com/michaelmacinnis/lispy/internal/common/type/quoted"
	"github.com/michaelmacinnis/lispy/internal/common/type/sexpr"
	"github.com/michaelmacinnis/lispy/internal/common/type/sigil"
	"github.com/michaelmacinnis/lispy/internal/common/type/str"
	"github.com/michaelmacinnis/lispy/internal/common/type/sym"
	"github.com/michaelmacinnis/lispy/internal/common/type/vector"
	"github.com/michaelmacinnis/lispy/internal/reader/lexer"
)

//nolint:gochecknoglobals
var (
	// ErrIncomplete is returned when the text ends inside an expression.
	ErrIncomplete = errors.New("incomplete expression")

	// ErrSyntax is returned for text that is not valid lispy.
	ErrSyntax = errors.New("syntax error")
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser that reads tokens by calling item.
func New(item func() *token.T) *T {
	return &T{item: item}
}

// Parse consumes tokens until there are no more and returns the
// expressions they form.
func (p *T) Parse() (es []entity.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(error)
		if !ok {
			panic(r)
		}

		es = nil
		err = e
	}()

	for p.peek() != nil {
		es = append(es, p.expression())
	}

	return es, nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic(errors.New("nothing to consume"))
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) expression() entity.I {
	t := p.consume()

	switch t.Class() {
	case '&':
		if p.peek() == nil {
			panic(fmt.Errorf("%w: nothing quoted at %s", ErrIncomplete, t.Source()))
		}

		return quoted.New(p.expression())

	case '(':
		es := p.sequence(')')
		if len(es) == 0 {
			panic(fmt.Errorf("%w: %s: empty expression", ErrSyntax, t.Source()))
		}

		return sexpr.New(es[0], es[1:]...)

	case '[':
		return vector.New(p.sequence(']')...)

	case token.Atom:
		return atom.New(t.Value())

	case token.Integer:
		i, ok := integer.Parse(strings.TrimPrefix(t.Value(), "+"))
		if !ok {
			panic(fmt.Errorf("%w: %s: invalid integer %q", ErrSyntax, t.Source(), t.Value()))
		}

		return i

	case token.Name:
		return sym.Token(t)

	case token.Sigil:
		v := t.Value()
		n := strings.IndexByte(v, '"')

		return sigil.New(v[1:n], unescape(t, v[n+1:len(v)-1]))

	case token.String:
		v := t.Value()

		return str.New(unescape(t, v[1:len(v)-1]))

	case token.Error:
		if t.Value() == lexer.Unterminated {
			panic(fmt.Errorf("%w: %s: %s", ErrIncomplete, t.Source(), t.Value()))
		}

		panic(fmt.Errorf("%w: %s: %s", ErrSyntax, t.Source(), t.Value()))
	}

	panic(fmt.Errorf("%w: %s: unexpected '%s'", ErrSyntax, t.Source(), t.Value()))
}

func (p *T) peek() *token.T {
	if p.ahead == 0 {
		p.token = p.item()
		p.ahead = 1
	}

	return p.token
}

// sequence parses expressions up to the closing token c.
func (p *T) sequence(c token.Class) []entity.I {
	es := []entity.I{}

	for {
		t := p.peek()
		if t == nil {
			panic(fmt.Errorf("%w: missing '%c'", ErrIncomplete, c))
		}

		if t.Is(c) {
			p.consume()

			return es
		}

		es = append(es, p.expression())
	}
}

func unescape(t *token.T, s string) string {
	a, err := adapted.ActualBytes(s)
	if err != nil {
		panic(fmt.Errorf("%w: %s: %v", ErrSyntax, t.Source(), err))
	}

	return a
}
