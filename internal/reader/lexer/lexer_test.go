package lexer

import (
	"testing"

	"github.com/michaelmacinnis/lispy/internal/common/struct/loc"
	"github.com/michaelmacinnis/lispy/internal/common/struct/token"
)

func TestAtoms(t *testing.T) {
	h := setup(t, "Atoms")

	h.scan(":ipsum :hello! :True",
		h.other(token.Atom, "ipsum", 1),
		h.other(token.Atom, "hello!", 8),
		h.other(token.Atom, "True", 16),
		nil,
	)
}

func TestCommasAreWhitespace(t *testing.T) {
	h := setup(t, "CommasAreWhitespace")

	h.scan("[white , ,space]",
		h.literal("[", 1),
		h.other(token.Name, "white", 2),
		h.other(token.Name, "space", 11),
		h.literal("]", 16),
		nil,
	)
}

func TestComment(t *testing.T) {
	h := setup(t, "Comment")

	h.scan("# This is a comment\n(hello world)",
		h.newline(),
		h.literal("(", 1),
		h.other(token.Name, "hello", 2),
		h.other(token.Name, "world", 8),
		h.literal(")", 13),
		nil,
	)
}

func TestIntegers(t *testing.T) {
	h := setup(t, "Integers")

	h.scan("42 -372 +7 - -x +>",
		h.other(token.Integer, "42", 1),
		h.other(token.Integer, "-372", 4),
		h.other(token.Integer, "+7", 9),
		h.other(token.Name, "-", 12),
		h.other(token.Name, "-x", 14),
		h.other(token.Name, "+>", 17),
		nil,
	)
}

func TestNames(t *testing.T) {
	h := setup(t, "Names")

	h.scan("sigil<!> print! emp? dolor-sit",
		h.other(token.Name, "sigil<!>", 1),
		h.other(token.Name, "print!", 10),
		h.other(token.Name, "emp?", 17),
		h.other(token.Name, "dolor-sit", 22),
		nil,
	)
}

func TestQuoted(t *testing.T) {
	h := setup(t, "Quoted")

	h.scan("&ex &[pression]",
		h.literal("&", 1),
		h.other(token.Name, "ex", 2),
		h.literal("&", 5),
		h.literal("[", 6),
		h.other(token.Name, "pression", 7),
		h.literal("]", 15),
		nil,
	)
}

func TestSigil(t *testing.T) {
	h := setup(t, "Sigil")

	h.scan(`(sigils ~r"are cool")`,
		h.literal("(", 1),
		h.other(token.Name, "sigils", 2),
		h.other(token.Sigil, `~r"are cool"`, 9),
		h.literal(")", 21),
		nil,
	)
}

func TestStrings(t *testing.T) {
	h := setup(t, "Strings")

	h.scan(`"work fine" "say \"hi\""`,
		h.other(token.String, `"work fine"`, 1),
		h.other(token.String, `"say \"hi\""`, 13),
		nil,
	)
}

func TestErrors(t *testing.T) {
	for _, c := range []struct {
		text string
		msg  string
	}{
		{`"open`, Unterminated},
		{`~f"open`, Unterminated},
		{`~f `, MissingText},
		{`: x`, MissingTag},
	} {
		l := New("Errors", c.text)

		tok := l.Token()
		if !tok.Is(token.Error) || tok.Value() != c.msg {
			t.Fatalf("%q: expected error %q, got %v", c.text, c.msg, tok)
		}

		if tok := l.Token(); tok != nil {
			t.Fatalf("%q: expected no tokens after an error, got %v", c.text, tok)
		}
	}
}

type harness struct {
	label string
	lexer *T
	line  int
	t     *testing.T
}

var skip = token.New(token.Error, "", loc.New("")) //nolint:gochecknoglobals

func setup(t *testing.T, label string) *harness {
	return &harness{
		label: label,
		line:  1,
		t:     t,
	}
}

func (h *harness) expect(tokens ...*token.T) {
	for _, e := range tokens {
		if e == skip {
			continue
		}

		a := h.lexer.Token()

		switch {
		case a == nil && e == nil:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case a.Class() != e.Class() || a.Value() != e.Value() || *a.Source() != *e.Source():
			h.t.Fatalf("Expected %v; got %v", e, a)
		}
	}
}

func (h *harness) literal(s string, char int) *token.T {
	return h.other(token.Class(s[0]), s, char)
}

func (h *harness) newline() *token.T {
	h.line++

	return skip
}

func (h *harness) other(c token.Class, s string, char int) *token.T {
	return token.New(c, s, &loc.T{Char: char, Line: h.line, Name: h.label})
}

func (h *harness) scan(s string, tokens ...*token.T) {
	h.lexer = New(h.label, s)
	h.expect(tokens...)
}
