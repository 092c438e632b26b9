package lexer

import (
	"testing"

	"github.com/Sergeytikhonov7/Mython/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func collect(t *testing.T, source string) []token.Token {
	t.Helper()
	l, err := FromString(source)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	var out []token.Token
	for {
		cur := l.Current()
		out = append(out, cur)
		if cur.Kind == token.EOF {
			return out
		}
		l.Advance()
	}
}

// Scenario 1 of spec.md §8.
func TestIndentationScenario(t *testing.T) {
	source := "x = 1\n" +
		"if x:\n" +
		"  y = 2\n" +
		"  print y\n" +
		"print x\n"

	want := []token.Kind{
		token.Id, token.Char, token.Number, token.Newline,
		token.If, token.Id, token.Char, token.Newline,
		token.Indent,
		token.Id, token.Char, token.Number, token.Newline,
		token.Print, token.Id, token.Newline,
		token.Dedent,
		token.Print, token.Id, token.Newline,
		token.EOF,
	}

	got := kinds(collect(t, source))
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d\ngot: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestIndentEqualsDedentCount(t *testing.T) {
	source := "if a:\n  if b:\n    x = 1\n  y = 2\nz = 3\n"
	toks := collect(t, source)
	indents, dedents := 0, 0
	for _, tok := range toks {
		switch tok.Kind {
		case token.Indent:
			indents++
		case token.Dedent:
			dedents++
		}
	}
	if indents != dedents {
		t.Fatalf("indents=%d dedents=%d, want equal", indents, dedents)
	}
	if toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("last token = %v, want Eof", toks[len(toks)-1].Kind)
	}
}

func TestOddIndentIsError(t *testing.T) {
	_, err := FromString("if x:\n   y = 1\n")
	if err == nil {
		t.Fatal("expected lex error for odd indentation")
	}
}

// Scenario 2 of spec.md §8.
func TestStringEscape(t *testing.T) {
	toks := collect(t, `s = "a\tb\n"` + "\n")
	var str *token.Token
	for i := range toks {
		if toks[i].Kind == token.String {
			str = &toks[i]
		}
	}
	if str == nil {
		t.Fatal("no String token found")
	}
	if str.Str != "a\tb\n" {
		t.Fatalf("decoded string = %q, want %q", str.Str, "a\tb\n")
	}
}

func TestUnknownEscapeIsError(t *testing.T) {
	_, err := FromString(`s = "a\qb"` + "\n")
	if err == nil {
		t.Fatal("expected lex error for unknown escape")
	}
}

func TestBlankAndCommentLinesProduceNoTokens(t *testing.T) {
	toks := collect(t, "\n   \n# a comment\nx = 1\n")
	if len(toks) != 5 { // Id, Char, Number, Newline, Eof
		t.Fatalf("token count = %d, want 5: %v", len(toks), kinds(toks))
	}
}

func TestTrailingWhitespaceIgnored(t *testing.T) {
	toks := collect(t, "x = 1   \n")
	want := []token.Kind{token.Id, token.Char, token.Number, token.Newline, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTwoCharacterOperators(t *testing.T) {
	toks := collect(t, "a == b\na != b\na <= b\na >= b\n")
	var got []token.Kind
	for _, tok := range toks {
		if tok.Kind != token.Id && tok.Kind != token.Newline && tok.Kind != token.EOF {
			got = append(got, tok.Kind)
		}
	}
	want := []token.Kind{token.Eq, token.NotEq, token.LessOrEq, token.GreaterOrEq}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("operator %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNumberOverflowIsError(t *testing.T) {
	_, err := FromString("x = 99999999999999999999\n")
	if err == nil {
		t.Fatal("expected lex error for numeric overflow")
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks := collect(t, "class def return if else print and or not None True False foo\n")
	want := []token.Kind{
		token.Class, token.Def, token.Return, token.If, token.Else, token.Print,
		token.And, token.Or, token.Not, token.None, token.True, token.False, token.Id,
		token.Newline, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExpectAndAdvance(t *testing.T) {
	l, err := FromString("x = 1\n")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.Expect(token.Id); err != nil {
		t.Fatalf("Expect(Id): %v", err)
	}
	if _, err := l.ExpectNext(token.Char); err != nil {
		t.Fatalf("ExpectNext(Char): %v", err)
	}
	if _, err := l.ExpectNext(token.Number); err != nil {
		t.Fatalf("ExpectNext(Number): %v", err)
	}
	tok, err := l.ExpectNext(token.Newline)
	if err != nil {
		t.Fatalf("ExpectNext(Newline): %v", err)
	}
	if tok.Kind != token.Newline {
		t.Fatalf("got %v, want Newline", tok.Kind)
	}
	if _, err := l.Expect(token.Id); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestEofIsTerminalAndIdempotent(t *testing.T) {
	l, err := FromString("x = 1\n")
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		l.Advance()
	}
	if l.Current().Kind != token.EOF {
		t.Fatalf("expected Eof after draining, got %v", l.Current().Kind)
	}
}
