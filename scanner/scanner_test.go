package scanner

import (
	"testing"

	"loxlite/token"
)

func scanAll(t *testing.T, source string) []token.Token {
	t.Helper()
	s := New(source)
	var tokens []token.Token
	for {
		tok := s.ScanToken()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens
		}
	}
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func assertKinds(t *testing.T, got []token.Kind, want []token.Kind) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestOperatorDisambiguation(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []token.Kind
	}{
		{"bang", "!", []token.Kind{token.Bang, token.EOF}},
		{"bang equal", "!=", []token.Kind{token.BangEqual, token.EOF}},
		{"equal", "=", []token.Kind{token.Equal, token.EOF}},
		{"equal equal", "==", []token.Kind{token.EqualEqual, token.EOF}},
		{"less", "<", []token.Kind{token.Less, token.EOF}},
		{"less equal", "<=", []token.Kind{token.LessEqual, token.EOF}},
		{"greater", ">", []token.Kind{token.Greater, token.EOF}},
		{"greater equal", ">=", []token.Kind{token.GreaterEqual, token.EOF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertKinds(t, kinds(scanAll(t, tt.source)), tt.want)
		})
	}
}

func TestLineCommentsAreDiscarded(t *testing.T) {
	got := scanAll(t, "1 // a comment\n+ 2")
	assertKinds(t, kinds(got), []token.Kind{token.Number, token.Plus, token.Number, token.EOF})
}

func TestStringLiteralZeroCopy(t *testing.T) {
	source := `"hello"`
	s := New(source)
	tok := s.ScanToken()
	if tok.Kind != token.String {
		t.Fatalf("got kind %s, want String", tok.Kind)
	}
	if got := tok.Lexeme(source); got != `"hello"` {
		t.Errorf("lexeme = %q, want %q", got, `"hello"`)
	}
}

func TestUnterminatedStringIsErrorToken(t *testing.T) {
	s := New(`"unterminated`)
	tok := s.ScanToken()
	if tok.Kind != token.Error {
		t.Fatalf("got kind %s, want Error", tok.Kind)
	}
}

func TestNewlinesInsideStringsAdvanceLine(t *testing.T) {
	s := New("\"a\nb\"\nc")
	tok := s.ScanToken()
	if tok.Kind != token.String {
		t.Fatalf("got kind %s, want String", tok.Kind)
	}
	next := s.ScanToken()
	if next.Line != 3 {
		t.Errorf("line after multiline string = %d, want 3", next.Line)
	}
}

func TestKeywordsRecognized(t *testing.T) {
	for word, kind := range token.Keywords {
		got := scanAll(t, word)
		if len(got) != 2 || got[0].Kind != kind {
			t.Errorf("keyword %q: got %v, want [%s EOF]", word, kinds(got), kind)
		}
	}
}

func TestIdentifierNotKeyword(t *testing.T) {
	got := scanAll(t, "whilex forr andy")
	assertKinds(t, kinds(got), []token.Kind{token.Identifier, token.Identifier, token.Identifier, token.EOF})
}

func TestNumberLiterals(t *testing.T) {
	tests := []string{"123", "1.5", "0.25"}
	for _, src := range tests {
		tok := New(src).ScanToken()
		if tok.Kind != token.Number {
			t.Errorf("source %q: got kind %s, want Number", src, tok.Kind)
		}
		if tok.Lexeme(src) != src {
			t.Errorf("source %q: lexeme = %q", src, tok.Lexeme(src))
		}
	}
}

func TestRoundTripReconstructsNonWhitespace(t *testing.T) {
	source := "(1 + 2) * 3 // trailing comment"
	tokens := scanAll(t, source)
	var reconstructed string
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			continue
		}
		reconstructed += tok.Lexeme(source)
	}
	if want := "(1+2)*3"; reconstructed != want {
		t.Errorf("reconstructed = %q, want %q", reconstructed, want)
	}
}
