// Package token defines the lexical token vocabulary produced by the
// scanner and consumed by the compiler's Pratt dispatch table.
package token

import "fmt"

// Kind classifies a Token. Values are assigned with iota rather than
// string literals (unlike nilan's TokenType) because the parse-rule
// table in the compiler package indexes directly by Kind.
type Kind int

const (
	// single-character punctuation
	LeftParen Kind = iota
	RightParen
	Minus
	Plus
	Slash
	Star
	Bang

	// one or two character operators
	BangEqual
	Equal
	EqualEqual
	Less
	LessEqual
	Greater
	GreaterEqual

	// literals
	Identifier
	String
	Number

	// keywords
	And
	Class
	Else
	False
	For
	Fun
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	// Error carries a borrowed diagnostic message instead of a source
	// slice; the compiler surfaces it directly as a diagnostic.
	Error

	EOF
)

var names = map[Kind]string{
	LeftParen:    "(",
	RightParen:   ")",
	Minus:        "-",
	Plus:         "+",
	Slash:        "/",
	Star:         "*",
	Bang:         "!",
	BangEqual:    "!=",
	Equal:        "=",
	EqualEqual:   "==",
	Less:         "<",
	LessEqual:    "<=",
	Greater:      ">",
	GreaterEqual: ">=",
	Identifier:   "IDENTIFIER",
	String:       "STRING",
	Number:       "NUMBER",
	And:          "and",
	Class:        "class",
	Else:         "else",
	False:        "false",
	For:          "for",
	Fun:          "fun",
	If:           "if",
	Nil:          "nil",
	Or:           "or",
	Print:        "print",
	Return:       "return",
	Super:        "super",
	This:         "this",
	True:         "true",
	Var:          "var",
	While:        "while",
	Error:        "ERROR",
	EOF:          "EOF",
}

func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps reserved identifier text to its keyword Kind. The
// scanner's hand-rolled trie (see scanner.identifierKind) reimplements
// this lookup as a first-letter switch plus a literal byte comparison
// of the remainder, matching the behavior this map describes without
// paying for a map lookup per identifier; Keywords exists so tests and
// tooling have a single place to assert the full keyword set against.
var Keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"for":    For,
	"fun":    Fun,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// Token is a lexical token. Start and Length index into the source
// buffer the scanner was constructed with, so a normal Token is a
// zero-copy view of the source; an Error token instead carries a
// borrowed diagnostic Message and no meaningful Start/Length slice.
type Token struct {
	Kind    Kind
	Start   int
	Length  int
	Line    int
	Message string
}

// Lexeme returns the token's source text. Callers must pass the exact
// source string the scanner that produced the token was constructed
// with, since Start/Length are offsets into that buffer.
func (t Token) Lexeme(source string) string {
	if t.Kind == Error {
		return t.Message
	}
	return source[t.Start : t.Start+t.Length]
}

func (t Token) String() string {
	return fmt.Sprintf("Token{%s}", t.Kind)
}
