package plotfn

import (
	"strconv"
	"unicode"
)

// Token is a lexical unit of an expression.
type Token struct {
	// Kind is the token's category.
	Kind TokenKind
	// Text is the source text of the token. Whitespace tokens hold the single
	// whitespace rune; EOF has no text.
	Text string
	// Num is the value of a TokenNum. It is +Inf if the literal is too large
	// to represent.
	Num float64
	// Pos is the 1-based rune column of the start of the token.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// Precedence returns the binding power of an operator token. The second
// result is false for tokens which are not binary operators.
func (t Token) Precedence() (int, bool) {
	if t.Kind != TokenOp {
		return 0, false
	}
	switch t.Text {
	case "+", "-":
		return 10, true
	case "*", "/":
		return 20, true
	case "**":
		return 30, true
	default:
		return 0, false
	}
}

// TokenKind is the category of a token.
type TokenKind int

const (
	TokenNone TokenKind = iota
	// TokenWhitespace is a single whitespace rune. Runs are not coalesced.
	TokenWhitespace
	// TokenNum is a decimal number literal.
	TokenNum
	// TokenIdent is a run of ASCII letters.
	TokenIdent
	// TokenOp is an operator.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
	// TokenEOF indicates the end of the input. The lexer produces it forever
	// once the input is exhausted.
	TokenEOF
	// TokenOther is anything else: punctuation like the argument separator
	// and the factorial mark, a malformed number, or an invalid rune. The
	// parser decides which of these are errors.
	TokenOther
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=TokenKind -trimprefix=Token

// Operators lists the operator symbols, longest first so that ** is matched
// before *.
var Operators = []string{"**", "+", "-", "*", "/"}

// Lexer splits an expression into tokens.
type Lexer struct {
	src []rune
	i   int
}

// NewLexer creates a lexer over src.
func NewLexer(src string) *Lexer {
	return &Lexer{src: []rune(src)}
}

// Next scans the next token. Once the input is exhausted, every call returns
// a TokenEOF.
func (l *Lexer) Next() Token {
	tok, i := l.scan(l.i)
	l.i = i
	return tok
}

// String describes the lexer's input and position.
func (l *Lexer) String() string {
	return "expression: " + strconv.Quote(string(l.src)) + ", position: " + strconv.Itoa(l.i)
}

// scan reads the token starting at rune index i and returns it along with
// the index following it.
func (l *Lexer) scan(i int) (Token, int) {
	src := l.src
	tok := Token{Pos: i + 1}
	if i >= len(src) {
		tok.Kind = TokenEOF
		return tok, len(src)
	}
	r := src[i]
	switch {
	case unicode.IsSpace(r):
		tok.Kind = TokenWhitespace
		tok.Text = string(r)
		return tok, i + 1
	case isDigit(r):
		return l.scanNum(i)
	case isLetter(r):
		j := i + 1
		for j < len(src) && isLetter(src[j]) {
			j++
		}
		tok.Kind = TokenIdent
		tok.Text = string(src[i:j])
		return tok, j
	case r == '(':
		tok.Kind = TokenOpen
		tok.Text = "("
		return tok, i + 1
	case r == ')':
		tok.Kind = TokenClose
		tok.Text = ")"
		return tok, i + 1
	}
	for _, op := range Operators {
		if l.hasPrefix(i, op) {
			tok.Kind = TokenOp
			tok.Text = op
			return tok, i + len(op)
		}
	}
	tok.Kind = TokenOther
	tok.Text = string(r)
	return tok, i + 1
}

// scanNum scans a number literal starting at i, which must be a digit.
func (l *Lexer) scanNum(i int) (Token, int) {
	src := l.src
	tok := Token{Pos: i + 1}
	j := i + 1
	for j < len(src) && isDigit(src[j]) {
		j++
	}
	if j < len(src) && src[j] == '.' {
		j++
		if j >= len(src) || !isDigit(src[j]) {
			// A dot must be followed by digits.
			tok.Kind = TokenOther
			tok.Text = string(src[i:j])
			return tok, j
		}
		for j < len(src) && isDigit(src[j]) {
			j++
		}
	}
	tok.Kind = TokenNum
	tok.Text = string(src[i:j])
	// The text is digits with at most one interior dot, so the only possible
	// error is a range error, in which case ParseFloat gives ±Inf.
	tok.Num, _ = strconv.ParseFloat(tok.Text, 64)
	return tok, j
}

// hasPrefix reports whether the input at i begins with s, which must be
// ASCII.
func (l *Lexer) hasPrefix(i int, s string) bool {
	if len(l.src)-i < len(s) {
		return false
	}
	for k := 0; k < len(s); k++ {
		if l.src[i+k] != rune(s[k]) {
			return false
		}
	}
	return true
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}
