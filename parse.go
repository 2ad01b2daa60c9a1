package plotfn

import (
	"math"
	"strings"
)

// Expr     = Sub EOF
// Sub      = Primary { binop Primary }
// Primary  = num | num '!' | 'x' | const | '-' Primary | '(' Sub ')' | Call
// Call     = func1 '(' Sub ')' | func2 '(' Sub ',' Sub ')'
// binop    = '+' | '-' | '*' | '/' | '**'
// const    = 'e' | 'pi'

// Expr is a parsed expression of the variable x. An Expr is immutable, so it
// is safe to evaluate concurrently.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// String renders the expression in a form that parses to the same value under
// any parse options. For an expression parsed with the default options,
// parsing the result with the default options gives the same tree.
func (e *Expr) String() string {
	return e.n.String()
}

// Clone returns a deep copy of the expression.
func (e *Expr) Clone() *Expr {
	return &Expr{n: e.n.clone()}
}

// Depth returns the height of the expression tree.
func (e *Expr) Depth() int {
	return e.n.depth()
}

// Size returns the number of nodes in the expression tree.
func (e *Expr) Size() int {
	return e.n.size()
}

// Parse parses an expression of x. The entire input must be a single
// expression. The given options are applied in order. On error, the result
// is nil and the error implements InputError.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	return NewParser(src, opts...).Parse()
}

// Parser is a recursive descent parser with one token of lookahead.
type Parser struct {
	lex *Lexer
	// cur is the lookahead token. It is never whitespace.
	cur Token
	ctx parsectx
}

// NewParser creates a parser over src and reads the first token.
func NewParser(src string, opts ...ParseOption) *Parser {
	p := Parser{
		lex: NewLexer(src),
		ctx: parsectx{funcs: globalfuncs},
	}
	for _, opt := range opts {
		p.ctx = opt.parseOption(p.ctx)
	}
	p.advance()
	return &p
}

// Current returns the lookahead token. After Parse returns, it is the first
// token that was not consumed, which is EOF after a successful parse.
func (p *Parser) Current() Token {
	return p.cur
}

// Parse parses a complete expression.
func (p *Parser) Parse() (*Expr, error) {
	n, err := p.parseSub()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != TokenEOF {
		return nil, itShouldNotHaveEndedThisWay(p.cur)
	}
	return &Expr{n: n}, nil
}

// advance moves the lookahead to the next token that is not whitespace.
func (p *Parser) advance() {
	for {
		p.cur = p.lex.Next()
		if p.cur.Kind != TokenWhitespace {
			return
		}
	}
}

// parseSub parses a primary followed by any number of binary operations.
func (p *Parser) parseSub() (*node, error) {
	lhs, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseOpRHS(lhs, 0)
}

// parseOpRHS extends lhs with binary operations whose precedence is at least
// min. An operation binds its right operand more tightly only when the next
// operator binds more than the current one, so operators of equal
// precedence associate to the left unless they are right-associative.
func (p *Parser) parseOpRHS(lhs *node, min int) (*node, error) {
	for {
		op, ok := p.binop(p.cur)
		if !ok || op.prec < min {
			return lhs, nil
		}
		p.advance()
		rhs, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		if next, ok := p.binop(p.cur); ok && next.moreBinding(op) {
			until := op.prec + 1
			if next.prec == op.prec {
				until = op.prec
			}
			rhs, err = p.parseOpRHS(rhs, until)
			if err != nil {
				return nil, err
			}
		}
		lhs = &node{kind: op.op, left: lhs, right: rhs}
	}
}

// parsePrimary parses a single operand.
func (p *Parser) parsePrimary() (*node, error) {
	tok := p.cur
	switch tok.Kind {
	case TokenNum:
		return p.parseNum()
	case TokenIdent:
		return p.parseIdent()
	case TokenOp:
		return p.parseUnary()
	case TokenOpen:
		return p.parseParen()
	case TokenClose:
		return nil, &EmptyExpressionError{Col: tok.Pos, End: tok.Text}
	case TokenEOF:
		return nil, &EmptyExpressionError{Col: tok.Pos}
	case TokenOther:
		switch {
		case tok.Text == ",":
			return nil, &EmptyExpressionError{Col: tok.Pos, End: tok.Text}
		case isDigit(rune(tok.Text[0])):
			return nil, &LiteralError{Col: tok.Pos, Text: tok.Text, Reason: "no digits after decimal point"}
		default:
			return nil, &TokenError{Col: tok.Pos, Token: tok.Text}
		}
	default:
		panic("plotfn: unknown token: " + tok.String())
	}
}

// parseNum parses a number literal or a factorial.
func (p *Parser) parseNum() (*node, error) {
	tok := p.cur
	if math.IsInf(tok.Num, 0) {
		return nil, &LiteralError{Col: tok.Pos, Text: tok.Text, Reason: "out of range"}
	}
	p.advance()
	if p.cur.Kind != TokenOther || p.cur.Text != "!" {
		return &node{kind: nodeNum, num: tok.Num}, nil
	}
	switch {
	case strings.ContainsRune(tok.Text, '.'):
		return nil, &LiteralError{Col: tok.Pos, Text: tok.Text + "!", Reason: "factorial of non-integer"}
	case tok.Num > MaxFactorial:
		return nil, &LiteralError{Col: tok.Pos, Text: tok.Text + "!", Reason: "factorial out of range"}
	}
	p.advance()
	return &node{kind: nodeFact, num: tok.Num}, nil
}

// parseIdent parses the variable, a constant, or a function call.
func (p *Parser) parseIdent() (*node, error) {
	tok := p.cur
	if tok.Text == "x" {
		p.advance()
		return &node{kind: nodeVar}, nil
	}
	if c, ok := constants[tok.Text]; ok {
		p.advance()
		return &node{kind: nodeConst, fn: c}, nil
	}
	fn, ok := p.ctx.funcs[tok.Text]
	if !ok {
		return nil, &NameError{Col: tok.Pos, Name: tok.Text}
	}
	return p.parseCall(fn)
}

// parseCall parses the parenthesized argument list following a function
// name, which is the current token.
func (p *Parser) parseCall(fn funcID) (*node, error) {
	name := p.cur.Text
	p.advance()
	if p.cur.Kind != TokenOpen {
		return nil, &CallError{Col: p.cur.Pos, Func: name, Len: fn.arity()}
	}
	p.advance()
	arg, err := p.parseSub()
	if err != nil {
		return nil, err
	}
	n := &node{kind: nodeCall, fn: fn, left: arg}
	if fn.arity() == 2 {
		if !p.atComma() {
			if p.cur.Kind == TokenClose {
				return nil, &CallError{Col: p.cur.Pos, Func: name, Len: 2}
			}
			return nil, p.unclosed()
		}
		p.advance()
		arg2, err := p.parseSub()
		if err != nil {
			return nil, err
		}
		n = &node{kind: nodeCall2, fn: fn, left: arg, right: arg2}
	}
	if p.cur.Kind != TokenClose {
		if p.atComma() {
			return nil, &CallError{Col: p.cur.Pos, Func: name, Len: fn.arity()}
		}
		return nil, p.unclosed()
	}
	p.advance()
	return n, nil
}

// parseUnary parses a negation.
func (p *Parser) parseUnary() (*node, error) {
	tok := p.cur
	if tok.Text != "-" {
		return nil, &OperatorError{Col: tok.Pos, Operator: tok.Text, Unary: true}
	}
	p.advance()
	n, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return &node{kind: nodeNeg, left: n}, nil
}

// parseParen parses a parenthesized subexpression. The parentheses are kept
// in the tree so that String reproduces the grouping.
func (p *Parser) parseParen() (*node, error) {
	p.advance()
	n, err := p.parseSub()
	if err != nil {
		return nil, err
	}
	if p.cur.Kind != TokenClose {
		return nil, p.unclosed()
	}
	p.advance()
	return &node{kind: nodeParen, left: n}, nil
}

func (p *Parser) atComma() bool {
	return p.cur.Kind == TokenOther && p.cur.Text == ","
}

// unclosed returns an error for a missing close parenthesis at the current
// token.
func (p *Parser) unclosed() error {
	switch {
	case p.cur.Kind == TokenEOF:
		return &BracketError{Col: p.cur.Pos, Open: true}
	case p.atComma():
		return &SeparatorError{Col: p.cur.Pos, Sep: p.cur.Text}
	default:
		return &BracketError{Col: p.cur.Pos, Open: true, Found: p.cur.Text}
	}
}

// itShouldNotHaveEndedThisWay returns an error appropriate for a token
// following a complete expression.
func itShouldNotHaveEndedThisWay(tok Token) error {
	switch {
	case tok.Kind == TokenClose:
		return &BracketError{Col: tok.Pos, Open: false}
	case tok.Kind == TokenOther && tok.Text == ",":
		return &SeparatorError{Col: tok.Pos, Sep: tok.Text}
	default:
		return &TrailingError{Col: tok.Pos, Text: tok.Text}
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (o operator) moreBinding(than operator) bool {
	if o.prec != than.prec {
		return o.prec > than.prec
	}
	return o.right
}

// binop gets the binary operator for a token. The second result is false if
// the token is not an operator.
func (p *Parser) binop(tok Token) (operator, bool) {
	prec, ok := tok.Precedence()
	if !ok {
		return operator{}, false
	}
	switch tok.Text {
	case "+":
		return operator{prec, false, nodeAdd}, true
	case "-":
		return operator{prec, false, nodeSub}, true
	case "*":
		return operator{prec, false, nodeMul}, true
	case "/":
		return operator{prec, false, nodeDiv}, true
	case "**":
		return operator{prec, p.ctx.rightpow, nodePow}, true
	default:
		panic("plotfn: operator without node: " + tok.String())
	}
}
