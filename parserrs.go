package plotfn

import "strconv"

// TokenError is an error indicating a token that cannot appear where the
// parser found it, including runes that are not part of the expression
// language. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the text of the token.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// LiteralError is an error indicating a malformed or unrepresentable number
// literal. It implements InputError.
type LiteralError struct {
	// Col is the position of the literal.
	Col int
	// Text is the literal.
	Text string
	// Reason describes the problem.
	Reason string
}

func (err *LiteralError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text)+": "+err.Reason)
}

func (err *LiteralError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator token that is not
// understood by the parser. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the offending token.
	Col int
	// Open is true if an open parenthesis was not closed and false if a
	// close parenthesis has no open parenthesis.
	Open bool
	// Found is the token found where a close parenthesis was required. It is
	// empty at the end of input.
	Found string
}

func (err *BracketError) Error() string {
	if !err.Open {
		return errpos(err.Col, "close bracket ) with no open bracket")
	}
	if err.Found == "" {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "expected ) but found "+strconv.Quote(err.Found))
}

func (err *BracketError) Pos() int {
	return err.Col
}

// NameError is an error indicating an identifier which is neither the
// variable, a constant, nor a function. It implements InputError.
type NameError struct {
	// Col is the position of the identifier.
	Col int
	// Name is the identifier.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "undefined name "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// SeparatorError is an error indicating a comma outside the argument list of
// a two-argument function. It implements InputError.
type SeparatorError struct {
	// Col is the position of the separator.
	Col int
	// Sep is the separator.
	Sep string
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "invalid occurrence of separator "+strconv.Quote(err.Sep))
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// CallError is an error indicating a function name without an argument list
// or a call with the wrong number of arguments. It implements InputError.
type CallError struct {
	// Col is the position of the token where the call went wrong.
	Col int
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments the function takes.
	Len int
}

func (err *CallError) Error() string {
	s := "arguments"
	if err.Len == 1 {
		s = "argument"
	}
	return errpos(err.Col, err.Func+" must be called with "+strconv.Itoa(err.Len)+" "+s+" in parentheses")
}

func (err *CallError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// TrailingError is an error indicating input left over after a complete
// expression.
type TrailingError struct {
	// Col is the position of the first extra token.
	Col int
	// Text is the first extra token.
	Text string
}

func (err *TrailingError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Text)+" after end of expression")
}

func (err *TrailingError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*LiteralError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*CallError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*TrailingError)(nil)
)
