package plotfn

import (
	"math"
	"strconv"
)

// Epsilon is the absolute tolerance for domain tests that compare a value
// against 0 or 1: division by zero, zeros of cos and sin under sec and csc,
// zero raised to a negative power, and logarithms to base 1.
const Epsilon = 1e-10

// funcID names a constant or a named function.
type funcID int8

const (
	fnNone funcID = iota

	// constants
	constE
	constPi

	// one argument
	fnSin
	fnCos
	fnTan
	fnCot
	fnSec
	fnCsc
	fnArcsin
	fnArccos
	fnArctan
	fnArccot
	fnLn
	fnSqrt

	// two arguments
	fnLog

	fnCount
)

var funcnames = [fnCount]string{
	fnNone:   "",
	constE:   "e",
	constPi:  "pi",
	fnSin:    "sin",
	fnCos:    "cos",
	fnTan:    "tan",
	fnCot:    "cot",
	fnSec:    "sec",
	fnCsc:    "csc",
	fnArcsin: "arcsin",
	fnArccos: "arccos",
	fnArctan: "arctan",
	fnArccot: "arccot",
	fnLn:     "ln",
	fnSqrt:   "sqrt",
	fnLog:    "log",
}

func (f funcID) String() string {
	if f <= fnNone || f >= fnCount {
		return "funcID(" + strconv.Itoa(int(f)) + ")"
	}
	return funcnames[f]
}

// arity is the number of arguments a function takes. Constants have arity 0.
func (f funcID) arity() int {
	switch {
	case f == constE, f == constPi:
		return 0
	case f >= fnSin && f <= fnSqrt:
		return 1
	case f == fnLog:
		return 2
	default:
		panic("plotfn: arity of invalid function " + f.String())
	}
}

// Funcs lists the names of the functions recognized by the parser by
// default, in no particular order. Modifying the result has no effect.
func Funcs() []string {
	r := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		r = append(r, k)
	}
	return r
}

// globalfuncs maps names to functions for parsing.
var globalfuncs = map[string]funcID{
	"sin":    fnSin,
	"cos":    fnCos,
	"tan":    fnTan,
	"cot":    fnCot,
	"sec":    fnSec,
	"csc":    fnCsc,
	"arcsin": fnArcsin,
	"arccos": fnArccos,
	"arctan": fnArctan,
	"arccot": fnArccot,
	"ln":     fnLn,
	"sqrt":   fnSqrt,
	"log":    fnLog,
}

// constants maps names to named constants.
var constants = map[string]funcID{
	"e":  constE,
	"pi": constPi,
}

func constval(f funcID) float64 {
	switch f {
	case constE:
		return math.E
	case constPi:
		return math.Pi
	default:
		panic("plotfn: invalid constant " + f.String())
	}
}

// monadic is a function of one real argument with its domain.
type monadic struct {
	// in reports whether the function is defined at its argument.
	in func(a float64) bool
	f  func(a float64) float64
}

var monadics = [fnCount]monadic{
	fnSin:    {always, math.Sin},
	fnCos:    {always, math.Cos},
	fnTan:    {func(a float64) bool { return isFinite(math.Tan(a)) }, math.Tan},
	fnCot:    {func(a float64) bool { return isFinite(cot(a)) }, cot},
	fnSec:    {func(a float64) bool { return !isZero(math.Cos(a)) }, func(a float64) float64 { return 1 / math.Cos(a) }},
	fnCsc:    {func(a float64) bool { return !isZero(math.Sin(a)) }, func(a float64) float64 { return 1 / math.Sin(a) }},
	fnArcsin: {unit, math.Asin},
	fnArccos: {unit, math.Acos},
	fnArctan: {always, math.Atan},
	fnArccot: {always, func(a float64) float64 { return math.Pi/2 - math.Atan(a) }},
	fnLn:     {func(a float64) bool { return a > 0 }, math.Log},
	fnSqrt:   {func(a float64) bool { return a >= 0 }, math.Sqrt},
}

func always(float64) bool { return true }

// unit reports whether a is in [-1, 1].
func unit(a float64) bool { return -1 <= a && a <= 1 }

func cot(a float64) float64 { return 1 / math.Tan(a) }

// logOf computes the logarithm of a to base b. Bases 2, e, and 10 use the
// dedicated functions so that exact powers give exact results.
func logOf(b, a float64) float64 {
	switch b {
	case 2:
		return math.Log2(a)
	case math.E:
		return math.Log(a)
	case 10:
		return math.Log10(a)
	default:
		return math.Log(a) / math.Log(b)
	}
}

// factorials holds n! for every n whose factorial is a finite float64.
var factorials [MaxFactorial + 1]float64

// MaxFactorial is the largest n for which the parser accepts n!.
const MaxFactorial = 170

func init() {
	factorials[0] = 1
	for i := 1; i < len(factorials); i++ {
		factorials[i] = factorials[i-1] * float64(i)
	}
}

func isZero(a float64) bool {
	return isEqual(a, 0)
}

func isEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func isFinite(a float64) bool {
	return !math.IsInf(a, 0) && !math.IsNaN(a)
}

// DomainError is an error returned when evaluating an expression requires
// an operator or function outside its real domain. It is a normal per-point
// outcome, not a failure of the expression as a whole.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Arg is the 1-based index of the argument.
	Arg int
	// Func is the operator or function name.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}
