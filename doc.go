// Package plotfn compiles real functions of one variable for plotting.
//
// An expression like "sin(x) ** 2" or "log(10, x) / 2" is parsed once into an
// immutable tree, then evaluated at as many x values as a plot needs. Points
// outside the function's real domain, such as x = 0 in "1 / x", produce a
// *DomainError for that point only; the plotter skips them and the curve
// breaks into segments there.
//
// The language has numbers like 12 and 0.5, the variable x, the constants e
// and pi, negation, the binary operators + - * / and **, parentheses, integer
// factorials like 5!, the functions sin, cos, tan, cot, sec, csc, arcsin,
// arccos, arctan, arccot, ln, and sqrt, and log(base, x). Precedence is the
// usual order, with ** binding tightest, but every operator including ** is
// left-associative: "2 ** 3 ** 2" is 64. The RightAssocPow option changes
// that.
//
package plotfn
