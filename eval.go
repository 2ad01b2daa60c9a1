package plotfn

import "math"

// Eval evaluates the expression with the variable x set to the given value.
// If x is outside the domain of the expression, the result is 0 and a
// *DomainError describing the first operation that could not be evaluated.
// The error is nil exactly when IsValidAt(x) is true.
func (e *Expr) Eval(x float64) (float64, error) {
	return e.n.eval(x)
}

// IsValidAt reports whether x is inside the domain of the expression.
func (e *Expr) IsValidAt(x float64) bool {
	return e.n.valid(x)
}

// eval computes the node's value.
func (n *node) eval(x float64) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeVar:
		return x, nil
	case nodeConst:
		return constval(n.fn), nil
	case nodeFact:
		return factorials[int(n.num)], nil
	case nodeNeg:
		v, err := n.left.eval(x)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case nodeParen:
		return n.left.eval(x)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		l, err := n.left.eval(x)
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval(x)
		if err != nil {
			return 0, err
		}
		return n.binary(l, r)
	case nodeCall:
		a, err := n.left.eval(x)
		if err != nil {
			return 0, err
		}
		m := monadics[n.fn]
		if !m.in(a) {
			return 0, &DomainError{X: a, Arg: 1, Func: n.fn.String()}
		}
		return m.f(a), nil
	case nodeCall2:
		b, err := n.left.eval(x)
		if err != nil {
			return 0, err
		}
		a, err := n.right.eval(x)
		if err != nil {
			return 0, err
		}
		return n.dyadic(b, a)
	default:
		panic("plotfn: invalid AST node " + n.kind.String())
	}
}

// binary applies a binary operator node to evaluated operands.
func (n *node) binary(l, r float64) (float64, error) {
	switch n.kind {
	case nodeAdd:
		return l + r, nil
	case nodeSub:
		return l - r, nil
	case nodeMul:
		return l * r, nil
	case nodeDiv:
		if isZero(r) {
			return 0, &DomainError{X: r, Arg: 2, Func: "/"}
		}
		return l / r, nil
	case nodePow:
		if isZero(l) && r < 0 {
			return 0, &DomainError{X: l, Arg: 1, Func: "**"}
		}
		v := math.Pow(l, r)
		if math.IsNaN(v) {
			// Negative base with a non-integer exponent, or NaN operands.
			return 0, &DomainError{X: l, Arg: 1, Func: "**"}
		}
		return v, nil
	default:
		panic("plotfn: not a binary node " + n.kind.String())
	}
}

// dyadic applies a two-argument function node to evaluated arguments.
func (n *node) dyadic(l, r float64) (float64, error) {
	switch n.fn {
	case fnLog:
		if l <= 0 || isEqual(l, 1) {
			return 0, &DomainError{X: l, Arg: 1, Func: "log"}
		}
		if r <= 0 {
			return 0, &DomainError{X: r, Arg: 2, Func: "log"}
		}
		return logOf(l, r), nil
	default:
		panic("plotfn: invalid two-argument function " + n.fn.String())
	}
}

// valid reports whether x is in the node's domain. Each case states the
// node's own condition; eval raises a DomainError under exactly the same
// conditions.
func (n *node) valid(x float64) bool {
	switch n.kind {
	case nodeNum, nodeVar, nodeConst, nodeFact:
		return true
	case nodeNeg, nodeParen:
		return n.left.valid(x)
	case nodeAdd, nodeSub, nodeMul:
		return n.left.valid(x) && n.right.valid(x)
	case nodeDiv:
		if !n.left.valid(x) {
			return false
		}
		r, err := n.right.eval(x)
		return err == nil && !isZero(r)
	case nodePow:
		l, err := n.left.eval(x)
		if err != nil {
			return false
		}
		r, err := n.right.eval(x)
		if err != nil {
			return false
		}
		return !(isZero(l) && r < 0) && !math.IsNaN(math.Pow(l, r))
	case nodeCall:
		a, err := n.left.eval(x)
		return err == nil && monadics[n.fn].in(a)
	case nodeCall2:
		b, err := n.left.eval(x)
		if err != nil {
			return false
		}
		a, err := n.right.eval(x)
		if err != nil {
			return false
		}
		// log is the only two-argument function.
		return b > 0 && !isEqual(b, 1) && a > 0
	default:
		panic("plotfn: invalid AST node " + n.kind.String())
	}
}
