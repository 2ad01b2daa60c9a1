package plotfn

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression. Every node
// exclusively owns its children.
type node struct {
	kind nodeKind

	// num is the literal of a nodeNum or the operand of a nodeFact.
	num float64
	// fn identifies the constant of a nodeConst or the function of a
	// nodeCall or nodeCall2.
	fn funcID

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum   // num
	nodeVar   // x
	nodeConst // fn is constE or constPi
	nodeFact  // num!

	nodeNeg   // -left
	nodeAdd   // left + right
	nodeSub   // left - right
	nodeMul   // left * right
	nodeDiv   // left / right
	nodePow   // left ** right
	nodeParen // (left)

	nodeCall  // fn(left)
	nodeCall2 // fn(left, right)
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// fmt writes the expression text of n. Grouping is written where the source
// had parentheses and around a ** nested in the right operand of another **.
func (n *node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.num, 'f', -1, 64))
	case nodeVar:
		b.WriteByte('x')
	case nodeConst:
		b.WriteString(n.fn.String())
	case nodeFact:
		b.WriteString(strconv.FormatFloat(n.num, 'f', -1, 64))
		b.WriteByte('!')
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b)
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		n.left.fmt(b)
		b.WriteByte(' ')
		b.WriteString(n.kind.symbol())
		b.WriteByte(' ')
		n.right.fmt(b)
	case nodePow:
		n.left.fmt(b)
		b.WriteString(" ** ")
		// Only right-associative parsing nests ** on the right without
		// parentheses. Group it so the text means the same under any options.
		if n.right.kind == nodePow {
			b.WriteByte('(')
			n.right.fmt(b)
			b.WriteByte(')')
		} else {
			n.right.fmt(b)
		}
	case nodeParen:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeCall:
		b.WriteString(n.fn.String())
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteByte(')')
	case nodeCall2:
		b.WriteString(n.fn.String())
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString(", ")
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		panic("plotfn: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// symbol returns the operator text for a binary node kind.
func (k nodeKind) symbol() string {
	switch k {
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	case nodePow:
		return "**"
	default:
		panic("plotfn: no operator for node kind " + k.String())
	}
}

// clone makes a deep copy of n.
func (n *node) clone() *node {
	if n == nil {
		return nil
	}
	return &node{
		kind:  n.kind,
		num:   n.num,
		fn:    n.fn,
		left:  n.left.clone(),
		right: n.right.clone(),
	}
}

// depth is the number of nodes on the longest path from n to a leaf.
func (n *node) depth() int {
	if n == nil {
		return 0
	}
	l, r := n.left.depth(), n.right.depth()
	if l > r {
		return l + 1
	}
	return r + 1
}

// size is the number of nodes in the tree rooted at n.
func (n *node) size() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.size() + n.right.size()
}
