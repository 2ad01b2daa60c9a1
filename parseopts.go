package plotfn

import "strconv"

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	powopt     struct{}
	disableopt []string
)

// parsectx holds the configuration for one parse.
type parsectx struct {
	// funcs is the set of function names recognized in identifiers. It must
	// be copied before it is modified.
	funcs map[string]funcID
	// rightpow indicates that ** is right-associative.
	rightpow bool
}

// RightAssocPow makes exponentiation right-associative, so that "a ** b ** c"
// parses as "a ** (b ** c)". By default, every binary operator is
// left-associative, including **.
func RightAssocPow() ParseOption {
	return powopt{}
}

func (powopt) parseOption(p parsectx) parsectx {
	p.rightpow = true
	return p
}

// DisableFuncs removes functions from the set recognized during parsing.
// Their names become undefined. Panics if any name is not a function.
func DisableFuncs(names ...string) ParseOption {
	for _, name := range names {
		if _, ok := globalfuncs[name]; !ok {
			panic("plotfn: cannot disable " + strconv.Quote(name) + ": no such function")
		}
	}
	return disableopt(append([]string(nil), names...))
}

func (o disableopt) parseOption(p parsectx) parsectx {
	// Always make a copy.
	m := make(map[string]funcID, len(p.funcs))
	for k, v := range p.funcs {
		m[k] = v
	}
	for _, name := range o {
		delete(m, name)
	}
	p.funcs = m
	return p
}
