package plotfn

import (
	"math"
	"sort"
	"testing"
)

func TestFuncsTable(t *testing.T) {
	names := Funcs()
	sort.Strings(names)
	want := []string{"arccos", "arccot", "arcsin", "arctan", "cos", "cot", "csc", "ln", "log", "sec", "sin", "sqrt", "tan"}
	if len(names) != len(want) {
		t.Fatalf("want funcs %q, got %q", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("want funcs %q, got %q", want, names)
			break
		}
	}
	names[0] = "nope"
	if _, ok := globalfuncs["nope"]; ok {
		t.Error("modifying Funcs result changed the function set")
	}
	for name, fn := range globalfuncs {
		if fn.String() != name {
			t.Errorf("%q has name %q", name, fn.String())
		}
		switch fn.arity() {
		case 1:
			m := monadics[fn]
			if m.in == nil || m.f == nil {
				t.Errorf("%q has no implementation", name)
			}
		case 2:
			if fn != fnLog {
				t.Errorf("%q has unhandled arity 2", name)
			}
		default:
			t.Errorf("%q has arity %d", name, fn.arity())
		}
	}
	for name, c := range constants {
		if c.arity() != 0 || c.String() != name {
			t.Errorf("constant %q has arity %d and name %q", name, c.arity(), c.String())
		}
		if _, ok := globalfuncs[name]; ok {
			t.Errorf("%q is both a constant and a function", name)
		}
	}
	if s := fnCount.String(); s != "funcID(16)" {
		t.Errorf("out of range funcID has name %q", s)
	}
}

func TestLogOf(t *testing.T) {
	cases := []struct {
		b, a, r float64
	}{
		{2, 1024, 10},
		{2, 0.125, -3},
		{10, 1e-5, -5},
		{math.E, 1, 0},
		{math.E, math.E * math.E, 2},
		{3, 81, 4},
		{0.5, 4, -2},
	}
	for _, c := range cases {
		r := logOf(c.b, c.a)
		if math.Abs(r-c.r) > 1e-14*math.Max(1, math.Abs(c.r)) {
			t.Errorf("log(%g, %g): want %g, got %g", c.b, c.a, c.r, r)
		}
	}
	if r := logOf(2, 1<<40); r != 40 {
		t.Errorf("log2 of exact power is %g", r)
	}
}

func TestFactorials(t *testing.T) {
	if factorials[0] != 1 || factorials[1] != 1 || factorials[10] != 3628800 {
		t.Errorf("wrong small factorials: %g %g %g", factorials[0], factorials[1], factorials[10])
	}
	for i, f := range factorials {
		if !isFinite(f) {
			t.Errorf("%d! is %g", i, f)
		}
	}
	if !math.IsInf(factorials[MaxFactorial]*(MaxFactorial+1), 1) {
		t.Errorf("%d! is finite", MaxFactorial+1)
	}
}

func TestEpsilon(t *testing.T) {
	cases := []struct {
		a    float64
		zero bool
	}{
		{0, true},
		{math.Copysign(0, -1), true},
		{Epsilon / 2, true},
		{-Epsilon / 2, true},
		{Epsilon * 2, false},
		{math.Cos(math.Pi / 2), true},
		{math.Sin(math.Pi), true},
		{math.Inf(1), false},
		{math.NaN(), false},
	}
	for _, c := range cases {
		if isZero(c.a) != c.zero {
			t.Errorf("isZero(%g) is %t", c.a, !c.zero)
		}
	}
	if !isEqual(1+Epsilon/2, 1) || isEqual(1+Epsilon*2, 1) {
		t.Error("wrong tolerance around 1")
	}
}
