package object

import "testing"

func nativeStub(v Value) NativeFn {
	return func(env *Env, self Value, args []Value, block Block) (Value, error) {
		return v, nil
	}
}

// TestLookupAcrossMixins is end-to-end scenario 1: A defines foo, B
// includes A and defines nothing, C includes B. find_method(C, :foo)
// resolves through the chain to A's method, and ancestors(C) lists each
// module exactly once.
func TestLookupAcrossMixins(t *testing.T) {
	root := NewModule(KindModule, nil)
	a := NewNamedModule(KindModule, "A", root)
	a.DefineMethod("foo", nativeStub(1), nil, 0)

	b := NewNamedModule(KindModule, "B", root)
	b.Include(a)

	c := NewNamedModule(KindClass, "C", root)
	c.Include(b)

	res := c.Find("foo")
	if !res.Found || !res.Info.Defined {
		t.Fatalf("expected foo to be found, got %+v", res)
	}
	if res.Module != a {
		t.Fatalf("foo resolved on %v, want A", res.Module.InspectStr())
	}

	ancestors := c.Ancestors()
	seen := map[*Module]int{}
	for _, m := range ancestors {
		seen[m]++
	}
	for m, n := range seen {
		if n != 1 {
			t.Fatalf("%s appears %d times in ancestors, want 1", m.InspectStr(), n)
		}
	}
	if seen[c] != 1 || seen[b] != 1 || seen[a] != 1 {
		t.Fatalf("ancestors = %+v, want C, B, A each present", ancestors)
	}
}

// TestPrependOverrides is scenario 2: M defines foo, C defines foo and
// prepends M; dispatch on C resolves to M's foo.
func TestPrependOverrides(t *testing.T) {
	root := NewModule(KindModule, nil)
	m := NewNamedModule(KindModule, "M", root)
	m.DefineMethod("foo", nativeStub("m"), nil, 0)

	c := NewNamedModule(KindClass, "C", root)
	c.DefineMethod("foo", nativeStub("c"), nil, 0)
	c.Prepend(m)

	res := c.Find("foo")
	if !res.Found || res.Module != m {
		t.Fatalf("expected foo to resolve on M, got %+v", res)
	}
}

// TestUndefMasksInheritance is scenario 3: P defines bar, C < P calls
// undef_method(:bar); find_method(C, :bar) is Undefined even though
// P#bar exists.
func TestUndefMasksInheritance(t *testing.T) {
	root := NewModule(KindModule, nil)
	p := NewNamedModule(KindClass, "P", root)
	p.DefineMethod("bar", nativeStub(nil), nil, 0)

	c := NewNamedModule(KindClass, "C", root)
	c.Superclass = p

	if err := c.UndefMethod("bar"); err != nil {
		t.Fatalf("UndefMethod: %v", err)
	}

	res := c.Find("bar")
	if !res.Found {
		t.Fatalf("expected the undef sentinel to be found, got nothing")
	}
	if res.Info.Defined {
		t.Fatalf("expected bar to be Undefined on C, got a defined method from %v", res.Module)
	}
}

// P6 restates scenario 3 for an arbitrary descendant of the undef'ing
// module, not just C itself.
func TestUndefMasksInheritanceForDescendants(t *testing.T) {
	root := NewModule(KindModule, nil)
	p := NewNamedModule(KindClass, "P", root)
	p.DefineMethod("bar", nativeStub(nil), nil, 0)

	c := NewNamedModule(KindClass, "C", root)
	c.Superclass = p
	if err := c.UndefMethod("bar"); err != nil {
		t.Fatalf("UndefMethod: %v", err)
	}

	d := NewNamedModule(KindClass, "D", root)
	d.Superclass = c

	res := d.Find("bar")
	if !res.Found || res.Info.Defined {
		t.Fatalf("expected D to inherit the undef sentinel, got %+v", res)
	}
}

// P5: alias(new, old) then find_method(new) returns the same Method as
// find_method(old) did just before.
func TestAliasReturnsSameMethod(t *testing.T) {
	root := NewModule(KindModule, nil)
	c := NewNamedModule(KindClass, "C", root)
	c.DefineMethod("greet", nativeStub("hi"), nil, 0)

	before := c.Find("greet")
	if err := c.Alias("salute", "greet", false); err != nil {
		t.Fatalf("Alias: %v", err)
	}
	after := c.Find("salute")
	if !after.Found || after.Info.Method != before.Info.Method {
		t.Fatalf("aliased method = %+v, want same Method pointer as %+v", after, before)
	}
}

// P1/P2: included_modules never duplicates an entry, and when non-empty
// contains self exactly once, regardless of repeated include calls.
func TestIncludeIsIdempotentAndSelfPlaced(t *testing.T) {
	root := NewModule(KindModule, nil)
	a := NewNamedModule(KindModule, "A", root)
	c := NewNamedModule(KindClass, "C", root)
	c.Include(a)
	c.Include(a) // repeated include of the same module is a no-op

	selfCount, aCount := 0, 0
	for _, m := range c.IncludedModules {
		if m == c {
			selfCount++
		}
		if m == a {
			aCount++
		}
	}
	if selfCount != 1 || aCount != 1 {
		t.Fatalf("included_modules = %+v, want self once and A once", c.IncludedModules)
	}
}

// TestIncludeOrderRightToLeft verifies `include A, B, C` yields lookup
// order A, B, C (5. CONCURRENCY & RESOURCE MODEL's ordering guarantee).
func TestIncludeOrderRightToLeft(t *testing.T) {
	root := NewModule(KindModule, nil)
	a := NewNamedModule(KindModule, "A", root)
	b := NewNamedModule(KindModule, "B", root)
	cc := NewNamedModule(KindModule, "C", root)
	c := NewNamedModule(KindClass, "Host", root)
	c.Include(a, b, cc)

	var order []*Module
	for _, m := range c.IncludedModules {
		if m != c {
			order = append(order, m)
		}
	}
	if len(order) != 3 || order[0] != a || order[1] != b || order[2] != cc {
		t.Fatalf("inclusion order = %+v, want [A, B, C]", order)
	}
}

// TestSuperResumptionSkipsCurrentFrame exercises the after_method marker:
// Mid includes Base and both define foo; Top inherits from Mid. A
// super-style lookup from Top starting after Mid's method resumes at
// Base's foo rather than finding Mid's own method again.
func TestSuperResumptionSkipsCurrentFrame(t *testing.T) {
	root := NewModule(KindModule, nil)
	base := NewNamedModule(KindModule, "Base", root)
	base.DefineMethod("foo", nativeStub("base"), nil, 0)

	mid := NewNamedModule(KindClass, "Mid", root)
	mid.Include(base)
	mid.DefineMethod("foo", nativeStub("mid"), nil, 0)

	top := NewNamedModule(KindClass, "Top", root)
	top.Superclass = mid

	plain := top.Find("foo")
	if !plain.Found || plain.Module != mid {
		t.Fatalf("expected plain lookup to hit Mid first, got %+v", plain)
	}

	resumed := top.FindAfter("foo", plain.Info.Method)
	if !resumed.Found || resumed.Module != base {
		t.Fatalf("expected super resumption to land on Base, got %+v", resumed)
	}
}
