package object

import "testing"

func TestInspectStrNamedWithOwner(t *testing.T) {
	root := NewModule(KindModule, nil)
	outer := NewNamedModule(KindModule, "Outer", root)
	inner := NewNamedModule(KindModule, "Inner", root)
	inner.Owner = outer

	if got := inner.InspectStr(); got != "Outer::Inner" {
		t.Fatalf("got %q, want Outer::Inner", got)
	}
}

func TestInspectStrAnonymousClass(t *testing.T) {
	root := NewModule(KindModule, nil)
	anon := NewModule(KindClass, root)
	got := anon.InspectStr()
	if len(got) < len("#<Class:0x") || got[:len("#<Class:")] != "#<Class:" {
		t.Fatalf("got %q, want a #<Class:...> pointer form", got)
	}
}

func TestSetMethodVisibilityNoArgsSetsDefault(t *testing.T) {
	root := NewModule(KindModule, nil)
	m := NewNamedModule(KindModule, "M", root)
	m.ModuleFunctionMode = true

	if err := m.SetMethodVisibility(nil, Private); err != nil {
		t.Fatalf("SetMethodVisibility: %v", err)
	}
	if m.MethodVisibility != Private {
		t.Fatalf("MethodVisibility = %v, want Private", m.MethodVisibility)
	}
	if m.ModuleFunctionMode {
		t.Fatal("expected module_function_mode to be cleared")
	}
}

func TestSetMethodVisibilityWithNamesDoesNotMoveMethod(t *testing.T) {
	root := NewModule(KindModule, nil)
	p := NewNamedModule(KindClass, "P", root)
	p.DefineMethod("foo", nativeStub(1), nil, 0)

	c := NewNamedModule(KindClass, "C", root)
	c.Superclass = p

	if err := c.SetMethodVisibility([]string{"foo"}, Private); err != nil {
		t.Fatalf("SetMethodVisibility: %v", err)
	}
	info, ok := c.Methods["foo"]
	if !ok || info.Visibility != Private {
		t.Fatalf("expected foo rewritten into C's own table as Private, got %+v", info)
	}
	if _, stillOnP := p.Methods["foo"]; !stillOnP {
		t.Fatal("expected foo to remain defined on P as well")
	}
}

func TestModuleFunctionOnClassRaisesTypeError(t *testing.T) {
	root := NewModule(KindModule, nil)
	c := NewNamedModule(KindClass, "C", root)
	if err := c.ModuleFunction(nil); err == nil {
		t.Fatal("expected a TypeError")
	} else if _, ok := err.(*TypeError); !ok {
		t.Fatalf("got %T, want *TypeError", err)
	}
}

func TestModuleFunctionMirrorsOntoSingleton(t *testing.T) {
	root := NewModule(KindModule, nil)
	m := NewNamedModule(KindModule, "M", root)
	if err := m.ModuleFunction(nil); err != nil {
		t.Fatalf("ModuleFunction: %v", err)
	}
	m.DefineMethod("helper", nativeStub(1), nil, 0)

	info, ok := m.Methods["helper"]
	if !ok || info.Visibility != Private {
		t.Fatalf("expected helper to be Private on M, got %+v", info)
	}
	if m.Singleton == nil {
		t.Fatal("expected module_function_mode to have created a singleton class")
	}
	if _, ok := m.Singleton.Methods["helper"]; !ok {
		t.Fatal("expected helper mirrored onto the singleton class")
	}
}

func TestRemoveMethodDoesNotMaskInheritance(t *testing.T) {
	root := NewModule(KindModule, nil)
	p := NewNamedModule(KindClass, "P", root)
	p.DefineMethod("bar", nativeStub(1), nil, 0)

	c := NewNamedModule(KindClass, "C", root)
	c.Superclass = p
	c.DefineMethod("bar", nativeStub(2), nil, 0)

	if err := c.RemoveMethod("bar"); err != nil {
		t.Fatalf("RemoveMethod: %v", err)
	}
	res := c.Find("bar")
	if !res.Found || res.Module != p {
		t.Fatalf("expected bar to fall through to P after removal, got %+v", res)
	}
}

func TestRemoveMethodRequiresOwnTableEntry(t *testing.T) {
	root := NewModule(KindModule, nil)
	p := NewNamedModule(KindClass, "P", root)
	p.DefineMethod("bar", nativeStub(1), nil, 0)

	c := NewNamedModule(KindClass, "C", root)
	c.Superclass = p

	if err := c.RemoveMethod("bar"); err == nil {
		t.Fatal("expected a NameError: bar is not in C's own table")
	}
}

type blockFunc func(self Value, args ...Value) (Value, error)

func (f blockFunc) Call(self Value, args ...Value) (Value, error) { return f(self, args...) }

func TestModuleEvalRestoresVisibility(t *testing.T) {
	root := NewModule(KindModule, nil)
	m := NewNamedModule(KindModule, "M", root)
	m.MethodVisibility = Public

	block := blockFunc(func(self Value, args ...Value) (Value, error) {
		m.MethodVisibility = Private
		return "done", nil
	})

	result, err := m.ModuleEval(block)
	if err != nil {
		t.Fatalf("ModuleEval: %v", err)
	}
	if result != "done" {
		t.Fatalf("got %v, want done", result)
	}
	if m.MethodVisibility != Public {
		t.Fatalf("expected visibility restored to Public, got %v", m.MethodVisibility)
	}
}

func TestModuleEvalNoBlockIsArgumentError(t *testing.T) {
	root := NewModule(KindModule, nil)
	m := NewNamedModule(KindModule, "M", root)
	if _, err := m.ModuleEval(nil); err == nil {
		t.Fatal("expected an ArgumentError")
	} else if _, ok := err.(*ArgumentError); !ok {
		t.Fatalf("got %T, want *ArgumentError", err)
	}
}

func TestModuleExecNoBlockIsLocalJumpError(t *testing.T) {
	root := NewModule(KindModule, nil)
	m := NewNamedModule(KindModule, "M", root)
	if _, err := m.ModuleExec(nil); err == nil {
		t.Fatal("expected a LocalJumpError")
	} else if _, ok := err.(*LocalJumpError); !ok {
		t.Fatalf("got %T, want *LocalJumpError", err)
	}
}

func TestIsSubclassOfNeverSelf(t *testing.T) {
	root := NewModule(KindModule, nil)
	c := NewNamedModule(KindClass, "C", root)
	if c.IsSubclassOf(c) {
		t.Fatal("a module must never be its own ancestor")
	}
}

func TestDoesIncludeModuleThroughSuperclass(t *testing.T) {
	root := NewModule(KindModule, nil)
	mixin := NewNamedModule(KindModule, "Mixin", root)
	p := NewNamedModule(KindClass, "P", root)
	p.Include(mixin)
	c := NewNamedModule(KindClass, "C", root)
	c.Superclass = p

	if !c.DoesIncludeModule(mixin) {
		t.Fatal("expected C to transitively include Mixin via its superclass P")
	}
}
