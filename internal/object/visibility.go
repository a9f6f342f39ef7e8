package object

// SetMethodVisibility implements private/protected/public. With no
// names, it sets the default visibility for subsequent definitions and
// clears module_function_mode. With names, each must already resolve by
// full lookup; the method is rewritten into m's own table at the
// requested visibility without being moved from its original owner.
func (m *Module) SetMethodVisibility(names []string, vis Visibility) error {
	if len(names) == 0 {
		m.MethodVisibility = vis
		m.ModuleFunctionMode = false
		return nil
	}
	for _, name := range names {
		res := m.Find(name)
		if err := m.AssertMethodDefined(name, res); err != nil {
			return err
		}
		m.Methods[name] = DefinedInfo(vis, res.Info.Method)
	}
	return nil
}

// ModuleFunction implements module_function: called on a class it
// always raises TypeError. With no names, it switches m into
// module-function mode (every subsequent def becomes Private and is
// mirrored onto the singleton class). With names, each existing method
// is defined as a singleton method and rewritten Private in m's own
// table.
func (m *Module) ModuleFunction(names []string) error {
	if m.IsClass() {
		return NewTypeError("module_function must be called for modules")
	}
	if len(names) == 0 {
		m.MethodVisibility = Private
		m.ModuleFunctionMode = true
		return nil
	}
	for _, name := range names {
		res := m.Find(name)
		if err := m.AssertMethodDefined(name, res); err != nil {
			return err
		}
		method := res.Info.Method
		m.DefineSingletonMethod(name, method.Native, method.Closure, method.Arity)
		m.Methods[name] = DefinedInfo(Private, method)
	}
	return nil
}

// DefineMethod writes name into m's own table at m's current default
// visibility, and — when ModuleFunctionMode is set — mirrors the
// definition onto the singleton class as well.
func (m *Module) DefineMethod(name string, native NativeFn, closure *Closure, arity int) {
	method := &Method{Name: name, Owner: m, Native: native, Closure: closure, Arity: arity}
	m.Methods[name] = DefinedInfo(m.MethodVisibility, method)
	if m.ModuleFunctionMode {
		m.DefineSingletonMethod(name, native, closure, arity)
	}
}

// DefineSingletonMethod defines name on m's singleton class directly,
// always Public, independent of m's own MethodVisibility/mode state.
func (m *Module) DefineSingletonMethod(name string, native NativeFn, closure *Closure, arity int) {
	sc := m.SingletonClassFor()
	method := &Method{Name: name, Owner: sc, Native: native, Closure: closure, Arity: arity}
	sc.Methods[name] = DefinedInfo(Public, method)
}

// DefineMethodFromValue implements the Proc/Method/UnboundMethod/block
// form of define_method. method, when non-nil, must be owned by m or by
// one of m's ancestors (an UnboundMethod bound to an unrelated class is
// a TypeError); block is used when method is nil.
func (m *Module) DefineMethodFromValue(name string, method *Method, block *Closure) (string, error) {
	switch {
	case method != nil:
		owner := method.Owner
		if owner != m && owner.IsClass() && !m.IsSubclassOf(owner) {
			if owner.IsSingleton {
				return "", NewTypeError("can't bind singleton method to a different class")
			}
			return "", NewTypeError("bind argument must be a subclass of %s", owner.InspectStr())
		}
		m.DefineMethod(name, method.Native, method.Closure, method.Arity)
	case block != nil:
		m.DefineMethod(name, nil, block, len(block.Params))
	default:
		return "", NewArgumentError("tried to create Proc object without a block")
	}
	return name, nil
}
