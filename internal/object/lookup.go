package object

// LookupResult is the outcome of a method lookup walk: Found is false
// when nothing was matched anywhere in the chain. A MethodInfo that is
// Present but not Defined (an undef sentinel) is still Found=true, and
// masks any ancestor definition of the same name.
type LookupResult struct {
	Info   MethodInfo
	Module *Module
	Found  bool
}

// FindMethod walks self's inclusion chain, then its superclass, looking
// for name. afterMethod implements super-style resumption: when
// non-nil, every match whose Method equals *afterMethod is skipped and
// the marker is cleared, so the *next* match after that point is the one
// returned. Pass nil for an ordinary (non-super) lookup.
func (m *Module) FindMethod(name string, afterMethod **Method) LookupResult {
	if len(m.IncludedModules) == 0 {
		if info, ok := m.Methods[name]; ok {
			if res, done := m.matchInfo(info, m, afterMethod); done {
				return res
			}
		}
	}

	for _, mod := range m.IncludedModules {
		var res LookupResult
		if mod == m {
			if info, ok := mod.Methods[name]; ok {
				res = LookupResult{Info: info, Module: mod, Found: true}
			}
		} else {
			res = mod.FindMethod(name, afterMethod)
		}
		if !res.Found {
			continue
		}
		if result, done := m.matchInfo(res.Info, res.Module, afterMethod); done {
			return result
		}
	}

	if m.Superclass != nil {
		return m.Superclass.FindMethod(name, afterMethod)
	}
	return LookupResult{}
}

// matchInfo applies the after_method skip-then-clear rule to a single
// candidate match. done is false when the candidate must be skipped
// (either it IS the resumption marker, or a marker is still pending).
func (m *Module) matchInfo(info MethodInfo, owner *Module, afterMethod **Method) (LookupResult, bool) {
	if !info.Defined {
		return LookupResult{Info: info, Module: owner, Found: true}, true
	}
	method := info.Method
	if afterMethod != nil && *afterMethod == method {
		*afterMethod = nil
		return LookupResult{}, false
	}
	if afterMethod == nil || *afterMethod == nil {
		return LookupResult{Info: info, Module: owner, Found: true}, true
	}
	return LookupResult{}, false
}

// Find is an ordinary lookup with no super-resumption marker.
func (m *Module) Find(name string) LookupResult {
	return m.FindMethod(name, nil)
}

// FindAfter resumes lookup past after, the way `super` dispatch does.
func (m *Module) FindAfter(name string, after *Method) LookupResult {
	marker := after
	return m.FindMethod(name, &marker)
}

// AssertMethodDefined raises NameError with the kind-appropriate message
// ("class" vs "module") when res did not find a defined method.
func (m *Module) AssertMethodDefined(name string, res LookupResult) error {
	if res.Found && res.Info.Defined {
		return nil
	}
	if m.IsClass() {
		return NewNameError("undefined method `%s' for class `%s'", name, m.InspectStr())
	}
	return NewNameError("undefined method `%s' for module `%s'", name, m.InspectStr())
}

// IsMethodDefined reports whether name resolves to a defined method
// anywhere reachable from m.
func (m *Module) IsMethodDefined(name string) bool {
	res := m.Find(name)
	return res.Found && res.Info.Defined
}
