package object

import "strings"

// IsClassVarName reports whether name has the `@@foo` class-variable
// shape.
func IsClassVarName(name string) bool {
	return strings.HasPrefix(name, "@@")
}

// CvarGet walks m then its superclass chain, returning the first value
// found, or nil if none.
func (m *Module) CvarGet(name string) (Value, error) {
	if !IsClassVarName(name) {
		return nil, NewNameError("`%s' is not allowed as a class variable name", name)
	}
	for mod := m; mod != nil; mod = mod.Superclass {
		if v, ok := mod.ClassVars[name]; ok {
			return v, nil
		}
	}
	return nil, nil
}

// CvarSet walks m then its superclass chain; if any ancestor already
// holds name, the value is updated there in place (shared-ownership
// semantics), otherwise it is stored fresh on m.
func (m *Module) CvarSet(name string, value Value) error {
	if !IsClassVarName(name) {
		return NewNameError("`%s' is not allowed as a class variable name", name)
	}
	for mod := m; mod != nil; mod = mod.Superclass {
		if _, ok := mod.ClassVars[name]; ok {
			mod.ClassVars[name] = value
			return nil
		}
	}
	m.ClassVars[name] = value
	return nil
}
