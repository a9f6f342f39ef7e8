package object

// MakeAlias resolves old by full method lookup and defines newName in
// m's own table with the same Method and visibility.
func (m *Module) MakeAlias(newName, oldName string) error {
	res := m.Find(oldName)
	if err := m.AssertMethodDefined(oldName, res); err != nil {
		return err
	}
	m.Methods[newName] = DefinedInfo(res.Info.Visibility, res.Info.Method)
	return nil
}

// Alias is MakeAlias, except inside an instance-eval-like context (when
// instanceEvaling is true) it targets the singleton class instead, the
// way `instance_eval { alias ... }` rebinds on the singleton.
func (m *Module) Alias(newName, oldName string, instanceEvaling bool) error {
	if instanceEvaling {
		return m.SingletonClassFor().MakeAlias(newName, oldName)
	}
	return m.MakeAlias(newName, oldName)
}

// AliasMethod is the two-symbol-argument form (alias_method), identical
// to MakeAlias but always targeting m directly.
func (m *Module) AliasMethod(newName, oldName string) error {
	return m.MakeAlias(newName, oldName)
}

// RemoveMethod requires name to exist in m's own table and removes it.
// Unlike UndefMethod, this does not mask an inherited definition of the
// same name — a subsequent lookup simply falls through to the ancestor.
func (m *Module) RemoveMethod(name string) error {
	if _, ok := m.Methods[name]; !ok {
		return NewNameError("method `%s' not defined in %s", name, m.InspectStr())
	}
	delete(m.Methods, name)
	return nil
}

// UndefMethod requires name to be defined anywhere reachable from m,
// then writes an Undefined sentinel into m's own table (I3), masking
// any inherited definition.
func (m *Module) UndefMethod(name string) error {
	res := m.Find(name)
	if err := m.AssertMethodDefined(name, res); err != nil {
		return err
	}
	m.Methods[name] = UndefinedInfo(Public)
	return nil
}
