package object

// SearchMode selects how far const_find looks: NotStrict also walks
// lexical (owner) nesting and falls back to the root namespace; Strict
// only walks inclusion and inheritance.
type SearchMode int

const (
	NotStrict SearchMode = iota
	Strict
)

// FailureMode controls what happens when no match exists.
type FailureMode int

const (
	Raise FailureMode = iota
	Null
)

// ConstFind resolves name against self, in the order: lexical owner
// nesting (NotStrict only), the inclusion closure, the superclass
// chain, then the root namespace (NotStrict only). Every match is
// checked for private/deprecated before being returned.
func (m *Module) ConstFind(name string, mode SearchMode, failure FailureMode) (Value, error) {
	var constant *Constant
	var parent *Module

	if mode == NotStrict {
		search := m
		for search != nil && search != m.root {
			if c, ok := search.Constants[name]; ok {
				constant = c
				parent = search
				break
			}
			search = search.Owner
		}
		if constant != nil {
			return m.checkConstant(constant, parent, name, mode)
		}
	}

	// Included-modules closure, breadth-first, self excluded.
	var toSearch []*Module
	for _, mod := range m.IncludedModules {
		if mod != m {
			toSearch = append(toSearch, mod)
		}
	}
	for i := 0; i < len(toSearch); i++ {
		mod := toSearch[i]
		if c, ok := mod.Constants[name]; ok {
			constant = c
			parent = mod
			break
		}
		for _, sub := range mod.IncludedModules {
			if sub != mod && sub != m {
				toSearch = append(toSearch, sub)
			}
		}
	}
	if constant != nil {
		return m.checkConstant(constant, parent, name, mode)
	}

	search := m
	for search != nil {
		if c, ok := search.Constants[name]; ok {
			constant = c
			parent = search
			break
		}
		if search.Superclass == nil || search.Superclass == m.root {
			break
		}
		search = search.Superclass
	}
	if constant != nil {
		return m.checkConstant(constant, parent, name, mode)
	}

	if m != m.root && mode == NotStrict {
		if c, ok := m.root.Constants[name]; ok {
			constant = c
			parent = m.root
		}
	}
	if constant != nil {
		return m.checkConstant(constant, parent, name, mode)
	}

	if failure == Null {
		return nil, nil
	}
	if mode == Strict {
		return nil, NewNameError("uninitialized constant %s::%s", m.InspectStr(), name)
	}
	return nil, NewNameError("uninitialized constant %s", name)
}

func (m *Module) checkConstant(c *Constant, parent *Module, name string, mode SearchMode) (Value, error) {
	if mode == Strict && c.Private {
		if parent != nil && parent != m.root {
			return nil, NewNameError("private constant %s::%s referenced", parent.InspectStr(), name)
		}
		return nil, NewNameError("private constant ::%s referenced", name)
	}
	if c.Deprecated {
		m.warnDeprecated(parent, name)
	}
	return c.Value, nil
}

// ConstDefined reports whether name resolves under NotStrict/Null
// semantics, without raising.
func (m *Module) ConstDefined(name string) bool {
	v, _ := m.ConstFind(name, NotStrict, Null)
	return v != nil
}

// ConstSet stores value under name and, per I5, adopts an unowned
// Module value: its Owner becomes m, it and every nested singleton
// class acquire a name if they lack one.
func (m *Module) ConstSet(name string, value Value) {
	m.Constants[name] = &Constant{Name: name, Value: value}
	mod, ok := value.(*Module)
	if !ok {
		return
	}
	if mod.Owner == nil {
		mod.Owner = m
		if mod.Singleton != nil {
			mod.Singleton.Owner = m
		}
	}
	if mod.name == "" {
		mod.name = name
		singleton := mod.Singleton
		displayName := name
		for singleton != nil {
			displayName = "#<Class:" + displayName + ">"
			singleton.name = displayName
			singleton = singleton.Singleton
		}
	}
}

// ConstantNames lists this module's own constant names plus, when inherit
// is true, those of every included module (self excluded).
func (m *Module) ConstantNames(inherit bool) []string {
	names := make([]string, 0, len(m.Constants))
	for name := range m.Constants {
		names = append(names, name)
	}
	if inherit {
		for _, mod := range m.IncludedModules {
			if mod != m {
				names = append(names, mod.ConstantNames(inherit)...)
			}
		}
	}
	return names
}

// DeprecateConstant, PrivateConstant, and PublicConstant toggle flags on
// an existing constant (I4); all three raise NameError when name is not
// yet defined on m.
func (m *Module) DeprecateConstant(name string) error {
	c, ok := m.Constants[name]
	if !ok {
		return NewNameError("constant %s::%s not defined", m.InspectStr(), name)
	}
	c.Deprecated = true
	return nil
}

func (m *Module) PrivateConstant(name string) error {
	c, ok := m.Constants[name]
	if !ok {
		return NewNameError("constant %s::%s not defined", m.InspectStr(), name)
	}
	c.Private = true
	return nil
}

func (m *Module) PublicConstant(name string) error {
	c, ok := m.Constants[name]
	if !ok {
		return NewNameError("constant %s::%s not defined", m.InspectStr(), name)
	}
	c.Private = false
	return nil
}
