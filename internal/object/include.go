package object

// Include mixes modules into this module's chain, applied right-to-left
// so the textual order `include A, B, C` yields lookup order A, B, C.
func (m *Module) Include(modules ...*Module) {
	for i := len(modules) - 1; i >= 0; i-- {
		m.includeOnce(modules[i])
	}
}

func (m *Module) includeOnce(mod *Module) {
	if len(m.IncludedModules) == 0 {
		m.IncludedModules = append(m.IncludedModules, m, mod)
		return
	}
	selfIndex := -1
	for i, entry := range m.IncludedModules {
		if entry == m {
			selfIndex = i
		}
		if entry == mod || (entry != m && entry.DoesIncludeModule(mod)) {
			return
		}
	}
	m.IncludedModules = append(m.IncludedModules, nil)
	copy(m.IncludedModules[selfIndex+2:], m.IncludedModules[selfIndex+1:])
	m.IncludedModules[selfIndex+1] = mod
}

// Prepend mixes modules in ahead of this module's own method table,
// applied right-to-left like Include.
func (m *Module) Prepend(modules ...*Module) {
	for i := len(modules) - 1; i >= 0; i-- {
		m.prependOnce(modules[i])
	}
}

func (m *Module) prependOnce(mod *Module) {
	if len(m.IncludedModules) == 0 {
		m.IncludedModules = append(m.IncludedModules, mod, m)
		return
	}
	for _, entry := range m.IncludedModules {
		if entry == mod {
			return
		}
	}
	m.IncludedModules = append([]*Module{mod}, m.IncludedModules...)
}

// DoesIncludeModule reports whether mod appears anywhere in the
// inclusion closure of this module or of any of its superclasses; the
// superclasses themselves are not matched against mod.
func (m *Module) DoesIncludeModule(mod *Module) bool {
	for _, entry := range m.IncludedModules {
		if entry == m {
			continue
		}
		if entry == mod {
			return true
		}
		if entry.DoesIncludeModule(mod) {
			return true
		}
	}
	if m.Superclass != nil {
		return m.Superclass.DoesIncludeModule(mod)
	}
	return false
}
