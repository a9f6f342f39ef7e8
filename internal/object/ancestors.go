package object

// Ancestors walks m's inclusion chain (or m itself, when the chain is
// empty — I2 means a non-empty chain already contains m), expanding every
// included module into its own ancestors, then follows Superclass,
// yielding every module reachable exactly once (P4).
func (m *Module) Ancestors() []*Module {
	var result []*Module
	seen := make(map[*Module]bool)
	add := func(mod *Module) {
		if !seen[mod] {
			seen[mod] = true
			result = append(result, mod)
		}
	}
	for k := m; k != nil; k = k.Superclass {
		if len(k.IncludedModules) == 0 {
			add(k)
			continue
		}
		for _, mod := range k.IncludedModules {
			if mod == k {
				add(k)
				continue
			}
			for _, a := range mod.Ancestors() {
				add(a)
			}
		}
	}
	return result
}

// IsSubclassOf reports whether other is strictly above self in the
// superclass or inclusion chains; self is never its own ancestor.
func (m *Module) IsSubclassOf(other *Module) bool {
	if other == m {
		return false
	}
	for k := m; k != nil; k = k.Superclass {
		if other == k.Superclass {
			return true
		}
		for _, mod := range k.IncludedModules {
			if other == mod {
				return true
			}
		}
	}
	return false
}
