package object

// Visitor receives every reference a garbage collector must trace from
// a Module: its captured env, superclass, constant keys/values, method
// keys and (when Defined) bodies, class-var pairs, and included
// modules. The object model performs no allocation tracking of its own;
// it only exposes the walk.
type Visitor interface {
	VisitEnv(*Env)
	VisitModule(*Module)
	VisitValue(Value)
	VisitMethod(*Method)
}

// VisitChildren drives visitor over every reference m owns.
func (m *Module) VisitChildren(visitor Visitor) {
	visitor.VisitEnv(m.CapturedEnv)
	if m.Superclass != nil {
		visitor.VisitModule(m.Superclass)
	}
	for name, c := range m.Constants {
		visitor.VisitValue(name)
		visitor.VisitValue(c.Value)
	}
	for name, info := range m.Methods {
		visitor.VisitValue(name)
		if info.Defined {
			visitor.VisitMethod(info.Method)
		}
	}
	for name, v := range m.ClassVars {
		visitor.VisitValue(name)
		visitor.VisitValue(v)
	}
	for _, mod := range m.IncludedModules {
		visitor.VisitModule(mod)
	}
}
