package object

import (
	"fmt"
	"log/slog"

	"github.com/langrt/langrt/internal/types"
)

// Module is also the representation of Class: a Class is a Module whose
// Kind is KindClass and which may carry a Superclass link.
type Module struct {
	Kind Kind

	name  string   // empty until named by constant assignment (I5)
	Owner *Module  // back-link to where this was first named
	root  *Module  // the enclosing runtime's root namespace

	Superclass      *Module // classes only
	IncludedModules []*Module

	Constants map[string]*Constant
	Methods   map[string]MethodInfo
	ClassVars map[string]Value

	MethodVisibility   Visibility
	ModuleFunctionMode bool

	Singleton   *Module // metaclass, lazily created
	IsSingleton bool    // true if this module IS a singleton class

	CapturedEnv *Env

	// diagLog and diagConfig drive deprecated-constant warnings; both may
	// be nil/zero to disable diagnostics entirely.
	diagLog    *types.Logger
	diagConfig *types.DiagnosticConfig

	id uintptr // stand-in for pointer_id() in inspect_str/dbg_inspect
}

var nextID uintptr

// NewModule creates an unnamed module or class sharing root as its
// runtime's global namespace. Pass nil for root only when constructing
// the root namespace itself.
func NewModule(kind Kind, root *Module) *Module {
	nextID++
	m := &Module{
		Kind:      kind,
		root:      root,
		Constants: make(map[string]*Constant),
		Methods:   make(map[string]MethodInfo),
		ClassVars: make(map[string]Value),
		id:        nextID,
	}
	if root == nil {
		m.root = m
	}
	m.CapturedEnv = NewEnv(nil)
	return m
}

// NewNamedModule creates a module or class and immediately names it,
// the way a top-level `module Foo` / `class Foo` declaration would,
// without going through const_set.
func NewNamedModule(kind Kind, name string, root *Module) *Module {
	m := NewModule(kind, root)
	m.name = name
	return m
}

// SetLogger attaches ambient logging and a diagnostic policy used when
// ConstFind encounters a deprecated constant. Either argument may be nil.
func (m *Module) SetLogger(logger *types.Logger, cfg *types.DiagnosticConfig) {
	m.diagLog = logger
	m.diagConfig = cfg
}

func (m *Module) IsClass() bool { return m.Kind == KindClass }

// Name returns the module's simple name, or "" if still anonymous.
func (m *Module) Name() string { return m.name }

// SetName directly names a module, bypassing the owner/singleton
// cascade that const_set applies (I5). Used for modules named outside
// of constant assignment, e.g. the runtime's built-in root namespace.
func (m *Module) SetName(name string) { m.name = name }

// QualifiedName mirrors ModuleObject::name: the fully-qualified
// "::"-joined name built by walking Owner links, or "" if unnamed.
func (m *Module) QualifiedName() string {
	if m.name == "" {
		return ""
	}
	name := m.name
	if m.Owner != nil && m.Owner != m.root {
		if ownerName := m.Owner.QualifiedName(); ownerName != "" {
			name = ownerName + "::" + name
		}
	}
	return name
}

// SingletonClassFor returns this module's metaclass, creating it on
// first use.
func (m *Module) SingletonClassFor() *Module {
	if m.Singleton == nil {
		sc := NewModule(KindClass, m.root)
		sc.IsSingleton = true
		m.Singleton = sc
	}
	return m.Singleton
}

// InspectStr mirrors ModuleObject::inspect_str.
func (m *Module) InspectStr() string {
	switch {
	case m.name != "":
		if m.Owner != nil && m.Owner != m.root {
			return m.Owner.InspectStr() + "::" + m.name
		}
		return m.name
	case m.IsClass():
		return fmt.Sprintf("#<Class:%#x>", m.id)
	default:
		return fmt.Sprintf("#<Module:%#x>", m.id)
	}
}

func (m *Module) warnDeprecated(parentForMessage *Module, name string) {
	if m.diagLog == nil {
		return
	}
	if cfg := m.diagConfig; cfg != nil && !cfg.ShouldReport(types.DiagDeprecatedConstant, types.SeverityWarning) {
		return
	}
	var msg string
	if parentForMessage != nil && parentForMessage != m.root {
		msg = fmt.Sprintf("constant %s::%s is deprecated", parentForMessage.InspectStr(), name)
	} else {
		msg = fmt.Sprintf("constant ::%s is deprecated", name)
	}
	m.diagLog.Log(slog.LevelWarn, msg)
}
