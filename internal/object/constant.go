package object

// Constant is a module-scoped name binding. Private and Deprecated may
// toggle after the fact (private_constant, deprecate_constant); Value is
// replaced atomically on reassignment rather than mutated in place.
type Constant struct {
	Name       string
	Value      Value
	Private    bool
	Deprecated bool
}
