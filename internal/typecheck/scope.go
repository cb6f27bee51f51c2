package typecheck

// env is the checker's name → type mapping. Axiom has a single flat scope;
// rebinding a name replaces its type.
type env map[string]Type

func (c *checker) bind(name string, ty Type) { c.vars[name] = ty }

func (c *checker) lookupVar(name string) (Type, bool) {
	ty, ok := c.vars[name]
	return ty, ok
}
