package interp

// Env maps variable names to values for one program execution.
type Env struct {
	vars map[string]Value
}

func NewEnv() *Env { return &Env{vars: map[string]Value{}} }

func (e *Env) Get(name string) (Value, bool) {
	v, ok := e.vars[name]
	return v, ok
}

// Set binds name, replacing any earlier binding.
func (e *Env) Set(name string, v Value) { e.vars[name] = v }

func (e *Env) Len() int { return len(e.vars) }
