// env.go: lexically scoped variable environments
package loxi

// Env is one scope in the environment chain. Lookups walk outward through
// parents; definitions always land in the innermost scope.
type Env struct {
	parent *Env
	table  map[string]Value
}

// NewEnv creates a root scope.
func NewEnv() *Env {
	return &Env{table: make(map[string]Value)}
}

// Child opens a nested scope whose lookups fall back to e.
func (e *Env) Child() *Env {
	return &Env{parent: e, table: make(map[string]Value)}
}

// Define binds name in this scope. Redefining a name already bound in the
// same scope silently overwrites it.
func (e *Env) Define(name string, v Value) { e.table[name] = v }

// Get resolves name by walking the scope chain outward. The second return
// value is false when no scope binds the name.
func (e *Env) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.table[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}
