package internal

import "sort"

// Environment is a stack of variable scopes. The bottom scope holds globals
// and is never removed.
type Environment struct {
	scopes []map[string]Value
}

// NewEnvironment creates an environment holding only an empty global scope.
func NewEnvironment() *Environment {
	return &Environment{scopes: []map[string]Value{{}}}
}

// Push enters a new innermost scope.
func (env *Environment) Push() {
	env.scopes = append(env.scopes, map[string]Value{})
}

// Pop leaves the innermost scope, discarding its bindings. Pop panics if only
// the global scope remains.
func (env *Environment) Pop() {
	if len(env.scopes) <= 1 {
		panic("lox: pop of global scope")
	}
	env.scopes[len(env.scopes)-1] = nil
	env.scopes = env.scopes[:len(env.scopes)-1]
}

// Scope pushes a new scope and returns a function that pops it. Use it as
//
//	defer env.Scope()()
//
// so the scope is left on every path out of the block.
func (env *Environment) Scope() (exit func()) {
	env.Push()
	return env.Pop
}

// Depth returns the number of scopes, including the global scope.
func (env *Environment) Depth() int {
	return len(env.scopes)
}

// Define binds name in the innermost scope, replacing any existing binding
// there.
func (env *Environment) Define(name string, v Value) {
	env.scopes[len(env.scopes)-1][name] = v
}

// Get looks up a variable from the innermost scope outward.
func (env *Environment) Get(name Token) (Value, error) {
	for i := len(env.scopes) - 1; i >= 0; i-- {
		if v, ok := env.scopes[i][name.Lexeme]; ok {
			return v, nil
		}
	}
	return NilValue, undefined(name)
}

// Assign replaces the value of the innermost existing binding of a variable.
// It never creates a binding.
func (env *Environment) Assign(name Token, v Value) error {
	for i := len(env.scopes) - 1; i >= 0; i-- {
		if _, ok := env.scopes[i][name.Lexeme]; ok {
			env.scopes[i][name.Lexeme] = v
			return nil
		}
	}
	return undefined(name)
}

func undefined(name Token) *RuntimeError {
	return runtimeErrorf(&name, "Undefined variable '%s'.", name.Lexeme)
}

// A Binding is a variable visible from the innermost scope.
type Binding struct {
	Name  string
	Value Value
	// Depth is the index of the scope holding the binding; 0 is global.
	Depth int
}

// Names lists the visible bindings, innermost scope first and sorted by name
// within each scope. Shadowed bindings are left out.
func (env *Environment) Names() []Binding {
	seen := make(map[string]bool)
	var r []Binding
	for i := len(env.scopes) - 1; i >= 0; i-- {
		start := len(r)
		for name, v := range env.scopes[i] {
			if seen[name] {
				continue
			}
			seen[name] = true
			r = append(r, Binding{Name: name, Value: v, Depth: i})
		}
		level := r[start:]
		sort.Slice(level, func(a, b int) bool { return level[a].Name < level[b].Name })
	}
	return r
}
