package checker

import "github.com/devin-lang/devin/internal/types"

// varScope is one level of the variable-name scope stack: a flat map plus
// a link to the enclosing scope. Lookup walks outward, innermost first.
type varScope struct {
	vars   map[string]types.Type
	parent *varScope
}

func newVarScope(parent *varScope) *varScope {
	return &varScope{vars: make(map[string]types.Type), parent: parent}
}

func (s *varScope) define(name string, t types.Type) {
	s.vars[name] = t
}

func (s *varScope) resolve(name string) (types.Type, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if t, ok := sc.vars[name]; ok {
			return t, true
		}
	}
	return nil, false
}

// signature is a resolved function shape: parameter types in order (their
// ref-ness does not affect overload matching, only call-site binding) and
// a return type.
type signature struct {
	params []types.Type
	ret    types.Type
}

func (s *signature) asType() types.Type {
	return types.Function{Params: s.params, Return: s.ret}
}

// funcScope is one level of the function-overload scope stack: a name maps
// to the list of overloads installed at that level. A fresh (empty) scope
// is pushed on entry to a function body so nested local functions cannot
// shadow an outer overload set that Pass 1 already discovered — but inner
// scopes can still see outward, so Pass 1's siblings remain callable.
type funcScope struct {
	funcs  map[string][]*signature
	parent *funcScope
}

func newFuncScope(parent *funcScope) *funcScope {
	return &funcScope{funcs: make(map[string][]*signature), parent: parent}
}

// overloadsOf collects every overload of name visible from this scope,
// innermost first, matching the spec's "innermost scope outward" lookup.
func (s *funcScope) overloadsOf(name string) []*signature {
	var out []*signature
	for sc := s; sc != nil; sc = sc.parent {
		out = append(out, sc.funcs[name]...)
	}
	return out
}

func (s *funcScope) install(name string, sig *signature) {
	s.funcs[name] = append(s.funcs[name], sig)
}
