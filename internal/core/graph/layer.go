package graph

// Layer is a mapping from identifier to definition. A later layer in a
// Stack shadows earlier layers (§3.1).
type Layer map[Identifier]*Definition

// Stack is an ordered list of layers; resolution for an identifier starts
// from the top of the current scope and searches downward. By convention
// the bottom-most layer pushed by the evaluator/analyzer entry points is
// always the stdlib layer (§3.1, §4.3, §4.4).
//
// Stack.Truncate and Stack.Pushed always copy rather than reuse the
// backing array of s, so that a closure capturing a Stack prefix is never
// at risk of a later, unrelated push silently aliasing into it.
type Stack []Layer

// Lookup searches the stack from ceiling downward (inclusive) for id,
// returning the definition and the index of the layer it was found in.
// Callers use the returned index as a new ceiling for references resolved
// from within that definition, so that shadowing is respected.
func (s Stack) Lookup(ceiling int, id Identifier) (*Definition, int, bool) {
	for i := ceiling; i >= 0; i-- {
		if d, ok := s[i][id]; ok {
			return d, i, true
		}
	}
	return nil, -1, false
}

// Truncate returns the prefix of s up to and including ceiling, copied
// into a fresh backing array.
func (s Stack) Truncate(ceiling int) Stack {
	out := make(Stack, ceiling+1)
	copy(out, s[:ceiling+1])
	return out
}

// Pushed returns a new Stack with layers appended after s, copied into a
// fresh backing array.
func (s Stack) Pushed(layers ...Layer) Stack {
	out := make(Stack, len(s)+len(layers))
	copy(out, s)
	copy(out[len(s):], layers)
	return out
}
