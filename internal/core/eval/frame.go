package eval

import "github.com/AksoEo/akso-script-go/internal/core/graph"

// Cache memoizes evaluated values for the definitions that live in a
// single layer. Cache key is definition-node identity, per §3.4.
type Cache map[*graph.Definition]Value

// Frame pairs a Stack with one Cache per layer, index for index. Entering
// a function body pushes two fresh layers (a synthetic parameter layer
// and the function's body layer) and two fresh, empty caches; every layer
// below that — the function's lexical closure — keeps sharing the same
// Cache objects across every activation, so a stable outer definition is
// evaluated at most once per top-level Evaluate call while two recursive
// activations of the same function never collide over the same AST node
// (§4.3's "Caching rule").
type Frame struct {
	Stack   graph.Stack
	Caches  []Cache
	Ceiling int
}

// newFrame builds the initial frame for a top-level Evaluate call: one
// empty cache per layer.
func newFrame(stack graph.Stack) Frame {
	caches := make([]Cache, len(stack))
	for i := range caches {
		caches[i] = Cache{}
	}
	return Frame{Stack: stack, Caches: caches, Ceiling: len(stack) - 1}
}

// pushed returns a new Frame with two extra layers (param, body) and two
// fresh caches appended, used when applying a UserFunc. The receiver's
// own Stack/Caches are reused by reference for indices below the push —
// exactly the sharing the caching rule above relies on.
func (f Frame) pushed(param, body graph.Layer) Frame {
	stack := f.Stack.Pushed(param, body)
	caches := make([]Cache, len(f.Caches), len(f.Caches)+2)
	copy(caches, f.Caches)
	caches = append(caches, Cache{}, Cache{})
	return Frame{Stack: stack, Caches: caches, Ceiling: len(stack) - 1}
}

func (f Frame) get(foundIdx int, def *graph.Definition) (Value, bool) {
	v, ok := f.Caches[foundIdx][def]
	return v, ok
}

func (f Frame) set(foundIdx int, def *graph.Definition, v Value) {
	f.Caches[foundIdx][def] = v
}
