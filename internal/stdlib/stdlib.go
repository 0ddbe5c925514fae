package stdlib

import "github.com/AksoEo/akso-script-go/internal/core/graph"

// Layer builds the stdlib definition layer (§3.1): one NativeNode per
// built-in name, prepended as the invisible bottom layer of every
// evaluation and analysis stack by the caller (internal/core/eval.Evaluate,
// internal/core/analyze.Analyze/AnalyzeAll).
func Layer() graph.Layer {
	l := make(graph.Layer, len(allEntries))
	for _, e := range allEntries {
		l[graph.Name(e.name)] = &graph.Definition{
			Node: graph.NativeNode{V: e.fn, T: e.typ},
		}
	}
	return l
}

// allEntries is computed once: the registry never depends on anything
// that changes after process start (extension slots are read at call
// time, not at registry-build time).
var allEntries = registry()
