package main

import (
	"sort"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/AksoEo/akso-script-go/internal/core/graph"
)

func TestSortedNamesOrdersAndSkipsNonNameKeys(t *testing.T) {
	layer := graph.Layer{
		graph.Name("zeta"):  {Node: graph.NumNode{V: 1}},
		graph.Name("alpha"): {Node: graph.NumNode{V: 2}},
		graph.Name("mu"):    {Node: graph.NumNode{V: 3}},
		graph.NewSymbol():   {Node: graph.NumNode{V: 4}},
	}
	qt.Assert(t, qt.DeepEquals(sortedNames(layer), []string{"alpha", "mu", "zeta"}))
}

func TestSortedNamesEmptyLayer(t *testing.T) {
	qt.Assert(t, qt.HasLen(sortedNames(graph.Layer{}), 0))
}

func TestJoinSortedSetOrdersAndJoins(t *testing.T) {
	got := joinSortedSet(map[string]bool{"b": true, "a": true, "c": true})
	qt.Assert(t, qt.Equals(got, "a, b, c"))
}

func TestJoinSortedSetEmpty(t *testing.T) {
	qt.Assert(t, qt.Equals(joinSortedSet(map[string]bool{}), ""))
}

func TestNewRootCmdRegistersBothSubcommands(t *testing.T) {
	root := newRootCmd()
	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	sort.Strings(names)
	qt.Assert(t, qt.DeepEquals(names, []string{"analyze", "evaluate"}))
}
