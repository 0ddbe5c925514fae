package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/AksoEo/akso-script-go/internal/core/eval"
	"github.com/AksoEo/akso-script-go/internal/core/graph"
	"github.com/AksoEo/akso-script-go/internal/stdlib"
)

func newEvaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "evaluate every top-level identifier of a definition layer read from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvaluate(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runEvaluate(in io.Reader, out io.Writer) error {
	layer, err := decodeLayer(in)
	if err != nil {
		return err
	}

	names := sortedNames(layer)
	std := stdlib.Layer()
	for _, name := range names {
		v, err := eval.Evaluate(std, graph.Stack{layer}, graph.Name(name), nil, eval.Options{})
		if err != nil {
			fmt.Fprintf(out, "%s -> error: %v\n", name, err)
			continue
		}
		fmt.Fprintf(out, "%s -> %s\n", name, v.String())
	}
	return nil
}

func decodeLayer(in io.Reader) (graph.Layer, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	var layer graph.Layer
	if err := json.Unmarshal(data, &layer); err != nil {
		return nil, fmt.Errorf("parsing definition layer: %w", err)
	}
	return layer, nil
}

func sortedNames(layer graph.Layer) []string {
	names := make([]string, 0, len(layer))
	for id := range layer {
		if name, ok := id.(graph.Name); ok {
			names = append(names, string(name))
		}
	}
	sort.Strings(names)
	return names
}
