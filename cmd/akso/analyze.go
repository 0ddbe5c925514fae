package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/AksoEo/akso-script-go/internal/core/adt"
	"github.com/AksoEo/akso-script-go/internal/core/analyze"
	"github.com/AksoEo/akso-script-go/internal/core/graph"
	"github.com/AksoEo/akso-script-go/internal/stdlib"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "analyze every top-level identifier of a definition layer read from stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runAnalyze(in io.Reader, out io.Writer) error {
	layer, err := decodeLayer(in)
	if err != nil {
		return err
	}

	std := stdlib.Layer()
	results := analyze.AnalyzeAll(std, graph.Stack{layer}, nil)

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		res := results[name]
		if !res.Valid {
			fmt.Fprintf(out, "%s :: invalid: %s (%s)\n", name, res.Err.Kind, res.Err.Error())
			continue
		}
		fmt.Fprintf(out, "%s :: %s\n", name, adt.Signature(res.Type))
		fmt.Fprintf(out, "  tags: %s\n", joinSortedSet(res.DefTypes))
		fmt.Fprintf(out, "  stdlib: %s\n", joinSortedSet(res.StdUsage))
	}
	return nil
}

func joinSortedSet(m map[string]bool) string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
