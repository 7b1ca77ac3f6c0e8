package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/traceforma/cpgraph/core"
	"github.com/traceforma/cpgraph/tracepath"
)

func runSolve(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("cpgraph solve: %w", err)
	}
	defer f.Close()

	g, path, meta, err := tracepath.Open(f)
	if err != nil {
		return fmt.Errorf("cpgraph solve: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "critical path: %s (built %s)\n", time.Duration(path.Length), meta.CreatedAt)
	fmt.Fprintf(out, "  nodes: %d  edges: %d  events: %d\n", len(path.Nodes), len(path.Edges), len(path.Events))

	// Without the original trace, solve can only bucket by edge category,
	// not by bound_by resource; `cpgraph breakdown` does the full mapping.
	totals := map[core.EdgeCategory]int64{}
	counts := map[core.EdgeCategory]int{}
	for key := range path.Edges {
		edge, ok := g.EdgeBetween(key.From, key.To)
		if !ok {
			continue
		}
		totals[edge.Category] += edge.Weight
		counts[edge.Category]++
	}

	cats := make([]core.EdgeCategory, 0, len(totals))
	for c := range totals {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].Priority() < cats[j].Priority() })

	fmt.Fprintln(out, "  by category:")
	for _, c := range cats {
		fmt.Fprintf(out, "    %-20s %12s  (%d edges)\n", c, time.Duration(totals[c]), counts[c])
	}

	return nil
}
