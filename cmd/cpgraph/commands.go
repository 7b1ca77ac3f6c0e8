package main

import (
	"github.com/spf13/cobra"
)

// --- Global flag variables, grouped by the subcommand that owns them. ---
var (
	// build
	iterationFlag string
	outputFlag    string

	// breakdown
	traceFlag string
)

var rootCmd = &cobra.Command{
	Use:   "cpgraph",
	Short: "Critical-path graph analysis for accelerator performance traces",
	Long: `cpgraph turns a flat trace event table into a critical-path graph,
solves the longest path through it, and explains which resource bound
each segment of that path.`,
}

var buildCmd = &cobra.Command{
	Use:   "build <trace.json>",
	Short: "Build a critical-path graph from a trace and write it to an archive",
	Long: `build reads a newline-delimited JSON trace, runs the builder and sync
resolver passes, and writes the resulting graph to an archive file.

  cpgraph build trace.jsonl -o graph.cpg
  cpgraph build trace.jsonl --iteration train_step:3 -o graph.cpg

CPGRAPH_ZERO_WEIGHT_LAUNCH=1 in the environment additionally emits a
zero-weight launch-delay edge from each launch's start node, per the
builder's WithZeroWeightLaunchEdge option.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

var solveCmd = &cobra.Command{
	Use:   "solve <graph.cpg>",
	Short: "Load a graph archive, re-solve its critical path, and print the summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

var breakdownCmd = &cobra.Command{
	Use:   "breakdown <graph.cpg>",
	Short: "Print the per-edge critical-path breakdown, named against the original trace",
	Long: `breakdown loads a graph archive and the trace it was built from, then
prints one line per critical-path edge: the attributed event's name, its
edge category, its weight, and the resource bucket it's bound by.

  cpgraph breakdown graph.cpg --trace trace.jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runBreakdown,
}

func init() {
	buildCmd.Flags().StringVar(&iterationFlag, "iteration", "", "restrict the graph to one instance of a user annotation, as name:instance")
	buildCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "archive path to write (required)")
	_ = buildCmd.MarkFlagRequired("output")

	breakdownCmd.Flags().StringVar(&traceFlag, "trace", "", "trace file the graph was built from (required)")
	_ = breakdownCmd.MarkFlagRequired("trace")

	rootCmd.AddCommand(buildCmd, solveCmd, breakdownCmd)
}
