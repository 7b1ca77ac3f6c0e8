package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/traceforma/cpgraph/archive"
	"github.com/traceforma/cpgraph/builder"
	"github.com/traceforma/cpgraph/internal/tracelog"
	"github.com/traceforma/cpgraph/syncresolver"
)

func runBuild(cmd *cobra.Command, args []string) error {
	tracePath := args[0]

	sel, err := parseIterationSelector(iterationFlag)
	if err != nil {
		return err
	}

	events, err := loadTrace(tracePath)
	if err != nil {
		return err
	}

	logger := tracelog.New(os.Stderr)

	opts := []builder.Option{builder.WithLogger(logger)}
	if os.Getenv("CPGRAPH_ZERO_WEIGHT_LAUNCH") != "" {
		opts = append(opts, builder.WithZeroWeightLaunchEdge())
	}

	built, err := builder.Build(events, sel, opts...)
	if err != nil {
		return fmt.Errorf("cpgraph build: %w", err)
	}

	if err := syncresolver.Resolve(built.Graph, events, syncresolver.WithLogger(logger)); err != nil {
		return fmt.Errorf("cpgraph build: %w", err)
	}

	fp, err := fingerprintFile(tracePath)
	if err != nil {
		return err
	}

	meta := archive.Meta{
		Rank:                 0,
		CreatedAt:            time.Now().UTC().Format(time.RFC3339),
		SourceFingerprint:    fp,
		IterationAnnotation:  sel.Annotation,
		IterationInstance:    sel.Instance,
		ZeroWeightLaunchEdge: os.Getenv("CPGRAPH_ZERO_WEIGHT_LAUNCH") != "",
		SourceNode:           int(built.Source),
		SinkNode:             int(built.Sink),
	}

	out, err := os.Create(outputFlag)
	if err != nil {
		return fmt.Errorf("cpgraph build: create %s: %w", outputFlag, err)
	}
	defer out.Close()

	if err := archive.Save(out, built.Graph, meta); err != nil {
		return fmt.Errorf("cpgraph build: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s: %d nodes, %d edges\n", outputFlag, built.Graph.NodeCount(), built.Graph.EdgeCount())
	return nil
}

// parseIterationSelector parses the --iteration flag's "name:instance"
// form. An empty string selects the whole trace.
func parseIterationSelector(s string) (builder.IterationSelector, error) {
	if s == "" {
		return builder.IterationSelector{}, nil
	}
	name, instanceStr, ok := strings.Cut(s, ":")
	if !ok {
		return builder.IterationSelector{}, fmt.Errorf("cpgraph: --iteration must be name:instance, got %q", s)
	}
	instance, err := strconv.ParseUint(instanceStr, 10, 64)
	if err != nil {
		return builder.IterationSelector{}, fmt.Errorf("cpgraph: --iteration instance must be a non-negative integer: %w", err)
	}
	return builder.IterationSelector{Annotation: name, Instance: instance}, nil
}

func fingerprintFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("cpgraph: fingerprint %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("cpgraph: fingerprint %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
