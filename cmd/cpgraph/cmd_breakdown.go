package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/traceforma/cpgraph/attribution"
	"github.com/traceforma/cpgraph/tracepath"
)

func runBreakdown(cmd *cobra.Command, args []string) error {
	archiveFile, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("cpgraph breakdown: %w", err)
	}
	defer archiveFile.Close()

	g, path, _, err := tracepath.Open(archiveFile)
	if err != nil {
		return fmt.Errorf("cpgraph breakdown: %w", err)
	}

	events, err := loadTrace(traceFlag)
	if err != nil {
		return err
	}

	rows := attribution.Breakdown(g, path, events)

	out := cmd.OutOrStdout()
	for _, r := range rows {
		fmt.Fprintf(out, "%-28s %-20s %12s  %s\n", r.EventName, r.Category, time.Duration(r.Weight), r.BoundBy)
	}

	summary := attribution.Summarize(rows)
	fmt.Fprintln(out, "---")
	for _, s := range summary {
		fmt.Fprintf(out, "%-14s %12s  (%d edges)\n", s.BoundBy, time.Duration(s.TotalNS), s.EdgeCount)
	}

	return nil
}
