package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/traceforma/cpgraph/event"
)

// traceRecord is one line of the newline-delimited JSON trace format this
// loader understands. It is a thin, CLI-only stand-in for the production
// trace-file loader described by the external-collaborator role: enough to
// drive this tool, not a claim to parse every
// vendor's profiler output.
type traceRecord struct {
	Index       uint64  `json:"index"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	TimestampNS int64   `json:"ts_ns"`
	DurationNS  int64   `json:"duration_ns"`
	PID         int64   `json:"pid"`
	TID         int64   `json:"tid"`
	Stream      int64   `json:"stream"`
	Correlation *uint64 `json:"correlation,omitempty"`
}

var categoryByName = map[string]event.Category{
	"host_op":         event.CategoryHostOp,
	"runtime_call":    event.CategoryRuntimeCall,
	"device_kernel":   event.CategoryDeviceKernel,
	"device_memory":   event.CategoryDeviceMemory,
	"device_sync":     event.CategoryDeviceSync,
	"user_annotation": event.CategoryUserAnnotation,
	"other":           event.CategoryOther,
}

func (r traceRecord) toEvent() (event.Event, error) {
	cat, ok := categoryByName[r.Category]
	if !ok {
		return event.Event{}, fmt.Errorf("loadtrace: unknown category %q at event %d", r.Category, r.Index)
	}
	return event.Event{
		Index:       r.Index,
		Name:        r.Name,
		Category:    cat,
		TimestampNS: r.TimestampNS,
		DurationNS:  r.DurationNS,
		PID:         r.PID,
		TID:         r.TID,
		Stream:      r.Stream,
		Correlation: r.Correlation,
	}, nil
}

// chunkSize bounds how many lines one errgroup worker parses before
// handing its batch back, trading a little latency for far fewer channel
// sends on a multi-million-line trace.
const chunkSize = 4096

// loadTrace reads a newline-delimited JSON trace file and returns its
// events in file order. Lines are chunked and parsed concurrently, bounded
// by a semaphore sized to the host's CPU count, then reassembled by the
// chunk's original position so that event order — which the builder
// depends on for its stable timestamp/index sort — survives the fan-out.
func loadTrace(path string) ([]event.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loadtrace: open %s: %w", path, err)
	}
	defer f.Close()

	eg := errgroup.Group{}
	workers := runtime.GOMAXPROCS(0)
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)

	var mu chunkGuard

	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	chunkIndex := 0
	for s.Scan() {
		line := s.Text()
		if line == "" {
			continue
		}
		lines := []string{line}
		for i := 1; i < chunkSize && s.Scan(); i++ {
			if t := s.Text(); t != "" {
				lines = append(lines, t)
			}
		}

		idx := chunkIndex
		chunkIndex++
		sem <- struct{}{}

		eg.Go(func() error {
			defer func() { <-sem }()

			events := make([]event.Event, 0, len(lines))
			for _, l := range lines {
				var rec traceRecord
				if err := json.Unmarshal([]byte(l), &rec); err != nil {
					return fmt.Errorf("loadtrace: parse line: %w", err)
				}
				e, err := rec.toEvent()
				if err != nil {
					return err
				}
				events = append(events, e)
			}

			mu.put(idx, events)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := s.Err(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("loadtrace: scan %s: %w", path, err)
	}

	var out []event.Event
	for _, c := range mu.ordered() {
		out = append(out, c...)
	}
	return out, nil
}

// chunkGuard collects parsed chunks keyed by their original position so the
// caller can reassemble them in file order once every worker has finished.
type chunkGuard struct {
	mu    sync.Mutex
	byIdx map[int][]event.Event
}

func (c *chunkGuard) put(idx int, events []event.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.byIdx == nil {
		c.byIdx = map[int][]event.Event{}
	}
	c.byIdx[idx] = events
}

func (c *chunkGuard) ordered() [][]event.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]int, 0, len(c.byIdx))
	for k := range c.byIdx {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	out := make([][]event.Event, 0, len(keys))
	for _, k := range keys {
		out = append(out, c.byIdx[k])
	}
	return out
}
