package archive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/goccy/go-json"

	"github.com/traceforma/cpgraph/core"
)

// Save writes g as a gzip-compressed tar archive to w: nodes.tbl,
// edges.tbl, meta.json, in sorted-name order with zeroed mtime/uid/gid so
// that saving the same graph twice byte-for-byte matches.
func Save(w io.Writer, g *core.Graph, meta Meta) error {
	meta.Magic = Magic
	meta.Version = FormatVersion

	metaBytes, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("archive: marshal meta.json: %w", err)
	}

	edges := g.Edges()
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	files := map[string][]byte{
		"nodes.tbl": encodeNodes(g.Nodes()),
		"edges.tbl": encodeEdges(edges),
		"meta.json": metaBytes,
	}

	gw := gzip.NewWriter(w)
	tw := tar.NewWriter(gw)

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := writeEntry(tw, name, files[name]); err != nil {
			return err
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("archive: close tar writer: %w", err)
	}
	if err := gw.Close(); err != nil {
		return fmt.Errorf("archive: close gzip writer: %w", err)
	}
	return nil
}

func writeEntry(tw *tar.Writer, name string, data []byte) error {
	hdr := &tar.Header{
		Name:    name,
		Size:    int64(len(data)),
		Mode:    0o644,
		ModTime: time.Unix(0, 0),
		Uid:     0,
		Gid:     0,
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("archive: write header %s: %w", name, err)
	}
	if _, err := tw.Write(data); err != nil {
		return fmt.Errorf("archive: write data %s: %w", name, err)
	}
	return nil
}

// Load reconstructs a graph and its Meta from an archive written by Save.
// The restored graph never needs the original parsed event table to be
// solved again; the table is only needed to name events in a breakdown.
func Load(r io.Reader) (*core.Graph, Meta, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, Meta{}, fmt.Errorf("archive: gzip reader: %w", err)
	}
	defer gr.Close()

	tr := tar.NewReader(gr)
	entries := map[string][]byte{}

	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, Meta{}, fmt.Errorf("archive: tar read: %w", err)
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return nil, Meta{}, fmt.Errorf("archive: read %s: %w", hdr.Name, err)
		}
		entries[hdr.Name] = data
	}

	metaBytes, ok := entries["meta.json"]
	if !ok {
		return nil, Meta{}, ErrMissingEntry
	}
	var meta Meta
	if err := json.Unmarshal(metaBytes, &meta); err != nil {
		return nil, Meta{}, fmt.Errorf("archive: decode meta.json: %w", err)
	}
	if meta.Magic != Magic {
		return nil, Meta{}, ErrBadMagic
	}
	if meta.Version != FormatVersion {
		return nil, Meta{}, ErrUnsupportedVersion
	}

	nodesBytes, ok := entries["nodes.tbl"]
	if !ok {
		return nil, Meta{}, ErrMissingEntry
	}
	edgesBytes, ok := entries["edges.tbl"]
	if !ok {
		return nil, Meta{}, ErrMissingEntry
	}

	nodes, err := decodeNodes(nodesBytes)
	if err != nil {
		return nil, Meta{}, err
	}
	edges, err := decodeEdges(edgesBytes)
	if err != nil {
		return nil, Meta{}, err
	}

	g, err := core.Restore(nodes, edges)
	if err != nil {
		return nil, Meta{}, fmt.Errorf("archive: restore graph: %w", err)
	}

	return g, meta, nil
}
