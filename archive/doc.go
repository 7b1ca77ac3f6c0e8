// Package archive saves and restores a core.Graph independent of the
// trace it was built from. A saved graph is a gzip-compressed tar
// archive with three entries — nodes.tbl, edges.tbl, meta.json — laid
// out deterministically (sorted names, zeroed mtime/uid/gid) so that
// saving the same graph twice produces byte-identical archives.
//
// The container format follows
// Mindburn-Labs-helm's export_pack.go: a single tar.Writer wrapped in a
// gzip.Writer, one writeEntry call per file. meta.json is encoded with
// goccy/go-json; nodes.tbl and edges.tbl use fixed-width encoding/binary
// rows, since a JSON object per row would dwarf the payload it describes
// at the node/edge counts this tool targets (10^5-10^6).
package archive
