package archive

// Magic identifies a cpgraph archive; it is written as the Version field's
// sibling inside meta.json rather than as raw leading bytes, since the
// container itself is a standard tar.gz that other tools should still be
// able to open.
const Magic = "CPGRAPH\x00"

// FormatVersion is the current meta.json schema version.
const FormatVersion uint16 = 1

// Meta is the build configuration and provenance recorded alongside a
// saved graph.
type Meta struct {
	Magic     string `json:"magic"`
	Version   uint16 `json:"version"`
	Rank      int    `json:"rank"`
	CreatedAt string `json:"created_at"`

	SourceFingerprint string `json:"source_fingerprint"`

	IterationAnnotation string `json:"iteration_annotation,omitempty"`
	IterationInstance   uint64 `json:"iteration_instance,omitempty"`

	ZeroWeightLaunchEdge bool     `json:"zero_weight_launch_edge"`
	DataLoadCategories   []string `json:"data_load_categories,omitempty"`

	// SourceNode and SinkNode record the endpoints longestpath.Solve was
	// run between, so that a caller which reloads the graph can re-solve
	// it without re-running the builder, and get back the identical
	// critical edge set.
	SourceNode int `json:"source_node"`
	SinkNode   int `json:"sink_node"`
}
