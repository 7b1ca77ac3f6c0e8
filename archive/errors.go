package archive

import "errors"

// ErrBadMagic is returned when meta.json's magic field is not the CPGRAPH
// magic prefix.
var ErrBadMagic = errors.New("archive: not a cpgraph archive")

// ErrUnsupportedVersion is returned when meta.json names a format version
// this build doesn't know how to read.
var ErrUnsupportedVersion = errors.New("archive: unsupported archive version")

// ErrMissingEntry is returned when a required tar entry is absent.
var ErrMissingEntry = errors.New("archive: required entry missing from pack")
