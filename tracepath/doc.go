// Package tracepath composes builder, syncresolver, longestpath, and
// attribution into the single call a CLI or notebook wants: given a flat
// event table, produce the critical path and its bound-by breakdown.
//
// It also composes archive so that an Analyze result can be saved and
// later reloaded without re-running the builder or resolver passes.
package tracepath
