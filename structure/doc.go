// Package structure assembles a stratified medium: a front half-space, an
// ordered list of layers and a back half-space.
//
// A Structure is immutable after New. It flattens its layers exactly once into
// a slice arena (index-addressable, front first) and records, for every slice,
// the index of the first slice with the same material pointer and thickness.
// The engine uses that representative table to build one propagator per
// distinct slice and reuse it for every repeat. Because nothing mutates after
// construction, one Structure can be evaluated from many goroutines at once.
package structure
