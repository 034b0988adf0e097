// Package layer defines the stack building blocks of a stratified medium.
//
// The set of variants is closed:
//
//	Homogeneous — one material, constant through depth
//	Twisted     — a material rotated continuously about the helix axis,
//	              sampled as N homogeneous slices
//	Repeated    — an ordered group of layers repeated n times
//
// Every variant reports its Thickness and can Flatten itself into an ordered
// list of homogeneous Slices; the structure package caches that list once and
// the engine only ever sees slices.
//
// Twisted layers build their rotated slice materials once, at construction,
// so flattening is an allocation-light copy. Repeated groups reuse the very
// same Slice values (and *material.Material pointers) on every repeat, which
// lets the engine compute one propagator per distinct slice.
//
// A helix whose thickness is not a whole number of pitches is two layers: a
// Repeated full pitch followed by a Twisted remainder. Cholesteric builds
// exactly that pair and never hides the split.
package layer
