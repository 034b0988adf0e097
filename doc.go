// Package lvoptics computes the optical response of stratified media: stacks
// of homogeneous, twisted and repeated anisotropic layers between two
// isotropic half-spaces, solved with the 4×4 Berreman transfer-matrix method.
//
// 🚀 What is lvoptics?
//
//	A pure-Go simulator that brings together:
//		• Materials: isotropic, uniaxial, biaxial and absorbing media,
//		  dispersive index models (Cauchy, Sellmeier, mixtures), 3D rotations
//		• Layers: homogeneous plates, helicoidal twists, repeated groups,
//		  cholesteric films with an analytic Bragg estimate
//		• Propagation: closed-form and eigen-decomposition propagators with a
//		  matrix-exponential fallback near degeneracy
//		• Polarization: linear, circular and unpolarized power coefficients,
//		  Jones eigenpolarizations
//		• Sweeps: concurrent wavelength scans with per-point failure isolation
//
// Under the hood, everything is organized under these subpackages:
//
//	cmat/      — small fixed-size complex matrices: inverse, solve, expm, eigen
//	material/  — permittivity models, rotations and dielectric tensors
//	layer/     — Homogeneous, Twisted, Repeated and Cholesteric builders
//	structure/ — half-spaces + layers flattened into a slice arena
//	berreman/  — Δ matrix, propagators, boundary solve and Result
//	polar/     — linear ↔ circular conversion and named coefficients
//	sweep/     — spectral sweep orchestrator and Dataset
//	config/    — YAML descriptions of a whole simulation
//
// Quick ASCII example (light travels in +z):
//
//	  front (glass)   │ ╱╲╱╲╱╲ film ╱╲╱╲ │   back (glass)
//	  ──── incident ─▶│    rotating axis   │── transmitted ─▶
//	  ◀── reflected ──│                    │
//
// See examples/ for a runnable cellulose nanocrystal sweep.
//
//	go get github.com/katalvlaran/lvoptics
package lvoptics
