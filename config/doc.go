// Package config describes a whole simulation in YAML: named materials, the
// two ambient media, the layer stack and the wavelength sweep.
//
//	materials:
//	  glass: {kind: isotropic, n: 1.55}
//	  cnc:
//	    kind: uniaxial
//	    no: 1.51
//	    ne: 1.59
//	    rotations: [{axis: [0, 1, 0], angle_deg: 90}]
//	front: glass
//	back: glass
//	layers:
//	  - cholesteric: {material: cnc, pitch_nm: 300, thickness_nm: 3000, divisions: 30, handedness: left}
//	sweep:
//	  range_nm: {start: 400, stop: 600, points: 201}
//	  incidence_deg: 0
//
// Lengths are in nanometres and angles in degrees; Build converts them to
// metres and radians. Every material name is built once, so layers referring
// to the same name share one *material.Material.
//
// Decode only parses. Validate checks references and shapes. Build validates
// and returns a ready-to-run Setup. Reading files is left to the caller.
package config
