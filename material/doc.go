// Package material models dielectric media for the transfer-matrix engine.
//
// A Material owns an IndexModel (principal refractive indices as a function
// of vacuum wavelength) and an explicit orientation Rotation. The canonical
// tensor diag(nx², ny², nz²) and the rotation stay separate: TensorAt returns
// both, and Tensor.Matrix composes R·diag·Rᵀ on demand.
//
// Materials are immutable and shared by pointer across layers, slices and
// concurrent sweeps. Rotated never mutates the receiver.
//
//	cnc, _ := material.NewUniaxial(1.51, 1.59)            // optic axis along z
//	tilted, _ := cnc.Rotated(material.RotationAbout(material.Ey, math.Pi/2))
//	tensor, _ := tilted.TensorAt(550e-9)
//	eps := tensor.Matrix()                                // 3x3 complex
//
// Wavelengths are in metres throughout the module. Dispersion formulas that
// are conventionally written in micrometres (Cauchy, Sellmeier) convert
// internally.
package material
