// Package polar turns amplitude matrices into the named power coefficients
// reported for every wavelength.
//
// Conventions (Fujiwara):
//
//	matrices are indexed [out][in]
//	linear basis:   0 = p, 1 = s;  T_ps is the p power transmitted for s incidence
//	circular basis: 0 = L, 1 = R;  R_LR is the L power reflected for R incidence
//
// A left circular wave has Jones vector (1, i)/√2 in the (p, s) basis, i.e.
// s leads p by +90° when viewed along the propagation direction. Reflection
// reverses the propagation direction, so the reflected basis uses the complex
// conjugate vectors and the handedness of a reflected wave is judged in its
// own frame.
//
// Unpolarized ("n") coefficients average over the two incident linear
// polarizations (T_pn, T_sn, T_nn) or sum over both detected ones (T_np,
// T_ns).
package polar
