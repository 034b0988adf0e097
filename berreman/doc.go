// Package berreman implements the 4x4 transfer-matrix method for stratified
// anisotropic media.
//
// Field vector and operator
//
//	Ψ = (Ex, Hy, Ey, −Hx), H scaled by the vacuum impedance Z0
//	dΨ/dz = i·k0·Δ(ε, Kx)·Ψ
//
// Kx = n_front·sin θ is the reduced in-plane wavenumber; it is conserved
// across every interface of the stack, so one Query carries it for all slices.
//
// Per slice of thickness d the propagator is P = exp(i·k0·d·Δ). Four branches
// compute it:
//
//	BranchIsotropic   – scalar tensor at any Kx: two decoupled 2x2 blocks
//	BranchNormal      – Kx = 0: closed form through 2x2 matrix functions
//	BranchEigen       – distinct eigenvalues: V·diag(exp(iφq))·V⁻¹
//	BranchExponential – clustered eigenvalues or singular V: Expm4(iφΔ)
//
// The stack matrix is M = P_N···P_1 (front slice multiplied first). Slices
// sharing a material pointer and thickness reuse one propagator per query.
// The boundary problem
//
//	M·(e_in + r_p·e_p⁻ + r_s·e_s⁻) = t_p·f_p⁺ + t_s·f_s⁺
//
// is solved for both incident polarizations at once, giving the 2x2 amplitude
// matrices T and R indexed [out][in] with 0 = p and 1 = s.
//
// An Engine holds only tolerances; Evaluate keeps its matrices local, so one
// Engine may serve any number of goroutines.
package berreman
