// Package cmat provides fixed-size complex linear algebra for the
// transfer-matrix engine: 2x2 Jones matrices, 3x3 dielectric tensors and
// 4x4 Berreman propagators.
//
// What is inside?
//
//	• Value types Vec4, Mat2, Mat3, Mat4 and Mat4x2 (no heap per operation)
//	• Products, sums, scaling, (conjugate) transposes and norms
//	• Gauss–Jordan inverse and two-column solve with partial pivoting
//	• Eigen4: eigenvalues/eigenvectors of a 4x4 matrix
//	    – real input: gonum mat.Eigen
//	    – complex input: characteristic polynomial + Durand–Kerner + adjugate
//	• Expm4: matrix exponential by scaling and squaring
//
// Fixed-size arrays keep dimension mismatches out of the type system and
// let the engine build thousands of slice propagators per wavelength without
// allocating.
//
// Errors are package sentinels (ErrSingular, ErrEigenFailed, ErrNaNInf);
// match them with errors.Is.
package cmat
