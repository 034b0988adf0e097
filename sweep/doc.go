// Package sweep runs the engine over a list of wavelengths and collects a
// Dataset of named power coefficients.
//
// Every wavelength is an independent unit of work: it reads the immutable
// Structure and writes exactly one pre-allocated slot of the result, so the
// Dataset order is the input order whatever the scheduling. Workers pull the
// next unit index from a shared counter.
//
// Failure policy:
//
//	configuration errors (empty list, nil structure, bad wavelength)
//	    → Run fails before any work starts
//	numerical errors of one wavelength
//	    → recorded in that Entry (EntryError); the sweep continues
//	    → with WithStrict, the first one stops the sweep and is returned
//	context cancellation
//	    → checked between units; Run returns ctx.Err()
//
// Logging goes through log/slog and is silent unless WithLogger is given.
package sweep
