// Package spectrum provides helpers for complex frequency response samples:
// magnitude in linear and dB scale, wrapped and unwrapped phase, and a
// finite-difference group delay for arbitrary frequency grids.
//
// The package does not evaluate transfer functions itself; it operates on
// complex samples produced by dsp/filter/response or an FFT backend.
package spectrum
