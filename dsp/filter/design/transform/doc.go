// Package transform maps normalized analog prototypes to analog band
// filters and discretizes analog filters with the bilinear transform.
//
// All frequencies passed to the band transforms are angular (rad/s). Use
// [Prewarp] to turn a digital cutoff in Hz into the analog frequency that
// the bilinear transform maps back onto it.
package transform
