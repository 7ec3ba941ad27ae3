// Package zpk holds filters in factored zero/pole/gain form.
//
// The same [ZPK] value describes analog prototypes (s-plane), band
// transformed analog filters and bilinear transformed digital filters
// (z-plane). Values are treated as immutable: transforms return new values
// and never modify their input slices.
package zpk
