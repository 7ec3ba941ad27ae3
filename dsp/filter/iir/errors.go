package iir

import "github.com/pkg/errors"

var (
	// ErrInvalidSpec is wrapped by every validation failure. No result
	// accompanies it.
	ErrInvalidSpec = errors.New("iir: invalid filter spec")

	// ErrNumericDegeneracy marks results containing sentinel values: a
	// pole on or outside the unit circle, or response points where
	// |H| or the group delay is undefined.
	ErrNumericDegeneracy = errors.New("iir: numeric degeneracy")

	// ErrRootsNotConverged marks pole or zero sets that are a best-effort
	// approximation.
	ErrRootsNotConverged = errors.New("iir: root finding did not converge")
)
