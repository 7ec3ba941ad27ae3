package prototype

import (
	"github.com/pkg/errors"

	"github.com/cwbudde/algo-filterscope/dsp/core"
	"github.com/cwbudde/algo-filterscope/dsp/filter/zpk"
)

// MaxOrder is the highest supported prototype order.
const MaxOrder = 12

// ErrInvalidParams is wrapped by every parameter validation failure.
var ErrInvalidParams = errors.New("prototype: invalid parameters")

// Params holds the inputs shared by all families. Fields a family does not
// use are ignored.
type Params struct {
	Order            int
	PassbandRippleDB float64
	StopbandAttenDB  float64
	BesselNorm       BesselNorm
}

// Generator builds the normalized prototype for one family.
type Generator func(Params) (zpk.ZPK, error)

var generators = [numFamilies]Generator{
	FamilyButterworth: Butterworth,
	FamilyChebyshev1:  Chebyshev1,
	FamilyChebyshev2:  Chebyshev2,
	FamilyElliptic:    Elliptic,
	FamilyBessel:      Bessel,
}

// New returns the analog prototype of the given family.
//
// A Bessel prototype may come back together with an error wrapping
// polyroot.ErrNotConverged; the prototype is then the best available
// approximation and still usable.
func New(f Family, p Params) (zpk.ZPK, error) {
	if !f.Valid() {
		return zpk.ZPK{}, errors.Wrapf(ErrInvalidParams, "unknown design family %d", int(f))
	}
	return generators[f](p)
}

func validateOrder(order int) error {
	if order < 1 || order > MaxOrder {
		return errors.Wrapf(ErrInvalidParams, "order %d outside [1,%d]", order, MaxOrder)
	}
	return nil
}

func validateDB(name string, v float64) error {
	if !(v > 0) || !core.IsFinite(v) {
		return errors.Wrapf(ErrInvalidParams, "%s must be a positive finite dB value: %g", name, v)
	}
	return nil
}

// gainFromRoots returns Re(prod(-p) / prod(-z)), the gain giving unity
// magnitude at s = 0.
func gainFromRoots(zeros, poles []complex128) float64 {
	num := complex(1, 0)
	for _, p := range poles {
		num *= -p
	}
	den := complex(1, 0)
	for _, z := range zeros {
		den *= -z
	}
	return real(num / den)
}
