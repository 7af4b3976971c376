package calculator

import (
	"fmt"
	"math"
)

// AlphaRange returns min, min+step, ... up to max inclusive. A positive
// limit caps the number of angles.
func AlphaRange(min, max, step float64, limit int) ([]float64, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("%w: sweep step must be positive, got %g", ErrInvalidInput, step)
	}
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) || max < min {
		return nil, fmt.Errorf("%w: bad sweep range [%g, %g]", ErrInvalidInput, min, max)
	}
	n := int(math.Floor((max-min)/step+1e-9)) + 1
	if limit > 0 && n > limit {
		return nil, fmt.Errorf("%w: sweep has %d angles, limit is %d", ErrInvalidInput, n, limit)
	}
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = min + float64(i)*step
	}
	return angles, nil
}
