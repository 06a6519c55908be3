// Package pricing turns item dimensions and list price entries into prices.
// Everything here is pure; catalog access lives in the application layer.
package pricing

import (
	"math"

	"github.com/sonsardina/framing-api/internal/domain/entity"
)

// Size is a canonically ordered pair of whole centimetres, D1 >= D2
type Size struct {
	D1 int
	D2 int
}

// OrderDimensions returns the canonical size of a pair: floor of the larger
// side first, floor of the smaller side second.
func OrderDimensions(a, b float64) Size {
	return Size{
		D1: int(math.Floor(math.Max(a, b))),
		D2: int(math.Floor(math.Min(a, b))),
	}
}

// Area returns the size in square centimetres
func (s Size) Area() int {
	return s.D1 * s.D2
}

// borders returns the horizontal and vertical passe-partout widths
func borders(pp float64, ppd *entity.PPDimensions) (horizontal, vertical float64) {
	if ppd != nil {
		return ppd.Left + ppd.Right, ppd.Up + ppd.Down
	}
	return 2 * pp, 2 * pp
}

// WorkingDimensions returns the visible aperture once the passe-partout is
// subtracted. Results are not clamped; bounds validation rejects them later.
func WorkingDimensions(width, height, pp float64, ppd *entity.PPDimensions) (float64, float64) {
	h, v := borders(pp, ppd)
	return width - h, height - v
}

// TotalDimensions returns the exterior size. Adding the passe-partout border
// back to the working size gives the raw size, so that is the result unless
// an exterior override above zero is set for an axis.
func TotalDimensions(width, height float64, exteriorWidth, exteriorHeight *float64) (float64, float64) {
	if exteriorWidth != nil && *exteriorWidth > 0 {
		width = *exteriorWidth
	}
	if exteriorHeight != nil && *exteriorHeight > 0 {
		height = *exteriorHeight
	}
	return width, height
}

// ItemWorkingSize is WorkingDimensions of an item
func ItemWorkingSize(item *entity.Item) (float64, float64) {
	return WorkingDimensions(item.Width, item.Height, item.PP, item.PPDimensions)
}

// ItemTotalSize is TotalDimensions of an item
func ItemTotalSize(item *entity.Item) (float64, float64) {
	return TotalDimensions(item.Width, item.Height, item.ExteriorWidth, item.ExteriorHeight)
}
