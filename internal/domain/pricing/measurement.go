package pricing

import (
	"strings"

	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"
)

// ResolveQuantity converts a surface's dimensions into a single quantity in the
// surface's native unit.
//
// Rules per calc mode:
//   - perimeter: 2×(length+width)×height when all three are present; a single
//     wall (length+height only) resolves to length×height.
//   - area: length×width.
//   - linear: linearFeet, or linearFeet×height for fence-like surfaces; when
//     no linear footage was entered, 2×(length+width) approximates trim runs.
//   - unit: count, or count×height×width when the unit has its own face area
//     (doors).
//
// Direct entry wins over every mode. Absent inputs are zero; a negative
// result is clamped to zero so bad input never produces a negative quantity.
func ResolveQuantity(item entities.SurfaceLineItem) float64 {
	d := item.Dimensions
	if d.DirectEntry {
		return clampQuantity(d.DirectValue)
	}

	var q float64
	switch item.CalcMode {
	case entities.CalcModePerimeter:
		switch {
		case d.Length != 0 && d.Width != 0 && d.Height != 0:
			q = 2 * (d.Length + d.Width) * d.Height
		case d.Length != 0 && d.Height != 0:
			q = d.Length * d.Height
		}
	case entities.CalcModeArea:
		if d.Length != 0 && d.Width != 0 {
			q = d.Length * d.Width
		}
	case entities.CalcModeLinear:
		switch {
		case d.LinearFeet != 0:
			q = d.LinearFeet
			if isFenceLike(item.CategoryName) && d.Height != 0 {
				q = d.LinearFeet * d.Height
			}
		case d.Length != 0 || d.Width != 0:
			q = 2 * (d.Length + d.Width)
		}
	case entities.CalcModeUnit:
		if d.Count != 0 {
			q = d.Count
			if d.Height != 0 && d.Width != 0 {
				q = d.Count * d.Height * d.Width
			}
		}
	}
	return clampQuantity(q)
}

func isFenceLike(category string) bool {
	return strings.Contains(strings.ToLower(category), "fence")
}

func clampQuantity(q float64) float64 {
	if q < 0 {
		return 0
	}
	return q
}
