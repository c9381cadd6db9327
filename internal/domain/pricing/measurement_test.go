package pricing

import (
	"testing"

	"github.com/Tiers-Limited/Cadence-Quote-sub009/internal/domain/entities"
)

func TestResolveQuantity(t *testing.T) {
	cases := []struct {
		name string
		item entities.SurfaceLineItem
		want float64
	}{
		{
			name: "perimeter walls",
			item: entities.SurfaceLineItem{
				CategoryName: "Exterior Walls",
				CalcMode:     entities.CalcModePerimeter,
				Dimensions:   entities.Dimensions{Length: 12, Width: 10, Height: 8},
			},
			want: 352, // 2×(12+10)×8
		},
		{
			name: "perimeter single wall",
			item: entities.SurfaceLineItem{
				CalcMode:   entities.CalcModePerimeter,
				Dimensions: entities.Dimensions{Length: 20, Height: 9},
			},
			want: 180,
		},
		{
			name: "perimeter missing height",
			item: entities.SurfaceLineItem{
				CalcMode:   entities.CalcModePerimeter,
				Dimensions: entities.Dimensions{Length: 12, Width: 10},
			},
			want: 0,
		},
		{
			name: "area ceiling",
			item: entities.SurfaceLineItem{
				CalcMode:   entities.CalcModeArea,
				Dimensions: entities.Dimensions{Length: 15, Width: 12},
			},
			want: 180,
		},
		{
			name: "area missing width",
			item: entities.SurfaceLineItem{
				CalcMode:   entities.CalcModeArea,
				Dimensions: entities.Dimensions{Length: 15},
			},
			want: 0,
		},
		{
			name: "linear trim direct footage",
			item: entities.SurfaceLineItem{
				CategoryName: "Trim",
				CalcMode:     entities.CalcModeLinear,
				Dimensions:   entities.Dimensions{LinearFeet: 64},
			},
			want: 64,
		},
		{
			name: "linear fence multiplies height",
			item: entities.SurfaceLineItem{
				CategoryName: "Privacy Fence",
				CalcMode:     entities.CalcModeLinear,
				Dimensions:   entities.Dimensions{LinearFeet: 100, Height: 6},
			},
			want: 600,
		},
		{
			name: "linear non-fence ignores height",
			item: entities.SurfaceLineItem{
				CategoryName: "Baseboards",
				CalcMode:     entities.CalcModeLinear,
				Dimensions:   entities.Dimensions{LinearFeet: 100, Height: 6},
			},
			want: 100,
		},
		{
			name: "linear perimeter fallback",
			item: entities.SurfaceLineItem{
				CategoryName: "Crown Molding",
				CalcMode:     entities.CalcModeLinear,
				Dimensions:   entities.Dimensions{Length: 14, Width: 11},
			},
			want: 50, // 2×(14+11)
		},
		{
			name: "unit plain count",
			item: entities.SurfaceLineItem{
				CategoryName: "Shutters",
				CalcMode:     entities.CalcModeUnit,
				Dimensions:   entities.Dimensions{Count: 8},
			},
			want: 8,
		},
		{
			name: "unit with face area",
			item: entities.SurfaceLineItem{
				CategoryName: "Doors",
				CalcMode:     entities.CalcModeUnit,
				Dimensions:   entities.Dimensions{Count: 3, Height: 7, Width: 3},
			},
			want: 63, // 3×7×3
		},
		{
			name: "unit no count",
			item: entities.SurfaceLineItem{
				CalcMode:   entities.CalcModeUnit,
				Dimensions: entities.Dimensions{Height: 7, Width: 3},
			},
			want: 0,
		},
		{
			name: "direct entry wins over mode",
			item: entities.SurfaceLineItem{
				CalcMode:   entities.CalcModePerimeter,
				Dimensions: entities.Dimensions{DirectEntry: true, DirectValue: 420, Length: 12, Width: 10, Height: 8},
			},
			want: 420,
		},
		{
			name: "negative result clamps to zero",
			item: entities.SurfaceLineItem{
				CalcMode:   entities.CalcModeArea,
				Dimensions: entities.Dimensions{Length: -15, Width: 12},
			},
			want: 0,
		},
		{
			name: "negative direct entry clamps to zero",
			item: entities.SurfaceLineItem{
				Dimensions: entities.Dimensions{DirectEntry: true, DirectValue: -5},
			},
			want: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveQuantity(tc.item)
			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
