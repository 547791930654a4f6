package area

import (
	"testing"

	"github.com/foliant/xslfo/core/dimen"
	"github.com/stretchr/testify/require"
)

func TestRectContains(t *testing.T) {
	outer := Rect{Origin: dimen.Point{X: 0, Y: 0}, Size: Size{W: 100 * dimen.PT, H: 100 * dimen.PT}}
	inner := Rect{Origin: dimen.Point{X: 10 * dimen.PT, Y: 10 * dimen.PT}, Size: Size{W: 50 * dimen.PT, H: 50 * dimen.PT}}
	require.True(t, outer.Contains(inner))

	escapes := Rect{Origin: dimen.Point{X: 90 * dimen.PT, Y: 10 * dimen.PT}, Size: Size{W: 50 * dimen.PT, H: 10 * dimen.PT}}
	require.False(t, outer.Contains(escapes))
}

func TestBlockAreaContentRect(t *testing.T) {
	b := &BlockArea{
		Base:        Base{Box: Rect{Origin: dimen.Point{X: 0, Y: 0}, Size: Size{W: 200 * dimen.PT, H: 200 * dimen.PT}}},
		Padding:     [4]dimen.DU{Top: 5 * dimen.PT, Right: 5 * dimen.PT, Bottom: 5 * dimen.PT, Left: 5 * dimen.PT},
		BorderWidth: [4]dimen.DU{Top: 1 * dimen.PT, Right: 1 * dimen.PT, Bottom: 1 * dimen.PT, Left: 1 * dimen.PT},
	}
	cr := b.ContentRect()
	require.Equal(t, 6*dimen.PT, cr.Origin.X)
	require.Equal(t, 6*dimen.PT, cr.Origin.Y)
	require.Equal(t, 188*dimen.PT, cr.Size.W)
	require.Equal(t, 188*dimen.PT, cr.Size.H)
}

func TestCheckContainmentFindsEscapingChild(t *testing.T) {
	region := &RegionArea{
		Base:      Base{Box: Rect{Origin: dimen.Point{X: 0, Y: 0}, Size: Size{W: 100 * dimen.PT, H: 100 * dimen.PT}}},
		Reference: "body",
	}
	bad := &BlockArea{
		Base: Base{Box: Rect{Origin: dimen.Point{X: 90 * dimen.PT, Y: 0}, Size: Size{W: 50 * dimen.PT, H: 10 * dimen.PT}}},
	}
	region.Children = []Area{bad}
	page := &PageArea{Regions: []*RegionArea{region}}

	violations := CheckContainment(page)
	require.Len(t, violations, 1)
}

func TestCheckContainmentAllowsExemptFloat(t *testing.T) {
	region := &RegionArea{
		Base:      Base{Box: Rect{Origin: dimen.Point{X: 0, Y: 0}, Size: Size{W: 100 * dimen.PT, H: 100 * dimen.PT}}},
		Reference: "body",
	}
	exempt := &BlockArea{
		Base:   Base{Box: Rect{Origin: dimen.Point{X: 90 * dimen.PT, Y: 0}, Size: Size{W: 50 * dimen.PT, H: 10 * dimen.PT}}},
		Exempt: ExemptFloat,
	}
	region.Children = []Area{exempt}
	page := &PageArea{Regions: []*RegionArea{region}}

	violations := CheckContainment(page)
	require.Empty(t, violations)
}
