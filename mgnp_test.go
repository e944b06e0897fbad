package geopack

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestDynamicPressure(t *testing.T) {
	if pd := DynamicPressure(5, 400); !scalar.EqualWithinAbs(pd, 1.552, 1e-12) {
		t.Fatalf("pressure %f", pd)
	}
	if pd := DynamicPressure(3.2, -1); pd != 3.2 {
		t.Fatalf("pressure %f", pd)
	}
}

func mustT96(t *testing.T, xnPd, vel float64, p []float64) MagnetopausePoint {
	mp, err := T96Magnetopause(xnPd, vel, p)
	if err != nil {
		t.Fatal(err)
	}
	return mp
}

func TestMagnetopauseInvalid(t *testing.T) {
	for _, tc := range []struct {
		xnPd, vel float64
		p         []float64
	}{
		{2, -1, []float64{1, 2}},
		{2, -1, nil},
		{0, -1, []float64{10, 0, 0}},
		{-3, -1, []float64{10, 0, 0}},
		{0, 400, []float64{10, 0, 0}},
		{math.NaN(), -1, []float64{10, 0, 0}},
	} {
		if _, err := T96Magnetopause(tc.xnPd, tc.vel, tc.p); !errors.Is(err, ErrDomain) {
			t.Fatalf("t96 %+v: expected a domain error, got %v", tc, err)
		}
		if _, err := ShueMagnetopause(tc.xnPd, tc.vel, 0, tc.p); !errors.Is(err, ErrDomain) {
			t.Fatalf("shue %+v: expected a domain error, got %v", tc, err)
		}
	}
}

func TestT96Magnetopause(t *testing.T) {
	for _, tc := range []struct {
		p, point []float64
		distance float64
		inside   bool
	}{
		{[]float64{10, 0, 0}, []float64{11.08, 0, 0}, 1.08, true},
		{[]float64{-80, 10, 0}, []float64{-80, 28.554509276119603, 0}, 18.554509276119603, true},
		{[]float64{-80, 40, 0}, []float64{-80, 28.554509276119603, 0}, 11.445490723880397, false},
		{[]float64{12, 0, 0}, []float64{11.08, 0, 0}, 0.92, false},
	} {
		mp := mustT96(t, 2, -1, tc.p)
		if !vectorsEqualWithin(mp.Point, tc.point, 1e-9) {
			t.Fatalf("%v: point %v, expected %v", tc.p, mp.Point, tc.point)
		}
		if !scalar.EqualWithinAbs(mp.Distance, tc.distance, 1e-9) {
			t.Fatalf("%v: distance %f, expected %f", tc.p, mp.Distance, tc.distance)
		}
		if mp.Inside != tc.inside {
			t.Fatalf("%v: inside %v", tc.p, mp.Inside)
		}
	}
	// A higher pressure compresses the magnetopause.
	if mp := mustT96(t, 8, -1, []float64{10, 0, 0}); mp.Point[0] >= 11.08 || mp.Inside {
		t.Fatalf("compressed magnetopause %v", mp)
	}
}

func TestShueMagnetopause(t *testing.T) {
	for _, tc := range []struct {
		xnPd, vel, bz float64
		p, point      []float64
		distance      float64
		inside        bool
	}{
		{2, -1, 0, []float64{50, 0, 0}, []float64{10.251872983146658, 0, 0}, 39.748127016853346, false},
		{2, -1, 0, []float64{0.001, 0, 0}, []float64{5.3759804200384425, 0, 11.276656521293118}, -1, true},
		{5, 400, -3, []float64{3, 4, 5}, []float64{6.412183940625962, 6.595162130876615, 8.243952663595769}, 5.375973829349605, true},
	} {
		mp, err := ShueMagnetopause(tc.xnPd, tc.vel, tc.bz, tc.p)
		if err != nil {
			t.Fatal(err)
		}
		if !vectorsEqualWithin(mp.Point, tc.point, 1e-6) {
			t.Fatalf("%v: point %v, expected %v", tc.p, mp.Point, tc.point)
		}
		if tc.distance > 0 && !scalar.EqualWithinAbs(mp.Distance, tc.distance, 1e-6) {
			t.Fatalf("%v: distance %f, expected %f", tc.p, mp.Distance, tc.distance)
		}
		if mp.Inside != tc.inside {
			t.Fatalf("%v: inside %v", tc.p, mp.Inside)
		}
		// The boundary point lies on the Shue surface.
		pd := DynamicPressure(tc.xnPd, tc.vel)
		r0 := (10.22 + 1.29*math.Tanh(0.184*(tc.bz+8.14))) * math.Pow(pd, -1/6.6)
		α := (0.58 - 0.007*tc.bz) * (1 + 0.024*math.Log(pd))
		r := norm(mp.Point)
		if rm := r0 * math.Pow(2/(1+mp.Point[0]/r), α); !scalar.EqualWithinAbs(r, rm, 1e-3) {
			t.Fatalf("%v: boundary point at r=%f, surface at %f", tc.p, r, rm)
		}
	}
	mp, err := ShueMagnetopause(2, -1, 0, []float64{0, 0, 0})
	if err != nil || !mp.Inside {
		t.Fatalf("origin: %v, %v", mp, err)
	}
}

func magnetopauseGrid() [][]float64 {
	var grid [][]float64
	for _, r := range []float64{2, 4, 6, 20, 25, 30, 40} {
		for θ := 0; θ < 180; θ += 15 {
			for φ := 0; φ < 360; φ += 45 {
				grid = append(grid, spherical2Cartesian([]float64{r, Deg2rad(float64(θ)), Deg2rad(float64(φ))}))
			}
		}
	}
	return grid
}

func TestMagnetopauseAgreement(t *testing.T) {
	grid := magnetopauseGrid()
	for _, pd := range []float64{1, 2, 5, 10, 20} {
		var agree int
		for _, p := range grid {
			shue, err := ShueMagnetopause(pd, -1, 0, p)
			if err != nil {
				t.Fatal(err)
			}
			if shue.Inside == mustT96(t, pd, -1, p).Inside {
				agree++
			}
		}
		if frac := float64(agree) / float64(len(grid)); frac < 0.9 {
			t.Fatalf("pd=%f: the models agree on %.0f%% of the points", pd, 100*frac)
		}
	}
	for _, pd := range []float64{1, 20} {
		if !mustT96(t, pd, -1, []float64{0, 0, 0}).Inside {
			t.Fatalf("pd=%f: origin outside the T96 magnetopause", pd)
		}
		mp, _ := ShueMagnetopause(pd, -1, 0, []float64{50, 0, 0})
		if mp.Inside || mustT96(t, pd, -1, []float64{50, 0, 0}).Inside {
			t.Fatalf("pd=%f: 50 Re sunward inside the magnetopause", pd)
		}
	}
}

func TestShueConverges(t *testing.T) {
	grid := magnetopauseGrid()
	for _, pd := range []float64{0.5, 1, 2, 5, 10, 20, 50} {
		for _, bz := range []float64{-20, -10, -5, 0, 5, 10, 20} {
			for _, p := range grid {
				if _, err := ShueMagnetopause(pd, -1, bz, p); err != nil {
					t.Fatalf("pd=%f bz=%f at %v: %s", pd, bz, p, err)
				}
			}
		}
	}
}
