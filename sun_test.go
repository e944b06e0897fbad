package geopack

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"gonum.org/v1/gonum/floats/scalar"
)

// angleDiff returns the difference between two angles wrapped into [-π, π).
func angleDiff(a, b float64) float64 {
	return math.Remainder(a-b, 2*math.Pi)
}

func TestSunPositionMeeus(t *testing.T) {
	const (
		tolSun = 0.02 * math.Pi / 180  // low precision position
		tolGST = 0.005 * math.Pi / 180 // mean sidereal time
	)
	for _, dt := range []time.Time{
		time.Date(1965, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1978, time.June, 21, 12, 30, 0, 0, time.UTC),
		time.Date(1992, time.October, 13, 0, 0, 0, 0, time.UTC), // Meeus example 25.a
		time.Date(2005, time.March, 20, 18, 0, 0, 0, time.UTC),
		time.Date(2017, time.December, 21, 6, 45, 15, 0, time.UTC),
	} {
		sun, err := SunPosition(NewEpoch(dt))
		if err != nil {
			t.Fatal(err)
		}
		jd := julian.TimeToJD(dt)
		α, δ := solar.ApparentEquatorial(jd)
		if d := angleDiff(float64(sun.SRasn), α.Rad()); math.Abs(d) > tolSun {
			t.Fatalf("%s: right ascension off by %g rad", dt, d)
		}
		if d := sun.SDec.Rad() - δ.Rad(); math.Abs(d) > tolSun {
			t.Fatalf("%s: declination off by %g rad", dt, d)
		}
		if d := angleDiff(sun.GST.Rad(), sidereal.Mean(jd).Rad()); math.Abs(d) > tolGST {
			t.Fatalf("%s: sidereal time off by %g rad", dt, d)
		}
		for name, a := range map[string]float64{"gst": sun.GST.Rad(), "slong": sun.SLong.Rad(), "srasn": float64(sun.SRasn)} {
			if a < 0 || a >= 2*math.Pi {
				t.Fatalf("%s: %s=%f outside [0, 2π)", dt, name, a)
			}
		}
		if !scalar.EqualWithinAbs(norm(sun.Direction()), 1, 1e-12) {
			t.Fatal("sun direction is not a unit vector")
		}
	}
}

func TestSunPositionSeasons(t *testing.T) {
	// The declination is signed: positive at the June solstice, negative in December.
	june, _ := SunPosition(Epoch{2001, 172, 12, 0, 0})
	dec, _ := SunPosition(Epoch{2001, 355, 12, 0, 0})
	if june.SDec.Deg() < 23 || dec.SDec.Deg() > -23 {
		t.Fatalf("solstice declinations %f and %f", june.SDec.Deg(), dec.SDec.Deg())
	}
	if d := june.Direction(); d[2] <= 0 {
		t.Fatalf("June sun below the equator: %v", d)
	}
}

func TestSunPositionDomain(t *testing.T) {
	for _, y := range []int{1900, 2100} {
		if _, err := SunPosition(Epoch{y, 1, 0, 0, 0}); !errors.Is(err, ErrDomain) {
			t.Fatalf("%d: expected a domain error, got %v", y, err)
		}
	}
	for _, y := range []int{1901, 2099} {
		if _, err := SunPosition(Epoch{y, 1, 0, 0, 0}); err != nil {
			t.Fatalf("%d: %s", y, err)
		}
	}
}
