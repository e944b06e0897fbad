package geopack

import (
	"fmt"
	"strings"
)

// Frame identifies a geocentric Cartesian coordinate system.
type Frame uint8

const (
	GEI Frame = iota + 1 // geocentric equatorial inertial
	GEO                  // geographic
	MAG                  // dipole
	SM                   // solar magnetic
	GSM                  // geocentric solar magnetospheric
	GSE                  // geocentric solar ecliptic
)

var frameNames = map[Frame]string{GEI: "GEI", GEO: "GEO", MAG: "MAG", SM: "SM", GSM: "GSM", GSE: "GSE"}

func (f Frame) String() string {
	if n, ok := frameNames[f]; ok {
		return n
	}
	return fmt.Sprintf("Frame(%d)", uint8(f))
}

// ParseFrame returns the frame of the given name, case insensitive.
func ParseFrame(name string) (Frame, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	for f, n := range frameNames {
		if n == name {
			return f, nil
		}
	}
	return 0, domainErr("frame", "unknown frame %q", name)
}

// edge is one pairwise transformation, taken forward from a to b.
type edge struct {
	a, b Frame
	fn   func(*RotationState, []float64, Direction) ([]float64, error)
}

var frameEdges = []edge{
	{GEI, GEO, (*RotationState).GeiGeo},
	{GEO, MAG, (*RotationState).GeoMag},
	{MAG, SM, (*RotationState).MagSm},
	{SM, GSM, (*RotationState).SmGsm},
	{GSM, GSE, (*RotationState).GsmGse},
	{GEO, GSM, (*RotationState).GeoGsm},
}

type hop struct {
	fn  func(*RotationState, []float64, Direction) ([]float64, error)
	dir Direction
}

// framePath returns the shortest chain of pairwise transformations from one frame to another.
func framePath(from, to Frame) ([]hop, error) {
	if _, ok := frameNames[from]; !ok {
		return nil, domainErr("convert", "unknown frame %s", from)
	}
	if _, ok := frameNames[to]; !ok {
		return nil, domainErr("convert", "unknown frame %s", to)
	}
	type visit struct {
		prev Frame
		via  hop
	}
	seen := map[Frame]visit{from: {}}
	queue := []Frame{from}
	for len(queue) > 0 && queue[0] != to {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range frameEdges {
			var next Frame
			var h hop
			switch cur {
			case e.a:
				next, h = e.b, hop{e.fn, Forward}
			case e.b:
				next, h = e.a, hop{e.fn, Inverse}
			default:
				continue
			}
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = visit{cur, h}
			queue = append(queue, next)
		}
	}
	var path []hop
	for f := to; f != from; f = seen[f].prev {
		path = append([]hop{seen[f].via}, path...)
	}
	return path, nil
}

// Convert transforms v from one frame into another by chaining the pairwise
// transformations. Converting a frame into itself returns a copy of v.
func (s *RotationState) Convert(v []float64, from, to Frame) ([]float64, error) {
	if err := checkVec("convert", v, Forward); err != nil {
		return nil, err
	}
	path, err := framePath(from, to)
	if err != nil {
		return nil, err
	}
	out := []float64{v[0], v[1], v[2]}
	for _, h := range path {
		if out, err = h.fn(s, out, h.dir); err != nil {
			return nil, err
		}
	}
	return out, nil
}
