package main

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/unit"
	"github.com/spf13/viper"
	"github.com/tsssss/geopack"
)

const defaultStartR = 1.01

// scenario is a set of field lines to trace at one epoch.
type scenario struct {
	Name   string
	Epoch  geopack.Epoch
	Model  string
	Dir    float64
	RLim   float64
	R0     float64
	Tilt   *float64 // degrees, overrides the tilt of the epoch
	Points []startPoint
}

// startPoint is either Cartesian in Frame, or geographic latitude and longitude in degrees
// at the geocentric distance R (default 1.01 Re, just outside the usual inner boundary).
type startPoint struct {
	Name  string    `mapstructure:"name"`
	Frame string    `mapstructure:"frame"`
	XYZ   []float64 `mapstructure:"xyz"`
	Lat   *float64  `mapstructure:"lat"`
	Lon   *float64  `mapstructure:"lon"`
	R     float64   `mapstructure:"r"`
}

// readScenario reads a TOML scenario, using the trace configuration for unset limits.
func readScenario(path string, tc geopack.TraceConfig) (scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return scenario{}, fmt.Errorf("reading scenario %s: %w", path, err)
	}
	v.SetDefault("scenario.model", tc.Model)
	v.SetDefault("scenario.dir", 1.0)
	v.SetDefault("scenario.rlim", tc.RLim)
	v.SetDefault("scenario.r0", tc.R0)

	sc := scenario{
		Name:  v.GetString("scenario.name"),
		Model: v.GetString("scenario.model"),
		Dir:   v.GetFloat64("scenario.dir"),
		RLim:  v.GetFloat64("scenario.rlim"),
		R0:    v.GetFloat64("scenario.r0"),
	}
	if sc.Name == "" {
		sc.Name = "scenario"
	}
	t, err := time.Parse(time.RFC3339, v.GetString("scenario.time"))
	if err != nil {
		return scenario{}, fmt.Errorf("scenario.time: %w", err)
	}
	sc.Epoch = geopack.NewEpoch(t)
	if v.IsSet("scenario.tilt") {
		ψ := v.GetFloat64("scenario.tilt")
		sc.Tilt = &ψ
	}
	if err := v.UnmarshalKey("points", &sc.Points); err != nil {
		return scenario{}, fmt.Errorf("points: %w", err)
	}
	if len(sc.Points) == 0 {
		return scenario{}, fmt.Errorf("scenario %s has no start points", path)
	}
	return sc, nil
}

// gsm returns the GSM position of the start point.
func (p startPoint) gsm(s *geopack.RotationState) ([]float64, error) {
	if p.Lat != nil || p.Lon != nil {
		if p.Lat == nil || p.Lon == nil {
			return nil, fmt.Errorf("point %s: lat and lon go together", p.Name)
		}
		r := p.R
		if r == 0 {
			r = defaultStartR
		}
		θ := math.Pi/2 - degrees(*p.Lat)
		geo, err := geopack.SphCar([]float64{r, θ, degrees(*p.Lon)}, geopack.Forward)
		if err != nil {
			return nil, err
		}
		return s.GeoGsm(geo, geopack.Forward)
	}
	frame := geopack.GSM
	if p.Frame != "" {
		var err error
		if frame, err = geopack.ParseFrame(p.Frame); err != nil {
			return nil, err
		}
	}
	return s.Convert(p.XYZ, frame, geopack.GSM)
}

// degrees converts decimal degrees into radians.
func degrees(deg float64) float64 {
	return unit.AngleFromDeg(deg).Rad()
}
