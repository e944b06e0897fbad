package geopack

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// WriteFieldLineCSV writes the points of fl as x,y,z,r records (GSM, Re) after a commented header.
func WriteFieldLineCSV(w io.Writer, fl *FieldLine) error {
	if _, err := fmt.Fprintf(w, `# Creation date (UTC): %s
# Records are x, y, z, r. GSM coordinates in Re.
#   Status: %s after %d steps
x,y,z,r
`, time.Now().UTC(), fl.Status, fl.Steps); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	for _, p := range fl.Points {
		rec := make([]string, 4)
		for i, v := range append(p[:3:3], norm(p)) {
			rec[i] = strconv.FormatFloat(v, 'f', 6, 64)
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadFieldLineCSV reads the points written by WriteFieldLineCSV. The status and step count
// are not restored.
func ReadFieldLineCSV(r io.Reader) (*FieldLine, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 4
	fl := &FieldLine{}
	for first := true; ; first = false {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if first && rec[0] == "x" {
			continue
		}
		p := make([]float64, 3)
		for i := range p {
			if p[i], err = strconv.ParseFloat(rec[i], 64); err != nil {
				return nil, fmt.Errorf("field line record %v: %w", rec, err)
			}
		}
		fl.Points = append(fl.Points, p)
	}
	return fl, nil
}

// TraceSummary summarizes a traced field line.
type TraceSummary struct {
	Name   string    `yaml:"name"`
	Epoch  string    `yaml:"epoch"`
	Model  string    `yaml:"model"`
	Start  []float64 `yaml:"start"`
	End    []float64 `yaml:"end"`
	Status string    `yaml:"status"`
	Steps  int       `yaml:"steps"`
	Length float64   `yaml:"length"` // along the line, in Re
	// Footpoint geographic latitude and east longitude in degrees, for lines ending on r0.
	FootLat *float64 `yaml:"foot_lat,omitempty"`
	FootLon *float64 `yaml:"foot_lon,omitempty"`
	Error   string   `yaml:"error,omitempty"`
}

// NewTraceSummary summarizes fl, traced at the state s. err is the error of the trace, if any.
func NewTraceSummary(name, model string, s *RotationState, fl *FieldLine, err error) TraceSummary {
	sum := TraceSummary{Name: name, Epoch: s.Epoch().String(), Model: model}
	if err != nil {
		sum.Error = err.Error()
	}
	if fl == nil || len(fl.Points) == 0 {
		return sum
	}
	sum.Start = fl.Points[0]
	sum.End = fl.Last()
	sum.Status = fl.Status.String()
	sum.Steps = fl.Steps
	for i := 1; i < len(fl.Points); i++ {
		sum.Length += distance(fl.Points[i-1], fl.Points[i])
	}
	if fl.Status == HitInnerBoundary {
		if geo, err := s.GeoGsm(sum.End, Inverse); err == nil {
			sph := cartesian2Spherical(geo)
			lat := 90 - sph[1]/deg2rad
			lon := Rad2deg(sph[2])
			sum.FootLat, sum.FootLon = &lat, &lon
		}
	}
	return sum
}

// WriteSummaryYAML writes v, e.g. a TraceSummary or MagnetopausePoint, as YAML.
func WriteSummaryYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// CreateExportFile creates the file dir/<prefix>-<name>.<ext>, stamped with the current
// time if requested. The caller must close it.
func CreateExportFile(dir, prefix, name, ext string, stamped bool) (*os.File, error) {
	filename := fmt.Sprintf("%s-%s", prefix, name)
	if stamped {
		t := time.Now()
		filename = fmt.Sprintf("%s-%d-%02d-%02dT%02d.%02d.%02d", filename, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.Create(filepath.Join(dir, filename+"."+ext))
}

