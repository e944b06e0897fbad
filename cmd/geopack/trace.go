package main

import (
	"fmt"

	"github.com/go-kit/log/level"
	"github.com/soniakeys/unit"
	"github.com/spf13/cobra"
	"github.com/tsssss/geopack"
)

func traceCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Trace the field lines of a scenario, export them as CSV and summarize them as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := readScenario(path, conf.Trace)
			if err != nil {
				return err
			}
			return runScenario(cmd, sc)
		},
	}
	cmd.Flags().StringVar(&path, "scenario", "scenario.toml", "TOML scenario file")
	return cmd
}

func runScenario(cmd *cobra.Command, sc scenario) error {
	s, c, err := geopack.Recalc(sc.Epoch)
	if err != nil {
		return err
	}
	if sc.Tilt != nil {
		s = s.WithTilt(unit.AngleFromDeg(*sc.Tilt).Rad())
	}
	in, err := geopack.NewInternalModel(sc.Model, s, c)
	if err != nil {
		return err
	}
	tracer := conf.Trace.NewTracer(s, in, nil, geopack.ModelOptions{}, logger)

	starts := make([][]float64, len(sc.Points))
	for i, p := range sc.Points {
		if starts[i], err = p.gsm(s); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
	}
	level.Info(logger).Log("subsys", "trace", "scenario", sc.Name, "epoch", sc.Epoch, "tilt(deg)", unit.Angle(s.Tilt()).Deg(), "lines", len(starts), "workers", conf.Trace.Workers)

	results := tracer.TraceMany(starts, sc.Dir, sc.RLim, sc.R0, conf.Trace.Workers)
	summaries := make([]geopack.TraceSummary, len(results))
	for i, res := range results {
		name := sc.Points[i].Name
		if name == "" {
			name = fmt.Sprintf("%d", i)
		}
		summaries[i] = geopack.NewTraceSummary(name, sc.Model, s, res.Line, res.Err)
		if res.Err != nil {
			level.Warn(logger).Log("subsys", "trace", "line", name, "err", res.Err)
		}
		if res.Line == nil {
			continue
		}
		if err := writeLine(sc.Name, name, res.Line); err != nil {
			return err
		}
	}

	f, err := geopack.CreateExportFile(conf.Output.Dir, sc.Name, "summary", "yaml", conf.Output.Timestamp)
	if err != nil {
		return err
	}
	defer f.Close()
	level.Info(logger).Log("subsys", "trace", "status", "finished", "summary", f.Name())
	return geopack.WriteSummaryYAML(f, summaries)
}

func writeLine(scenario, name string, fl *geopack.FieldLine) error {
	f, err := geopack.CreateExportFile(conf.Output.Dir, scenario, "line-"+name, "csv", conf.Output.Timestamp)
	if err != nil {
		return err
	}
	defer f.Close()
	return geopack.WriteFieldLineCSV(f, fl)
}
