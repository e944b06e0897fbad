package main

import (
	"fmt"
	"time"

	"github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
	"github.com/spf13/cobra"
	"github.com/tsssss/geopack"
)

func recalcCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "recalc",
		Short: "Print the dipole tilt, dipole axis and Sun position at an epoch",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := time.Now().UTC()
			if at != "" {
				var err error
				if t, err = time.Parse(time.RFC3339, at); err != nil {
					return fmt.Errorf("invalid --time: %w", err)
				}
			}
			e := geopack.NewEpoch(t)
			s, c, err := geopack.Recalc(e)
			if err != nil {
				return err
			}
			sun, err := geopack.SunPosition(e)
			if err != nil {
				return err
			}
			θ0, λ0 := s.DipoleColatLong()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "epoch        %s (JD %.5f)\n", e, e.JD())
			fmt.Fprintf(out, "tilt         %.4f deg\n", unit.Angle(s.Tilt()).Deg())
			fmt.Fprintf(out, "dipole       %.1f nT, colat %.2s lon %.2s\n", c.DipoleMoment(), sexa.FmtAngle(unit.Angle(θ0)), sexa.FmtAngle(unit.Angle(λ0)))
			fmt.Fprintf(out, "gse/gsm      %.4f deg\n", unit.Angle(s.GseGsmAngle()).Deg())
			fmt.Fprintf(out, "mag/sm       %.4f deg (xmut %.3f h)\n", unit.Angle(s.MagSmAngle()).Deg(), s.XMUT())
			fmt.Fprintf(out, "sun          ra %.1s dec %.1s gst %.1s\n", sexa.FmtRA(sun.SRasn), sexa.FmtAngle(sun.SDec), sexa.FmtAngle(sun.GST))
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "time", "", "epoch in RFC 3339 format (defaults to now)")
	return cmd
}
