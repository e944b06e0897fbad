package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tsssss/geopack"
)

type boundaries struct {
	Pressure float64                   `yaml:"pressure"`
	T96      geopack.MagnetopausePoint `yaml:"t96"`
	Shue     geopack.MagnetopausePoint `yaml:"shue"`
}

func mgnpCmd() *cobra.Command {
	var pd, vel, bz, x, y, z float64
	cmd := &cobra.Command{
		Use:   "mgnp",
		Short: "Locate a GSM point with respect to the T96 and Shue et al. magnetopauses",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := []float64{x, y, z}
			shue, err := geopack.ShueMagnetopause(pd, vel, bz, p)
			if err != nil {
				return fmt.Errorf("shue magnetopause: %w", err)
			}
			t96, err := geopack.T96Magnetopause(pd, vel, p)
			if err != nil {
				return fmt.Errorf("t96 magnetopause: %w", err)
			}
			b := boundaries{
				Pressure: geopack.DynamicPressure(pd, vel),
				T96:      t96,
				Shue:     shue,
			}
			return geopack.WriteSummaryYAML(cmd.OutOrStdout(), b)
		},
	}
	cmd.Flags().Float64Var(&pd, "pd", 2, "solar wind pressure in nPa (if --vel < 0) or proton density per cc")
	cmd.Flags().Float64Var(&vel, "vel", -1, "solar wind speed in km/s, negative if --pd is the pressure")
	cmd.Flags().Float64Var(&bz, "bz", 0, "IMF Bz in nT")
	cmd.Flags().Float64Var(&x, "x", 10, "GSM x of the observation point in Re")
	cmd.Flags().Float64Var(&y, "y", 0, "GSM y of the observation point in Re")
	cmd.Flags().Float64Var(&z, "z", 0, "GSM z of the observation point in Re")
	return cmd
}
