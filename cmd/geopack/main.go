package main

import (
	"fmt"
	"os"

	kitlog "github.com/go-kit/log"
	"github.com/spf13/cobra"
	"github.com/tsssss/geopack"
)

var (
	cfgFile string
	conf    geopack.Config
	logger  kitlog.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "geopack",
		Short: "Geomagnetic field, coordinate transformations and field line tracing",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			if conf, err = geopack.LoadConfig(cfgFile); err != nil {
				return err
			}
			logger, err = geopack.NewLogger(os.Stderr, conf.Log.Level)
			return err
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "TOML config file (defaults and GEOPACK_* environment otherwise)")

	rootCmd.AddCommand(
		recalcCmd(),
		traceCmd(),
		mgnpCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
