// Command gridtool renders and inspects 2D cell grids from the command line.
package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/gogpu/geom"
)

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   "gridtool",
	Short: "Render and inspect 2D cell grids",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if rootVerbose {
			level = slog.LevelDebug
		}
		logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level: level,
		}))
		slog.SetDefault(logger)
		geom.SetLogger(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}
