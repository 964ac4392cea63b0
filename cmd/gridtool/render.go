package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/geom"
)

// sceneConfig describes a renderable scene: a canvas plus a list of
// colored rectangles, painted in order.
type sceneConfig struct {
	Canvas     canvasConfig `yaml:"canvas"`
	Background string       `yaml:"background"`
	Rects      []rectConfig `yaml:"rects"`
}

type canvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type rectConfig struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Color  string `yaml:"color"`
}

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render <scene.yaml>",
	Short: "Render a YAML scene description to a PNG image",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("please specify a scene file")
		}

		scene, err := loadScene(args[0])
		if err != nil {
			return err
		}

		pm, err := renderScene(scene)
		if err != nil {
			return err
		}

		if err := pm.SavePNG(renderOutput); err != nil {
			return err
		}
		slog.Info("scene rendered", "output", renderOutput,
			"width", pm.Width(), "height", pm.Height(), "rects", len(scene.Rects))
		return nil
	},
}

func loadScene(path string) (*sceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var scene sceneConfig
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if scene.Canvas.Width < 1 || scene.Canvas.Height < 1 {
		return nil, fmt.Errorf("%s: canvas must be at least 1x1, got %dx%d",
			path, scene.Canvas.Width, scene.Canvas.Height)
	}
	return &scene, nil
}

func renderScene(scene *sceneConfig) (*geom.Pixmap, error) {
	pm := geom.NewPixmap(scene.Canvas.Width, scene.Canvas.Height)
	if scene.Background != "" {
		pm.Clear(geom.Hex(scene.Background))
	}

	for i, r := range scene.Rects {
		region := geom.Rect(r.X, r.Y, r.Width, r.Height)
		if err := pm.FillRect(region, geom.Hex(r.Color)); err != nil {
			return nil, fmt.Errorf("rect %d: %w", i, err)
		}
		slog.Debug("rect filled", "index", i,
			"x", r.X, "y", r.Y, "width", r.Width, "height", r.Height, "color", r.Color)
	}

	return pm, nil
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "scene.png", "output PNG path")
	rootCmd.AddCommand(renderCmd)
}
