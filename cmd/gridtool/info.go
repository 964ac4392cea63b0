package main

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/geom"
)

var infoRegion []int

var infoCmd = &cobra.Command{
	Use:   "info <image.png>",
	Short: "Report size and average color of an image, or a region of it",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("please specify an image file")
		}

		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", args[0], err)
		}

		pm := geom.FromImage(img)
		region := pm.Grid().Bounds()
		if len(infoRegion) == 4 {
			region = geom.Rect(infoRegion[0], infoRegion[1], infoRegion[2], infoRegion[3])
		} else if len(infoRegion) != 0 {
			return fmt.Errorf("--region wants x,y,width,height, got %d values", len(infoRegion))
		}

		avg, err := averageColor(pm.Grid(), region)
		if err != nil {
			return err
		}

		x, y, w, h := region.XYWH()
		fmt.Printf("image:   %dx%d\n", pm.Width(), pm.Height())
		fmt.Printf("region:  (%d, %d) %dx%d\n", x, y, w, h)
		fmt.Printf("average: R=%.3f G=%.3f B=%.3f A=%.3f\n", avg.R, avg.G, avg.B, avg.A)
		return nil
	},
}

// averageColor averages the RGBA cells of the region.
func averageColor(g *geom.Grid[uint8], region geom.Bounds[int]) (geom.RGBA, error) {
	data, err := g.Slice(region)
	if err != nil {
		return geom.RGBA{}, err
	}

	var sum [4]float64
	cells := len(data) / g.Chunk()
	for i := 0; i < len(data); i += g.Chunk() {
		for c := 0; c < 4; c++ {
			sum[c] += float64(data[i+c])
		}
	}

	n := float64(cells) * 255
	return geom.RGBA{R: sum[0] / n, G: sum[1] / n, B: sum[2] / n, A: sum[3] / n}, nil
}

func init() {
	infoCmd.Flags().IntSliceVar(&infoRegion, "region", nil, "region to inspect as x,y,width,height")
	rootCmd.AddCommand(infoCmd)
}
