// Command gridview runs an interactive Game of Life demo on a geom grid.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lmittmann/tint"

	"github.com/gogpu/geom"
	"github.com/gogpu/geom/internal/life"
)

func main() {
	var (
		width   = flag.Int("width", 160, "board width in cells")
		height  = flag.Int("height", 120, "board height in cells")
		scale   = flag.Int("scale", 4, "pixels per cell")
		tps     = flag.Int("tps", 15, "generations per second")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		verbose = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		}))
		slog.SetDefault(logger)
		geom.SetLogger(logger)
	}

	sim, err := life.New(*width, *height)
	if err != nil {
		log.Fatalf("creating board: %v", err)
	}
	sim.Seed(*seed)

	g := &game{
		sim:     sim,
		painter: newGridPainter(*width, *height),
		scale:   *scale,
	}

	ebiten.SetWindowSize(*width**scale, *height**scale)
	ebiten.SetWindowTitle("gridview - Game of Life")
	ebiten.SetTPS(*tps)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("running game: %v", err)
	}
}

type game struct {
	sim     *life.Sim
	painter *gridPainter
	scale   int
}

func (g *game) Update() error {
	g.sim.Step()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.painter.blit(screen, g.sim.Cells(), g.scale)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.sim.Size().WH()
	return w * g.scale, h * g.scale
}
