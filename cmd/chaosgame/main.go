// Command chaosgame renders a fractal description to a PNG file.
//
// A description comes from a built-in preset or a description file:
//
//	chaosgame -preset sierpinski -steps 1000000 -o sierpinski.png
//	chaosgame -file fern.txt -width 800 -height 1200 -o fern.png
//	chaosgame -mode explore -julia=-0.835,0.2321 -iterations 128 -o julia.png
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/stewi1014/chaosgame"
	"github.com/stewi1014/chaosgame/linalg"
	"github.com/stewi1014/chaosgame/render"
	"github.com/stewi1014/chaosgame/transforms"
)

var (
	preset     = flag.String("preset", "", "built-in fractal to render (see -list)")
	file       = flag.String("file", "", "description file to render")
	julia      = flag.String("julia", "", "explore the Julia constant \"re,im\" instead of a preset or file")
	list       = flag.Bool("list", false, "list built-in presets and exit")
	mode       = flag.String("mode", "chaos", "rendering mode: chaos or explore")
	steps      = flag.Int("steps", 1_000_000, "chaos mode: number of steps to run")
	iterations = flag.Int("iterations", chaosgame.DefaultIterations, "explore mode: iteration cap")
	width      = flag.Int("width", 800, "canvas width in pixels")
	height     = flag.Int("height", 600, "canvas height in pixels")
	scale      = flag.Int("scale", 1, "upscale the output by this factor")
	seed       = flag.Int64("seed", 0, "random seed for chaos mode, 0 for time-seeded")
	out        = flag.String("o", "fractal.png", "output PNG file")
	saveDesc   = flag.String("save-description", "", "also write the description to this file")
	verbose    = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run() error {
	if *list {
		for _, p := range chaosgame.Presets() {
			fmt.Println(p.Name)
		}
		return nil
	}
	if *verbose {
		chaosgame.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	desc, err := description()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var img image.Image
	switch *mode {
	case "chaos":
		img, err = runChaos(ctx, desc)
	case "explore":
		img, err = runExplore(ctx, desc)
	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		return err
	}

	if *scale > 1 {
		img = render.Scale(img, *width**scale, *height**scale)
	}
	if err := writePNG(*out, img); err != nil {
		return err
	}
	log.Printf("rendered %s", *out)

	if *saveDesc != "" {
		if err := writeDescription(*saveDesc, desc); err != nil {
			return err
		}
		log.Printf("description saved to %s", *saveDesc)
	}
	return nil
}

func description() (*chaosgame.Description, error) {
	switch {
	case *julia != "":
		c, err := parseJulia(*julia)
		if err != nil {
			return nil, err
		}
		*mode = "explore"
		return chaosgame.NewDescription(
			linalg.Vector2D{X: -1.6, Y: -1},
			linalg.Vector2D{X: 1.6, Y: 1},
			[]transforms.Transform2D{transforms.ExploreJulia{C: c}},
		)

	case *file != "":
		f, err := os.Open(*file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		desc, err := chaosgame.ReadDescription(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", *file, err)
		}
		return desc, nil

	case *preset != "":
		p, ok := chaosgame.LookupPreset(*preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset %q, try -list", *preset)
		}
		return p.New(), nil

	default:
		return nil, fmt.Errorf("one of -preset, -file or -julia is required")
	}
}

func parseJulia(s string) (linalg.Complex, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return linalg.Complex{}, fmt.Errorf("-julia wants \"re,im\", got %q", s)
	}
	re, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return linalg.Complex{}, fmt.Errorf("-julia: %w", err)
	}
	im, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return linalg.Complex{}, fmt.Errorf("-julia: %w", err)
	}
	return linalg.Complex{Re: re, Im: im}, nil
}

func runChaos(ctx context.Context, desc *chaosgame.Description) (image.Image, error) {
	var opts []chaosgame.ChaosOption
	if *seed != 0 {
		opts = append(opts, chaosgame.WithRandom(rand.New(rand.NewSource(*seed))))
	}

	game, err := chaosgame.NewChaosGame(desc, *width, *height, opts...)
	if err != nil {
		return nil, err
	}
	if err := game.RunSteps(ctx, *steps); err != nil {
		return nil, err
	}
	return render.Grayscale(game.Canvas()), nil
}

func runExplore(ctx context.Context, desc *chaosgame.Description) (image.Image, error) {
	game, err := chaosgame.NewExploreGame(desc, *width, *height,
		chaosgame.WithIterations(*iterations))
	if err != nil {
		return nil, err
	}
	if err := game.Render(ctx); err != nil {
		return nil, err
	}
	return render.Grayscale(game.Canvas()), nil
}

func writePNG(name string, img image.Image) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeDescription(name string, desc *chaosgame.Description) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := chaosgame.WriteDescription(f, desc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
