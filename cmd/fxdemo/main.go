// Command fxdemo renders a shape with bitmap effects to a PNG file.
//
// Effects are given as kind.field=value pairs and can be stored in and
// loaded from a preset database:
//
//	fxdemo -effect dropShadow.distance=8 -effect outerGlow.size=12 -out demo.png
//	fxdemo -load soft -shape ellipse -zoom 4
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"

	"github.com/gogpu/effects"
	"github.com/gogpu/effects/blur"
	"github.com/gogpu/effects/preset"
)

func main() {
	var (
		width   = flag.Int("width", 160, "shape width")
		height  = flag.Int("height", 100, "shape height")
		shape   = flag.String("shape", "rect", "shape: rect or ellipse")
		fill    = flag.String("fill", "#4080c0", "shape color")
		bg      = flag.String("bg", "white", "background color")
		output  = flag.String("out", "fxdemo.png", "output file")
		zoom    = flag.Int("zoom", 1, "pixel zoom factor")
		dbPath  = flag.String("db", defaultDB(), "preset database")
		load    = flag.String("load", "", "start from the named preset")
		save    = flag.String("save", "", "save the effects as a named preset")
		list    = flag.Bool("list", false, "list presets and exit")
		dump    = flag.Bool("dump", false, "print the encoded effect set")
		verbose = flag.Bool("v", false, "debug logging")

		edits  editList
		clears kindList
	)
	flag.Var(&edits, "effect", "kind.field=value to set (repeatable)")
	flag.Var(&clears, "clear", "effect kind to remove (repeatable)")
	flag.Parse()

	if *verbose {
		effects.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ctx := context.Background()
	var store *preset.Store
	if *list || *load != "" || *save != "" {
		var err error
		store, err = preset.Open(ctx, *dbPath)
		if err != nil {
			log.Fatalf("Failed to open presets: %v", err)
		}
		defer store.Close()
	}

	if *list {
		names, err := store.List(ctx)
		if err != nil {
			log.Fatalf("Failed to list presets: %v", err)
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return
	}

	var set effects.Set
	if *load != "" {
		var err error
		if set, err = store.Load(ctx, *load); err != nil {
			log.Fatalf("Failed to load preset: %v", err)
		}
	}
	if err := edits.apply(&set); err != nil {
		log.Fatal(err)
	}
	for _, k := range clears {
		set.Clear(k)
	}

	if *save != "" {
		if err := store.Save(ctx, *save, &set); err != nil {
			log.Fatalf("Failed to save preset: %v", err)
		}
		log.Printf("Saved preset %q (%v)", *save, set.Mask())
	}
	if *dump {
		data, err := set.MarshalBinary()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("% x\n", data)
	}

	fillColor, err := effects.ParseColor(*fill)
	if err != nil {
		log.Fatal(err)
	}
	bgColor, err := effects.ParseColor(*bg)
	if err != nil {
		log.Fatal(err)
	}

	bounds := image.Rect(0, 0, *width, *height)
	src, err := rasterize(*shape, bounds, fillColor)
	if err != nil {
		log.Fatal(err)
	}

	canvas := image.NewRGBA(set.Bounds(bounds).Inset(-4))
	draw.Draw(canvas, canvas.Rect, image.NewUniform(bgColor), image.Point{}, draw.Src)

	dst := blur.FromRGBA(canvas)
	if err := effects.Render(&set, bounds, dst, blur.FromRGBA(src)); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := writePNG(*output, scale(dst.RGBA(), *zoom)); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Rendered %v to %s", set.Mask(), *output)
}

// scale enlarges img by an integer factor without smoothing.
func scale(img *image.RGBA, zoom int) *image.RGBA {
	if zoom <= 1 {
		return img
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*zoom, b.Dy()*zoom))
	draw.NearestNeighbor.Scale(out, out.Rect, img, b, draw.Src, nil)
	return out
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func defaultDB() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "fxdemo-presets.db"
	}
	return filepath.Join(dir, "fxdemo", "presets.db")
}
