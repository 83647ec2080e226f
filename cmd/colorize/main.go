// Command colorize applies an inspection report to a body diagram and writes
// the colorized markup, optionally rasterized to PNG.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"bodymap/assets"
	"bodymap/internal/asset"
	"bodymap/internal/diagram"
	"bodymap/internal/inspect"
	"bodymap/internal/palette"
	"bodymap/internal/taxonomy"
)

func main() {
	reportPath := flag.String("report", "", "Path to inspection report JSON")
	template := flag.String("template", "sedan", "Body template: sedan, suv, hatchback, coupe, pickup, van")
	angle := flag.String("angle", "front", "View angle: front, rear, left_side, right_side, top")
	diagramPath := flag.String("diagram", "", "Diagram SVG path (default: built-in set)")
	outPath := flag.String("out", "", "Output SVG path (default: stdout)")
	pngPath := flag.String("png", "", "Also rasterize to this PNG path")
	pngWidth := flag.Int("width", 800, "PNG width in pixels")
	highlight := flag.String("highlight", "", "Part key to highlight")
	flag.Parse()

	if *reportPath == "" {
		fmt.Println("Usage: colorize -report <path> [-template sedan] [-angle front] [-out out.svg] [-png out.png]")
		os.Exit(1)
	}

	tpl := taxonomy.CarTemplateType(*template)
	ang := taxonomy.ViewAngle(*angle)
	if !tpl.Valid() || !ang.Valid() {
		fmt.Fprintf(os.Stderr, "Unknown template or angle: %s / %s\n", *template, *angle)
		os.Exit(1)
	}

	data, err := os.ReadFile(*reportPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read report: %v\n", err)
		os.Exit(1)
	}
	report, err := inspect.DecodeReport(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to decode report: %v\n", err)
		os.Exit(1)
	}
	record := report.Unify()

	var src []byte
	if *diagramPath != "" {
		src, err = os.ReadFile(*diagramPath)
	} else {
		loader := asset.NewFSLoader(assets.Diagrams())
		src, err = loader.LoadDiagram(context.Background(), tpl, ang)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load diagram: %v\n", err)
		os.Exit(1)
	}

	pal := palette.New(palette.Overrides{})

	// Structure parse narrows the fill set to registered parts; without it
	// every known part id is attempted.
	parts := taxonomy.AllPartKeys
	doc, err := diagram.Parse(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: structure parse failed, colorizing all known ids: %v\n", err)
	} else {
		parts = doc.Order
	}

	colorizer := diagram.NewColorizer()
	out := colorizer.Colorize(src, record.Fills(parts, pal), taxonomy.PartKey(*highlight))

	if *outPath == "" {
		os.Stdout.Write(out)
	} else if err := os.WriteFile(*outPath, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write SVG: %v\n", err)
		os.Exit(1)
	}

	if *pngPath != "" {
		if err := writePNG(out, *pngPath, *pngWidth); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write PNG: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", *pngPath)
	}
}

func writePNG(markup []byte, path string, width int) error {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(markup))
	if err != nil {
		return err
	}
	ratio := 0.75
	if icon.ViewBox.W > 0 {
		ratio = icon.ViewBox.H / icon.ViewBox.W
	}
	height := int(float64(width) * ratio)
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
