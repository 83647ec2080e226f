// Command hitprobe parses a body diagram, dumps the registered part bounds,
// and optionally resolves a pointer position against them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"bodymap/assets"
	"bodymap/internal/asset"
	"bodymap/internal/diagram"
	"bodymap/internal/hittest"
	"bodymap/internal/taxonomy"
	"bodymap/pkg/geometry"
)

func main() {
	template := flag.String("template", "sedan", "Body template")
	angle := flag.String("angle", "front", "View angle")
	diagramPath := flag.String("diagram", "", "Diagram SVG path (default: built-in set)")
	x := flag.Float64("x", -1, "Pointer X on the rendered surface")
	y := flag.Float64("y", -1, "Pointer Y on the rendered surface")
	w := flag.Float64("w", 0, "Rendered surface width (default: native)")
	h := flag.Float64("h", 0, "Rendered surface height (default: native)")
	flag.Parse()

	tpl := taxonomy.CarTemplateType(*template)
	ang := taxonomy.ViewAngle(*angle)

	var (
		src []byte
		err error
	)
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

	doc, err := diagram.Parse(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse diagram: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("View box: %.0fx%.0f\n", doc.ViewBox.Width, doc.ViewBox.Height)
	fmt.Printf("Registered parts: %d\n", len(doc.Order))
	for _, key := range doc.Order {
		b := doc.Bounds[key]
		fmt.Printf("  %-22s x=%-7.1f y=%-7.1f w=%-7.1f h=%.1f\n", key, b.X, b.Y, b.Width, b.Height)
	}

	if *x < 0 || *y < 0 {
		return
	}

	resolver := hittest.NewResolver(doc)
	rendered := geometry.Size{Width: *w, Height: *h}
	if rendered.IsEmpty() {
		rendered = doc.Size()
	}

	p := geometry.Point2D{X: *x, Y: *y}
	scale := resolver.Scale(rendered)
	native := resolver.ToNative(p, rendered)
	fmt.Printf("\nPointer (%.1f, %.1f) on %.0fx%.0f surface\n", *x, *y, rendered.Width, rendered.Height)
	fmt.Printf("Scale factor: %.3f\n", scale)
	fmt.Printf("Native point: (%.1f, %.1f)\n", native.X, native.Y)

	if key, ok := resolver.Resolve(p, rendered); ok {
		fmt.Printf("Hit: %s (%s)\n", key, key.Label(taxonomy.LangEN))
	} else {
		fmt.Println("Hit: none")
	}
}
