// Package diagram extracts part geometry from SVG body diagrams and
// recolors diagram markup in place. Parsing produces approximate axis-aligned
// bounds per part: good enough for tap targets, with the fallback picker
// covering the rest.
package diagram

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"bodymap/internal/taxonomy"
	"bodymap/pkg/geometry"
)

// Elements tagged with this attribute are treated as interactive parts even
// when their id is not in the current part vocabulary.
const partMarkerAttr = "data-part"

// Footprint assigned to transformed elements whose size cannot be inferred.
// Keeps the part reachable through direct taps near its anchor; the fallback
// picker remains the authoritative path.
const (
	defaultFootprintW = 40.0
	defaultFootprintH = 40.0
)

// Document is the parsed structure of one diagram asset: the declared
// coordinate extent and the approximate bounds of every interactive part.
type Document struct {
	// ViewBox is the native coordinate extent declared by the document.
	ViewBox geometry.Rect

	// Bounds maps each part id to its approximate bounding rectangle in
	// native coordinates. A part absent here is simply not tappable in
	// this view.
	Bounds map[taxonomy.PartKey]geometry.Rect

	// Order records the traversal order in which parts were discovered.
	// Hit-testing resolves overlapping bounds by this order.
	Order []taxonomy.PartKey
}

// Size returns the native width/height of the document.
func (d *Document) Size() geometry.Size {
	return geometry.NewSize(d.ViewBox.Width, d.ViewBox.Height)
}

// Parse extracts part bounds and the declared viewBox from raw diagram
// markup. On malformed markup it returns a document with an empty bounds
// mapping together with a *ParseError; callers degrade to a color-only,
// non-interactive rendering.
func Parse(src []byte) (*Document, error) {
	doc := &Document{Bounds: make(map[taxonomy.PartKey]geometry.Rect)}

	dec := xml.NewDecoder(bytes.NewReader(src))
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return &Document{Bounds: make(map[taxonomy.PartKey]geometry.Rect)}, &ParseError{Err: err}
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		visit(doc, se)
	}
	return doc, nil
}

func visit(doc *Document, se xml.StartElement) {
	attrs := attrMap(se.Attr)

	if se.Name.Local == "svg" && doc.ViewBox.IsEmpty() {
		doc.ViewBox = parseViewBox(attrs)
	}

	id := attrs["id"]
	if id == "" {
		return
	}
	key := taxonomy.PartKey(id)
	if !key.Valid() {
		if _, marked := attrs[partMarkerAttr]; !marked {
			return
		}
	}
	// First bounds definition per id wins.
	if _, exists := doc.Bounds[key]; exists {
		return
	}

	bounds, ok := elementBounds(se.Name.Local, attrs)
	if !ok {
		return
	}
	doc.Bounds[key] = bounds
	doc.Order = append(doc.Order, key)
}

// elementBounds derives an approximate bounding box for one element.
func elementBounds(name string, attrs map[string]string) (geometry.Rect, bool) {
	switch name {
	case "rect", "image":
		w, okW := numAttr(attrs, "width")
		h, okH := numAttr(attrs, "height")
		if !okW || !okH || w <= 0 || h <= 0 {
			return translateFallback(attrs)
		}
		x, _ := numAttr(attrs, "x")
		y, _ := numAttr(attrs, "y")
		return geometry.NewRect(x, y, w, h), true

	case "circle":
		r, ok := numAttr(attrs, "r")
		if !ok || r <= 0 {
			return translateFallback(attrs)
		}
		cx, _ := numAttr(attrs, "cx")
		cy, _ := numAttr(attrs, "cy")
		return geometry.NewRect(cx-r, cy-r, 2*r, 2*r), true

	case "ellipse":
		rx, okX := numAttr(attrs, "rx")
		ry, okY := numAttr(attrs, "ry")
		if !okX || !okY || rx <= 0 || ry <= 0 {
			return translateFallback(attrs)
		}
		cx, _ := numAttr(attrs, "cx")
		cy, _ := numAttr(attrs, "cy")
		return geometry.NewRect(cx-rx, cy-ry, 2*rx, 2*ry), true

	case "path":
		pts := scanCoordinatePairs(attrs["d"])
		if len(pts) == 0 {
			return translateFallback(attrs)
		}
		return geometry.BoundingBox(pts), true

	case "polygon", "polyline":
		pts := scanCoordinatePairs(attrs["points"])
		if len(pts) == 0 {
			return translateFallback(attrs)
		}
		return geometry.BoundingBox(pts), true

	default:
		return translateFallback(attrs)
	}
}

// translateFallback places a fixed default footprint at the element's
// declared translation offset, so the part stays selectable even when its
// precise geometry is unavailable.
func translateFallback(attrs map[string]string) (geometry.Rect, bool) {
	tx, ty, ok := parseTranslate(attrs["transform"])
	if !ok {
		return geometry.Rect{}, false
	}
	return geometry.NewRect(tx, ty, defaultFootprintW, defaultFootprintH), true
}

var translateRe = regexp.MustCompile(`translate\s*\(\s*(-?[0-9.]+)[\s,]*(-?[0-9.]+)?\s*\)`)

func parseTranslate(transform string) (tx, ty float64, ok bool) {
	m := translateRe.FindStringSubmatch(transform)
	if m == nil {
		return 0, 0, false
	}
	tx, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, false
	}
	if m[2] != "" {
		ty, _ = strconv.ParseFloat(m[2], 64)
	}
	return tx, ty, true
}

// numberRe tolerantly matches coordinate-bearing arguments in path data:
// plain decimals, signed values and exponents, separated by commands,
// commas or whitespace.
var numberRe = regexp.MustCompile(`[-+]?[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?`)

// scanCoordinatePairs extracts (x, y) pairs from path or points data.
// Curved path segments yield their control points, so the resulting box is a
// convex approximation of the outline, not an exact fit.
func scanCoordinatePairs(data string) []geometry.Point2D {
	nums := numberRe.FindAllString(data, -1)
	pts := make([]geometry.Point2D, 0, len(nums)/2)
	for i := 0; i+1 < len(nums); i += 2 {
		x, errX := strconv.ParseFloat(nums[i], 64)
		y, errY := strconv.ParseFloat(nums[i+1], 64)
		if errX != nil || errY != nil {
			continue
		}
		pts = append(pts, geometry.NewPoint2D(x, y))
	}
	return pts
}

func parseViewBox(attrs map[string]string) geometry.Rect {
	if vb := attrs["viewBox"]; vb != "" {
		fields := strings.FieldsFunc(vb, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
		if len(fields) == 4 {
			vals := make([]float64, 4)
			ok := true
			for i, f := range fields {
				v, err := strconv.ParseFloat(f, 64)
				if err != nil {
					ok = false
					break
				}
				vals[i] = v
			}
			if ok {
				return geometry.NewRect(vals[0], vals[1], vals[2], vals[3])
			}
		}
	}
	// Fall back to explicit width/height attributes.
	w, okW := numAttr(attrs, "width")
	h, okH := numAttr(attrs, "height")
	if okW && okH {
		return geometry.NewRect(0, 0, w, h)
	}
	return geometry.Rect{}
}

func attrMap(attrs []xml.Attr) map[string]string {
	m := make(map[string]string, len(attrs))
	for _, a := range attrs {
		m[a.Name.Local] = a.Value
	}
	return m
}

// numAttr parses a numeric attribute, tolerating a trailing unit suffix.
func numAttr(attrs map[string]string, name string) (float64, bool) {
	v, ok := attrs[name]
	if !ok {
		return 0, false
	}
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(v, "px")
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
