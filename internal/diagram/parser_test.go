package diagram

import (
	"errors"
	"testing"

	"bodymap/internal/taxonomy"
	"bodymap/pkg/geometry"
)

const sampleSVG = `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400 300">
  <g id="body">
    <rect id="front_bumper" x="10" y="200" width="380" height="40" fill="#eee"/>
    <rect id="hood" x="60" y="120" width="280" height="70" class="panel"/>
    <ellipse id="left_headlight" cx="40" cy="180" rx="20" ry="10"/>
    <circle id="wheel_front_left" cx="80" cy="260" r="25"/>
    <path id="windshield" d="M100,60 L300,60 L280 110 L120 110 Z"/>
    <polygon id="grille" points="150,190 250,190 240,210 160,210"/>
    <g id="left_mirror" transform="translate(30, 100)">
      <path d="M0 0"/>
    </g>
    <rect id="decoration" x="0" y="0" width="5" height="5"/>
    <rect id="badge_custom" data-part="true" x="190" y="95" width="20" height="10"/>
  </g>
</svg>`

func parseSample(t *testing.T) *Document {
	t.Helper()
	doc, err := Parse([]byte(sampleSVG))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return doc
}

func TestParseViewBox(t *testing.T) {
	doc := parseSample(t)
	if doc.ViewBox != geometry.NewRect(0, 0, 400, 300) {
		t.Errorf("viewBox = %+v", doc.ViewBox)
	}
	if doc.Size() != geometry.NewSize(400, 300) {
		t.Errorf("size = %+v", doc.Size())
	}
}

func TestParseRectBounds(t *testing.T) {
	doc := parseSample(t)
	got, ok := doc.Bounds[taxonomy.PartFrontBumper]
	if !ok {
		t.Fatal("front_bumper not extracted")
	}
	if got != geometry.NewRect(10, 200, 380, 40) {
		t.Errorf("front_bumper bounds = %+v", got)
	}
}

func TestParseEllipseAndCircleBounds(t *testing.T) {
	doc := parseSample(t)

	if got := doc.Bounds[taxonomy.PartLeftHeadlight]; got != geometry.NewRect(20, 170, 40, 20) {
		t.Errorf("left_headlight bounds = %+v", got)
	}
	if got := doc.Bounds[taxonomy.PartWheelFrontLeft]; got != geometry.NewRect(55, 235, 50, 50) {
		t.Errorf("wheel_front_left bounds = %+v", got)
	}
}

func TestParsePathBounds(t *testing.T) {
	doc := parseSample(t)
	got, ok := doc.Bounds[taxonomy.PartWindshield]
	if !ok {
		t.Fatal("windshield not extracted")
	}
	if got != geometry.NewRect(100, 60, 200, 50) {
		t.Errorf("windshield bounds = %+v", got)
	}
}

func TestParsePolygonBounds(t *testing.T) {
	doc := parseSample(t)
	got, ok := doc.Bounds[taxonomy.PartGrille]
	if !ok {
		t.Fatal("grille not extracted")
	}
	if got != geometry.NewRect(150, 190, 100, 20) {
		t.Errorf("grille bounds = %+v", got)
	}
}

func TestParseTranslateFallback(t *testing.T) {
	doc := parseSample(t)
	got, ok := doc.Bounds[taxonomy.PartLeftMirror]
	if !ok {
		t.Fatal("left_mirror not extracted")
	}
	want := geometry.NewRect(30, 100, defaultFootprintW, defaultFootprintH)
	if got != want {
		t.Errorf("left_mirror bounds = %+v, want %+v", got, want)
	}
}

func TestParseIgnoresNonPartIDs(t *testing.T) {
	doc := parseSample(t)
	if _, ok := doc.Bounds["decoration"]; ok {
		t.Error("non-part id was extracted")
	}
	if _, ok := doc.Bounds["body"]; ok {
		t.Error("container group id was extracted")
	}
}

func TestParseMarkerTaggedElement(t *testing.T) {
	doc := parseSample(t)
	if _, ok := doc.Bounds["badge_custom"]; !ok {
		t.Error("data-part tagged element was not extracted")
	}
}

func TestParseFirstBoundsWins(t *testing.T) {
	src := `<svg viewBox="0 0 100 100">
	  <rect id="hood" x="0" y="0" width="10" height="10"/>
	  <rect id="hood" x="50" y="50" width="10" height="10"/>
	</svg>`
	doc, err := Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := doc.Bounds[taxonomy.PartHood]; got != geometry.NewRect(0, 0, 10, 10) {
		t.Errorf("hood bounds = %+v, want the first definition", got)
	}
	if len(doc.Order) != 1 {
		t.Errorf("order has %d entries, want 1", len(doc.Order))
	}
}

func TestParseOrderMatchesTraversal(t *testing.T) {
	doc := parseSample(t)
	if len(doc.Order) != len(doc.Bounds) {
		t.Fatalf("order %d entries, bounds %d", len(doc.Order), len(doc.Bounds))
	}
	if doc.Order[0] != taxonomy.PartFrontBumper {
		t.Errorf("first discovered part = %s", doc.Order[0])
	}
}

func TestParseEveryTappablePartHasBounds(t *testing.T) {
	doc := parseSample(t)
	for key, b := range doc.Bounds {
		if b.IsEmpty() {
			t.Errorf("%s has empty bounds %+v", key, b)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	doc, err := Parse([]byte(`<svg viewBox="0 0 10 10"><rect id="hood"`))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !errors.Is(err, ErrMalformed) {
		t.Errorf("error %v does not wrap ErrMalformed", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Errorf("error %T is not a *ParseError", err)
	}
	if doc == nil || len(doc.Bounds) != 0 {
		t.Errorf("malformed input must yield an empty bounds mapping, got %+v", doc)
	}
}

func TestParseViewBoxFallbackToWidthHeight(t *testing.T) {
	doc, err := Parse([]byte(`<svg width="250px" height="125"></svg>`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if doc.ViewBox != geometry.NewRect(0, 0, 250, 125) {
		t.Errorf("viewBox = %+v", doc.ViewBox)
	}
}

func TestCacheReusesDocument(t *testing.T) {
	c := NewCache()
	a, err := c.Parse(taxonomy.TemplateSedan, taxonomy.AngleFront, []byte(sampleSVG))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	b, err := c.Parse(taxonomy.TemplateSedan, taxonomy.AngleFront, []byte(sampleSVG))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if a != b {
		t.Error("unchanged source re-parsed instead of cached")
	}

	// Changed source, same key: recompute.
	changed := sampleSVG + "<!-- rev 2 -->"
	d, err := c.Parse(taxonomy.TemplateSedan, taxonomy.AngleFront, []byte(changed))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d == a {
		t.Error("changed source returned stale document")
	}

	// Different angle is an independent entry.
	e, err := c.Parse(taxonomy.TemplateSedan, taxonomy.AngleRear, []byte(sampleSVG))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if e == d {
		t.Error("distinct views share a cache entry")
	}

	c.Invalidate(taxonomy.TemplateSedan, taxonomy.AngleRear)
	f, err := c.Parse(taxonomy.TemplateSedan, taxonomy.AngleRear, []byte(sampleSVG))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f == e {
		t.Error("invalidated entry was still served")
	}
}
