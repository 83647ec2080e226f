package assets

import (
	"io/fs"
	"testing"

	"bodymap/internal/asset"
	"bodymap/internal/diagram"
	"bodymap/internal/taxonomy"
)

func parseAngle(t *testing.T, angle taxonomy.ViewAngle) *diagram.Document {
	t.Helper()
	src, err := fs.ReadFile(Diagrams(), asset.Key(taxonomy.TemplateSedan, angle))
	if err != nil {
		t.Fatalf("%s: %v", angle, err)
	}
	doc, err := diagram.Parse(src)
	if err != nil {
		t.Fatalf("%s: parse: %v", angle, err)
	}
	return doc
}

// Every embedded sedan diagram must parse and register only known part keys.
func TestEmbeddedSedanDiagrams(t *testing.T) {
	for _, angle := range taxonomy.AllViewAngles {
		doc := parseAngle(t, angle)
		if len(doc.Order) == 0 {
			t.Errorf("%s: no parts registered", angle)
		}
		if doc.ViewBox.IsEmpty() {
			t.Errorf("%s: empty view box", angle)
		}
		for _, key := range doc.Order {
			if !key.Valid() {
				t.Errorf("%s: unknown part id %q", angle, key)
			}
			b, ok := doc.Bounds[key]
			if !ok || b.Width <= 0 || b.Height <= 0 {
				t.Errorf("%s: degenerate bounds for %q: %+v", angle, key, b)
			}
		}
	}
}

func TestSideViewsMirrorPartSets(t *testing.T) {
	left := parseAngle(t, taxonomy.AngleLeftSide)
	right := parseAngle(t, taxonomy.AngleRightSide)
	if len(left.Order) != len(right.Order) {
		t.Errorf("part counts differ: left %d, right %d", len(left.Order), len(right.Order))
	}
}

func TestFrontViewParts(t *testing.T) {
	doc := parseAngle(t, taxonomy.AngleFront)
	for _, key := range []taxonomy.PartKey{
		taxonomy.PartFrontBumper, taxonomy.PartGrille, taxonomy.PartHood,
		taxonomy.PartWindshield, taxonomy.PartLeftHeadlight,
		taxonomy.PartRightHeadlight, taxonomy.PartWheelFrontLeft,
		taxonomy.PartWheelFrontRight,
	} {
		if _, ok := doc.Bounds[key]; !ok {
			t.Errorf("front view missing %q", key)
		}
	}
}
