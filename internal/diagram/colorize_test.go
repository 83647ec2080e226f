package diagram

import (
	"bytes"
	"strings"
	"testing"

	"bodymap/internal/taxonomy"
)

const colorizeSVG = `<svg viewBox="0 0 400 300">
  <rect id="front_bumper" x="10" y="200" width="380" height="40" fill="#eeeeee" class="panel"/>
  <rect id="hood" x="60" y="120" width="280" height="70" transform="translate(0,0)"/>
  <path id="windshield" d="M100,60 L300,60 L280 110 L120 110 Z" fill-opacity="0.9"/>
  <ellipse id="left_headlight" cx="40" cy="180" rx="20" ry="10" fill='gray'/>
</svg>`

func TestColorizeReplacesExistingFill(t *testing.T) {
	c := NewColorizer()
	out := string(c.Colorize([]byte(colorizeSVG),
		map[taxonomy.PartKey]string{taxonomy.PartFrontBumper: "#4caf50"}, ""))

	if !strings.Contains(out, `id="front_bumper" x="10" y="200" width="380" height="40" fill="#4caf50" class="panel"`) {
		t.Errorf("fill not replaced in place:\n%s", out)
	}
	if strings.Contains(out, "#eeeeee") {
		t.Error("old fill value survived")
	}
}

func TestColorizeInsertsMissingFill(t *testing.T) {
	c := NewColorizer()
	out := string(c.Colorize([]byte(colorizeSVG),
		map[taxonomy.PartKey]string{taxonomy.PartHood: "#f44336"}, ""))

	if !strings.Contains(out, `id="hood" x="60" y="120" width="280" height="70" transform="translate(0,0)" fill="#f44336"/>`) {
		t.Errorf("fill not inserted:\n%s", out)
	}
}

func TestColorizeNormalizesSingleQuotedFill(t *testing.T) {
	c := NewColorizer()
	out := string(c.Colorize([]byte(colorizeSVG),
		map[taxonomy.PartKey]string{taxonomy.PartLeftHeadlight: "#bdbdbd"}, ""))

	if !strings.Contains(out, `fill="#bdbdbd"`) {
		t.Errorf("single-quoted fill not replaced:\n%s", out)
	}
	if strings.Contains(out, `fill='gray'`) {
		t.Error("old single-quoted fill survived")
	}
}

func TestColorizePreservesUnrelatedAttributes(t *testing.T) {
	c := NewColorizer()
	out := string(c.Colorize([]byte(colorizeSVG), map[taxonomy.PartKey]string{
		taxonomy.PartFrontBumper: "#4caf50",
		taxonomy.PartHood:        "#f44336",
		taxonomy.PartWindshield:  "#2196f3",
	}, taxonomy.PartHood))

	// Geometry, class, transform and fill-opacity must survive untouched.
	for _, want := range []string{
		`x="10" y="200" width="380" height="40"`,
		`class="panel"`,
		`transform="translate(0,0)"`,
		`fill-opacity="0.9"`,
		`d="M100,60 L300,60 L280 110 L120 110 Z"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("attribute %q perturbed:\n%s", want, out)
		}
	}
}

func TestColorizeIdempotent(t *testing.T) {
	c := NewColorizer()
	fills := map[taxonomy.PartKey]string{
		taxonomy.PartFrontBumper: "#4caf50",
		taxonomy.PartHood:        "#f44336",
		taxonomy.PartWindshield:  "#2196f3",
	}

	once := c.Colorize([]byte(colorizeSVG), fills, taxonomy.PartWindshield)
	twice := c.Colorize(once, fills, taxonomy.PartWindshield)
	if !bytes.Equal(once, twice) {
		t.Errorf("colorize is not idempotent:\n---\n%s\n---\n%s", once, twice)
	}
}

func TestColorizeHighlightStrokeOnlyOnHighlightedPart(t *testing.T) {
	c := NewColorizer()
	fills := map[taxonomy.PartKey]string{
		taxonomy.PartFrontBumper: "#4caf50",
		taxonomy.PartHood:        "#f44336",
	}
	out := string(c.Colorize([]byte(colorizeSVG), fills, taxonomy.PartHood))

	if strings.Count(out, `stroke="`+c.HighlightStroke+`"`) != 1 {
		t.Errorf("expected exactly one highlight stroke:\n%s", out)
	}
	if strings.Count(out, `stroke-width="`+c.HighlightWidth+`"`) != 1 {
		t.Errorf("expected exactly one highlight stroke-width:\n%s", out)
	}

	hoodTag := out[strings.Index(out, `id="hood"`):]
	hoodTag = hoodTag[:strings.Index(hoodTag, ">")]
	if !strings.Contains(hoodTag, `stroke=`) {
		t.Errorf("highlighted part carries no stroke: %s", hoodTag)
	}
}

func TestColorizeMissingIDIsNoOp(t *testing.T) {
	c := NewColorizer()
	out := c.Colorize([]byte(colorizeSVG),
		map[taxonomy.PartKey]string{taxonomy.PartRoof: "#9c27b0"}, "")
	if !bytes.Equal(out, []byte(colorizeSVG)) {
		t.Errorf("markup changed for an id not present in the source:\n%s", out)
	}
}

func TestColorizeEmptyFillMapIsNoOp(t *testing.T) {
	c := NewColorizer()
	out := c.Colorize([]byte(colorizeSVG), nil, "")
	if !bytes.Equal(out, []byte(colorizeSVG)) {
		t.Error("markup changed with no fills requested")
	}
}
