package diagram

import (
	"regexp"
	"sort"
	"strings"

	"bodymap/internal/taxonomy"
)

// Colorizer rewrites diagram markup in place, injecting per-part fill and
// highlight stroke attributes. It deliberately operates on raw markup text
// rather than a parsed scene graph: round-tripping through a document model
// would risk structural fidelity loss for the sake of swapping a handful of
// attributes. Robustness therefore depends on narrow, anchored attribute
// replacement, and idempotence is covered by tests.
type Colorizer struct {
	// HighlightStroke and HighlightWidth style the single highlighted part.
	HighlightStroke string
	HighlightWidth  string
}

// NewColorizer returns a colorizer with the default highlight style.
func NewColorizer() *Colorizer {
	return &Colorizer{HighlightStroke: "#1976d2", HighlightWidth: "3"}
}

// Colorize returns the markup with each matched part's fill replaced or
// inserted, and a distinguishing stroke applied to the highlighted part.
// Parts whose id does not textually appear in the markup are skipped
// silently. Unrelated attributes survive untouched, and colorizing the same
// inputs twice yields byte-identical output.
func (c *Colorizer) Colorize(src []byte, fills map[taxonomy.PartKey]string, highlight taxonomy.PartKey) []byte {
	out := string(src)

	ids := make([]string, 0, len(fills))
	for key := range fills {
		ids = append(ids, string(key))
	}
	sort.Strings(ids)

	for _, id := range ids {
		out = c.recolorElement(out, id, fills[taxonomy.PartKey(id)], id == string(highlight))
	}
	return []byte(out)
}

// recolorElement rewrites every opening tag carrying the given id.
func (c *Colorizer) recolorElement(markup, id, fill string, highlighted bool) string {
	re := openTagPattern(id)
	return re.ReplaceAllStringFunc(markup, func(tag string) string {
		tag = setAttr(tag, "fill", fill)
		if highlighted {
			tag = setAttr(tag, "stroke", c.HighlightStroke)
			tag = setAttr(tag, "stroke-width", c.HighlightWidth)
		}
		return tag
	})
}

// openTagPattern matches an opening (or self-closing) tag whose id attribute
// equals the given part id exactly. The quote anchors keep ids like
// "hood" from matching inside "hood_glass".
func openTagPattern(id string) *regexp.Regexp {
	return regexp.MustCompile(`<[^<>]*\sid\s*=\s*["']` + regexp.QuoteMeta(id) + `["'][^<>]*>`)
}

// setAttr replaces the named attribute inside one opening tag, or inserts it
// before the closing bracket when absent. Only the named attribute changes.
func setAttr(tag, name, value string) string {
	// The leading whitespace anchor keeps "fill" from matching inside
	// attributes like "data-fill"; the literal "=" after the name keeps it
	// from matching "fill-opacity".
	re := regexp.MustCompile(`(\s` + regexp.QuoteMeta(name) + `)\s*=\s*(?:"[^"]*"|'[^']*')`)
	if re.MatchString(tag) {
		return re.ReplaceAllString(tag, `${1}="`+value+`"`)
	}
	replacement := name + `="` + value + `"`
	if strings.HasSuffix(tag, "/>") {
		return strings.TrimSuffix(tag, "/>") + " " + replacement + "/>"
	}
	return strings.TrimSuffix(tag, ">") + " " + replacement + ">"
}
