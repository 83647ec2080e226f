// Package palette maps inspection conditions to display colors and
// bilingual labels. Two independent tables exist: the generic seven-condition
// table and the three-state tire table for wheel positions.
package palette

import (
	"image/color"

	"bodymap/internal/taxonomy"
	"bodymap/pkg/colorutil"
)

// Entry is a resolved display entry for one condition value.
type Entry struct {
	Color   color.RGBA
	LabelEN string
	LabelRU string
}

// Label returns the entry label in the given locale.
func (e Entry) Label(lang taxonomy.Language) string {
	if lang == taxonomy.LangRU {
		return e.LabelRU
	}
	return e.LabelEN
}

// Hex returns the entry color as an SVG fill value.
func (e Entry) Hex() string {
	return colorutil.Hex(e.Color)
}

var conditionTable = map[taxonomy.PartCondition]Entry{
	taxonomy.ConditionGood:         {color.RGBA{0x4c, 0xaf, 0x50, 0xff}, "Good", "Хорошее"},
	taxonomy.ConditionScratch:      {color.RGBA{0xff, 0xc1, 0x07, 0xff}, "Scratched", "Царапина"},
	taxonomy.ConditionBodywork:     {color.RGBA{0xff, 0x98, 0x00, 0xff}, "Bodywork", "Кузовной ремонт"},
	taxonomy.ConditionBroken:       {color.RGBA{0xf4, 0x43, 0x36, 0xff}, "Damaged", "Повреждено"},
	taxonomy.ConditionPainted:      {color.RGBA{0x21, 0x96, 0xf3, 0xff}, "Repainted", "Окрашено"},
	taxonomy.ConditionReplaced:     {color.RGBA{0x9c, 0x27, 0xb0, 0xff}, "Replaced", "Заменено"},
	taxonomy.ConditionNotInspected: {colorutil.Gray, "Not inspected", "Не проверено"},
}

// The tire table is deliberately separate from the generic one: a 50%-used
// tire maps to the scratch condition internally but must never render with
// the scratch color or label.
var tireTable = map[taxonomy.TireStatus]Entry{
	taxonomy.TireNew:     {color.RGBA{0x43, 0xa0, 0x47, 0xff}, "New", "Новая"},
	taxonomy.TireUsed50:  {color.RGBA{0xff, 0xb3, 0x00, 0xff}, "50% used", "Износ 50%"},
	taxonomy.TireDamaged: {color.RGBA{0xe5, 0x39, 0x35, 0xff}, "Damaged", "Повреждена"},
}

// Overrides substitutes palette colors per condition or tire status.
// Labels are not overridable.
type Overrides struct {
	Conditions map[taxonomy.PartCondition]color.RGBA
	Tires      map[taxonomy.TireStatus]color.RGBA
}

// Palette resolves conditions to display entries, applying any overrides.
// The zero value resolves through the built-in tables.
type Palette struct {
	overrides Overrides
}

// New creates a palette with the given overrides.
func New(overrides Overrides) *Palette {
	return &Palette{overrides: overrides}
}

// Resolve returns the display entry for a generic part condition. Unknown
// values resolve to the not-inspected entry so evolving record formats never
// become unrenderable.
func (p *Palette) Resolve(c taxonomy.PartCondition) Entry {
	e, ok := conditionTable[c]
	if !ok {
		e = conditionTable[taxonomy.ConditionNotInspected]
		c = taxonomy.ConditionNotInspected
	}
	if p != nil {
		if oc, ok := p.overrides.Conditions[c]; ok {
			e.Color = oc
		}
	}
	return e
}

// ResolveTire returns the display entry for a tire status. Unknown values
// resolve to the generic not-inspected entry.
func (p *Palette) ResolveTire(s taxonomy.TireStatus) Entry {
	e, ok := tireTable[s]
	if !ok {
		return p.Resolve(taxonomy.ConditionNotInspected)
	}
	if p != nil {
		if oc, ok := p.overrides.Tires[s]; ok {
			e.Color = oc
		}
	}
	return e
}

// Describe renders a condition with its severity qualifier in the given
// locale. Severity is shown only when the condition requires one, even if
// the record carries a stale severity value.
func (p *Palette) Describe(c taxonomy.PartCondition, sev taxonomy.DamageSeverity, lang taxonomy.Language) string {
	label := p.Resolve(c).Label(lang)
	if !c.RequiresSeverity() || sev == "" {
		return label
	}
	return label + " (" + sev.Label(lang) + ")"
}

// LegendItem is one row of the display legend.
type LegendItem struct {
	Label string
	Color color.RGBA
}

// Legend returns the generic condition legend in table order.
func (p *Palette) Legend(lang taxonomy.Language) []LegendItem {
	items := make([]LegendItem, 0, len(taxonomy.AllConditions))
	for _, c := range taxonomy.AllConditions {
		e := p.Resolve(c)
		items = append(items, LegendItem{Label: e.Label(lang), Color: e.Color})
	}
	return items
}

// TireLegend returns the tire status legend in table order.
func (p *Palette) TireLegend(lang taxonomy.Language) []LegendItem {
	items := make([]LegendItem, 0, len(taxonomy.AllTireStatuses))
	for _, s := range taxonomy.AllTireStatuses {
		e := p.ResolveTire(s)
		items = append(items, LegendItem{Label: e.Label(lang), Color: e.Color})
	}
	return items
}
