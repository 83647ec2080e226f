// Package inspect defines the inspection-record boundary consumed by the
// diagram engine. Three record shapes arrive from the data layer: the current
// per-part damage records, an optional legacy body-part status map, and an
// optional tire status record. The engine normalizes all three into one
// unified partKey-indexed view before colorization.
package inspect

import (
	"encoding/json"
	"fmt"
	"time"

	"bodymap/internal/palette"
	"bodymap/internal/taxonomy"
)

// PartDamageData is the per-part inspection record.
type PartDamageData struct {
	PartKey    taxonomy.PartKey        `json:"part_key"`
	Condition  taxonomy.PartCondition  `json:"condition"`
	Severity   taxonomy.DamageSeverity `json:"severity,omitempty"`
	Notes      string                  `json:"notes,omitempty"`
	Photos     []string                `json:"photos,omitempty"`
	TireStatus taxonomy.TireStatus     `json:"tire_status,omitempty"`
	UpdatedAt  time.Time               `json:"updated_at,omitzero"`
}

// Record is the unified partKey -> damage view the engine renders from.
// Absence of an entry for a part means the part was not inspected.
type Record map[taxonomy.PartKey]PartDamageData

// Report is the wire shape of one inspection: current-format records,
// optionally accompanied by a legacy status map and a tire record.
type Report struct {
	Parts  map[taxonomy.PartKey]PartDamageData           `json:"parts,omitempty"`
	Legacy map[taxonomy.BodyPartID]taxonomy.LegacyStatus `json:"legacy,omitempty"`
	Tires  map[taxonomy.PartKey]taxonomy.TireStatus      `json:"tires,omitempty"`
}

// DecodeReport parses an inspection report from JSON.
func DecodeReport(data []byte) (*Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode inspection report: %w", err)
	}
	return &r, nil
}

// Unify normalizes the report into one partKey-indexed view. Legacy entries
// are translated through the taxonomy mapper first, then overridden by any
// current-format record for the same part; tire entries attach to their
// wheel positions. The translation is total, so no input is ever rejected.
func (r *Report) Unify() Record {
	out := make(Record, len(r.Parts)+len(r.Legacy)+len(r.Tires))

	for id, status := range r.Legacy {
		key, ok := taxonomy.PartKeyOf(id)
		if !ok {
			continue
		}
		out[key] = PartDamageData{
			PartKey:   key,
			Condition: taxonomy.ConditionOf(status),
		}
	}

	for key, data := range r.Parts {
		data.PartKey = key
		if data.Condition == "" {
			data.Condition = taxonomy.ConditionNotInspected
		}
		out[key] = data
	}

	for key, status := range r.Tires {
		if !key.IsWheel() {
			continue
		}
		data, exists := out[key]
		data.PartKey = key
		data.TireStatus = status
		data.Condition = taxonomy.ConditionOfTire(status)
		if !exists {
			data.Severity = ""
		}
		out[key] = data
	}

	return out
}

// DisplayEntry resolves the palette entry for one part. Wheel positions with
// a tire status resolve through the tire table; everything else through the
// generic condition table; missing records render as not inspected.
func (rec Record) DisplayEntry(key taxonomy.PartKey, pal *palette.Palette) palette.Entry {
	data, ok := rec[key]
	if !ok {
		return pal.Resolve(taxonomy.ConditionNotInspected)
	}
	if key.IsWheel() && data.TireStatus != "" {
		return pal.ResolveTire(data.TireStatus)
	}
	return pal.Resolve(data.Condition)
}

// Fills builds the per-part fill colors for a set of diagram parts.
func (rec Record) Fills(parts []taxonomy.PartKey, pal *palette.Palette) map[taxonomy.PartKey]string {
	fills := make(map[taxonomy.PartKey]string, len(parts))
	for _, key := range parts {
		fills[key] = rec.DisplayEntry(key, pal).Hex()
	}
	return fills
}
