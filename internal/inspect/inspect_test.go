package inspect

import (
	"testing"
	"time"

	"bodymap/internal/palette"
	"bodymap/internal/taxonomy"
)

func TestUnifyLegacyOnly(t *testing.T) {
	r := &Report{
		Legacy: map[taxonomy.BodyPartID]taxonomy.LegacyStatus{
			taxonomy.BodyHood:        taxonomy.LegacyAccident,
			taxonomy.BodyFrontBumper: taxonomy.LegacyOriginal,
			taxonomy.BodyRoof:        taxonomy.LegacyNeedsCheck,
		},
	}
	rec := r.Unify()

	if got := rec[taxonomy.PartHood].Condition; got != taxonomy.ConditionBroken {
		t.Errorf("hood condition = %s, want broken", got)
	}
	if got := rec[taxonomy.PartFrontBumper].Condition; got != taxonomy.ConditionGood {
		t.Errorf("front_bumper condition = %s, want good", got)
	}
	if got := rec[taxonomy.PartRoof].Condition; got != taxonomy.ConditionNotInspected {
		t.Errorf("roof condition = %s, want not_inspected", got)
	}
}

func TestUnifyModernOverridesLegacy(t *testing.T) {
	r := &Report{
		Parts: map[taxonomy.PartKey]PartDamageData{
			taxonomy.PartHood: {
				Condition: taxonomy.ConditionScratch,
				Severity:  taxonomy.SeverityLight,
				Notes:     "stone chips",
				Photos:    []string{"hood_1.jpg", "hood_2.jpg"},
				UpdatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			},
		},
		Legacy: map[taxonomy.BodyPartID]taxonomy.LegacyStatus{
			taxonomy.BodyHood: taxonomy.LegacyAccident,
		},
	}
	rec := r.Unify()

	hood := rec[taxonomy.PartHood]
	if hood.Condition != taxonomy.ConditionScratch {
		t.Errorf("hood condition = %s, modern record must win", hood.Condition)
	}
	if hood.PartKey != taxonomy.PartHood {
		t.Errorf("hood part key = %s", hood.PartKey)
	}
	if len(hood.Photos) != 2 || hood.Photos[0] != "hood_1.jpg" {
		t.Errorf("hood photos = %v, order must survive", hood.Photos)
	}
}

func TestUnifyTires(t *testing.T) {
	r := &Report{
		Tires: map[taxonomy.PartKey]taxonomy.TireStatus{
			taxonomy.PartWheelFrontLeft: taxonomy.TireUsed50,
			taxonomy.PartWheelSpare:     taxonomy.TireNew,
			taxonomy.PartHood:           taxonomy.TireDamaged, // not a wheel, dropped
		},
	}
	rec := r.Unify()

	fl := rec[taxonomy.PartWheelFrontLeft]
	if fl.TireStatus != taxonomy.TireUsed50 {
		t.Errorf("front left tire status = %s", fl.TireStatus)
	}
	if fl.Condition != taxonomy.ConditionScratch {
		t.Errorf("front left mapped condition = %s, want scratch", fl.Condition)
	}
	if rec[taxonomy.PartWheelSpare].Condition != taxonomy.ConditionGood {
		t.Errorf("spare condition = %s", rec[taxonomy.PartWheelSpare].Condition)
	}
	if _, ok := rec[taxonomy.PartHood]; ok {
		t.Error("tire status attached to a non-wheel part")
	}
}

func TestUnifyModernOnlyPartWithoutLegacyCounterpart(t *testing.T) {
	// left_mirror has no BodyPartId counterpart; the record must still
	// render, independent of legacy mapping success.
	r := &Report{
		Parts: map[taxonomy.PartKey]PartDamageData{
			taxonomy.PartLeftMirror: {Condition: taxonomy.ConditionBroken},
		},
	}
	rec := r.Unify()

	if _, ok := taxonomy.BodyPartIDOf(taxonomy.PartLeftMirror); ok {
		t.Fatal("left_mirror unexpectedly gained a legacy counterpart")
	}

	pal := palette.New(palette.Overrides{})
	got := rec.DisplayEntry(taxonomy.PartLeftMirror, pal)
	want := pal.Resolve(taxonomy.ConditionBroken)
	if got != want {
		t.Errorf("left_mirror display entry = %+v, want %+v", got, want)
	}
}

func TestDisplayEntry(t *testing.T) {
	pal := palette.New(palette.Overrides{})
	rec := Record{
		taxonomy.PartWheelFrontLeft: {
			PartKey:    taxonomy.PartWheelFrontLeft,
			Condition:  taxonomy.ConditionScratch,
			TireStatus: taxonomy.TireUsed50,
		},
	}

	// Wheel with tire status goes through the tire table.
	if got := rec.DisplayEntry(taxonomy.PartWheelFrontLeft, pal); got != pal.ResolveTire(taxonomy.TireUsed50) {
		t.Errorf("wheel entry = %+v, want tire table entry", got)
	}

	// Missing record renders as not inspected.
	if got := rec.DisplayEntry(taxonomy.PartHood, pal); got != pal.Resolve(taxonomy.ConditionNotInspected) {
		t.Errorf("missing record entry = %+v", got)
	}
}

func TestFills(t *testing.T) {
	pal := palette.New(palette.Overrides{})
	rec := Record{
		taxonomy.PartHood: {PartKey: taxonomy.PartHood, Condition: taxonomy.ConditionPainted},
	}
	parts := []taxonomy.PartKey{taxonomy.PartHood, taxonomy.PartRoof}
	fills := rec.Fills(parts, pal)

	if len(fills) != 2 {
		t.Fatalf("fills = %v", fills)
	}
	if fills[taxonomy.PartHood] != pal.Resolve(taxonomy.ConditionPainted).Hex() {
		t.Errorf("hood fill = %s", fills[taxonomy.PartHood])
	}
	if fills[taxonomy.PartRoof] != pal.Resolve(taxonomy.ConditionNotInspected).Hex() {
		t.Errorf("roof fill = %s", fills[taxonomy.PartRoof])
	}
}

func TestDecodeReport(t *testing.T) {
	data := []byte(`{
	  "parts": {"hood": {"condition": "scratch", "severity": "light"}},
	  "legacy": {"front_bumper": "painted"},
	  "tires": {"wheel_rear_left": "damaged"}
	}`)
	r, err := DecodeReport(data)
	if err != nil {
		t.Fatalf("DecodeReport: %v", err)
	}
	rec := r.Unify()

	if rec[taxonomy.PartHood].Severity != taxonomy.SeverityLight {
		t.Errorf("hood severity = %s", rec[taxonomy.PartHood].Severity)
	}
	if rec[taxonomy.PartFrontBumper].Condition != taxonomy.ConditionPainted {
		t.Errorf("front_bumper condition = %s", rec[taxonomy.PartFrontBumper].Condition)
	}
	if rec[taxonomy.PartWheelRearLeft].TireStatus != taxonomy.TireDamaged {
		t.Errorf("rear left tire = %s", rec[taxonomy.PartWheelRearLeft].TireStatus)
	}

	if _, err := DecodeReport([]byte(`{not json`)); err == nil {
		t.Error("expected error for malformed report")
	}
}
