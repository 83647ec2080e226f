package taxonomy

// The legacy format covers 13 coarse regions; the current format covers ~30.
// Every BodyPartID has exactly one PartKey counterpart. The reverse lookup is
// partial: mirrors, windows, lights, the grille and all wheel positions exist
// only in the current format.

var bodyPartToPartKey = map[BodyPartID]PartKey{
	BodyFrontBumper:      PartFrontBumper,
	BodyRearBumper:       PartRearBumper,
	BodyHood:             PartHood,
	BodyRoof:             PartRoof,
	BodyTrunk:            PartTrunk,
	BodyLeftFrontDoor:    PartLeftFrontDoor,
	BodyLeftRearDoor:     PartLeftRearDoor,
	BodyRightFrontDoor:   PartRightFrontDoor,
	BodyRightRearDoor:    PartRightRearDoor,
	BodyLeftFrontFender:  PartLeftFrontFender,
	BodyLeftRearFender:   PartLeftRearFender,
	BodyRightFrontFender: PartRightFrontFender,
	BodyRightRearFender:  PartRightRearFender,
}

var partKeyToBodyPart = func() map[PartKey]BodyPartID {
	m := make(map[PartKey]BodyPartID, len(bodyPartToPartKey))
	for id, key := range bodyPartToPartKey {
		m[key] = id
	}
	return m
}()

// PartKeyOf returns the current-format counterpart of a legacy body part id.
// The second return is false only for ids outside the legacy vocabulary.
func PartKeyOf(id BodyPartID) (PartKey, bool) {
	key, ok := bodyPartToPartKey[id]
	return key, ok
}

// BodyPartIDOf returns the legacy counterpart of a part key. A false second
// return is a normal outcome, not an error: most current-format parts have no
// legacy equivalent.
func BodyPartIDOf(key PartKey) (BodyPartID, bool) {
	id, ok := partKeyToBodyPart[key]
	return id, ok
}

// ConditionOf converts a legacy status into the current condition vocabulary.
// The mapping is total: any unrecognized status yields ConditionNotInspected
// so that evolving record formats never become unrenderable.
func ConditionOf(s LegacyStatus) PartCondition {
	switch s {
	case LegacyOriginal:
		return ConditionGood
	case LegacyPainted:
		return ConditionPainted
	case LegacyBodywork:
		return ConditionBodywork
	case LegacyAccident:
		return ConditionBroken
	case LegacyReplaced:
		return ConditionReplaced
	case LegacyNeedsCheck:
		return ConditionNotInspected
	default:
		return ConditionNotInspected
	}
}

// ConditionOfTire converts a tire status into the generic condition
// vocabulary. This conversion exists for display fallbacks only; wheel parts
// normally resolve through the tire-specific color and label table.
func ConditionOfTire(s TireStatus) PartCondition {
	switch s {
	case TireNew:
		return ConditionGood
	case TireUsed50:
		return ConditionScratch
	case TireDamaged:
		return ConditionBroken
	default:
		return ConditionNotInspected
	}
}
