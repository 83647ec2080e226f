// Package taxonomy defines the part and condition vocabularies for vehicle
// damage inspection, and the translation between the current and legacy
// record formats.
package taxonomy

// PartKey identifies one inspectable vehicle region in the current vocabulary.
type PartKey string

const (
	// Front.
	PartFrontBumper    PartKey = "front_bumper"
	PartGrille         PartKey = "grille"
	PartHood           PartKey = "hood"
	PartWindshield     PartKey = "windshield"
	PartLeftHeadlight  PartKey = "left_headlight"
	PartRightHeadlight PartKey = "right_headlight"

	// Rear.
	PartRearBumper     PartKey = "rear_bumper"
	PartTrunk          PartKey = "trunk"
	PartRearWindow     PartKey = "rear_window"
	PartLeftTaillight  PartKey = "left_taillight"
	PartRightTaillight PartKey = "right_taillight"

	// Left side.
	PartLeftFrontDoor   PartKey = "left_front_door"
	PartLeftRearDoor    PartKey = "left_rear_door"
	PartLeftFrontFender PartKey = "left_front_fender"
	PartLeftRearFender  PartKey = "left_rear_fender"
	PartLeftMirror      PartKey = "left_mirror"
	PartLeftWindows     PartKey = "left_windows"

	// Right side.
	PartRightFrontDoor   PartKey = "right_front_door"
	PartRightRearDoor    PartKey = "right_rear_door"
	PartRightFrontFender PartKey = "right_front_fender"
	PartRightRearFender  PartKey = "right_rear_fender"
	PartRightMirror      PartKey = "right_mirror"
	PartRightWindows     PartKey = "right_windows"

	// Top.
	PartRoof PartKey = "roof"

	// Wheels.
	PartWheelFrontLeft  PartKey = "wheel_front_left"
	PartWheelFrontRight PartKey = "wheel_front_right"
	PartWheelRearLeft   PartKey = "wheel_rear_left"
	PartWheelRearRight  PartKey = "wheel_rear_right"
	PartWheelSpare      PartKey = "wheel_spare"
)

// PartCategory groups part keys by the region of the vehicle they belong to.
type PartCategory string

const (
	CategoryFront  PartCategory = "front"
	CategoryRear   PartCategory = "rear"
	CategoryLeft   PartCategory = "left"
	CategoryRight  PartCategory = "right"
	CategoryTop    PartCategory = "top"
	CategoryWheels PartCategory = "wheels"
)

// AllPartKeys lists every part key in stable display order.
var AllPartKeys = []PartKey{
	PartFrontBumper, PartGrille, PartHood, PartWindshield,
	PartLeftHeadlight, PartRightHeadlight,
	PartRearBumper, PartTrunk, PartRearWindow,
	PartLeftTaillight, PartRightTaillight,
	PartLeftFrontDoor, PartLeftRearDoor, PartLeftFrontFender,
	PartLeftRearFender, PartLeftMirror, PartLeftWindows,
	PartRightFrontDoor, PartRightRearDoor, PartRightFrontFender,
	PartRightRearFender, PartRightMirror, PartRightWindows,
	PartRoof,
	PartWheelFrontLeft, PartWheelFrontRight, PartWheelRearLeft,
	PartWheelRearRight, PartWheelSpare,
}

var partCategories = map[PartKey]PartCategory{
	PartFrontBumper: CategoryFront, PartGrille: CategoryFront,
	PartHood: CategoryFront, PartWindshield: CategoryFront,
	PartLeftHeadlight: CategoryFront, PartRightHeadlight: CategoryFront,

	PartRearBumper: CategoryRear, PartTrunk: CategoryRear,
	PartRearWindow: CategoryRear,
	PartLeftTaillight: CategoryRear, PartRightTaillight: CategoryRear,

	PartLeftFrontDoor: CategoryLeft, PartLeftRearDoor: CategoryLeft,
	PartLeftFrontFender: CategoryLeft, PartLeftRearFender: CategoryLeft,
	PartLeftMirror: CategoryLeft, PartLeftWindows: CategoryLeft,

	PartRightFrontDoor: CategoryRight, PartRightRearDoor: CategoryRight,
	PartRightFrontFender: CategoryRight, PartRightRearFender: CategoryRight,
	PartRightMirror: CategoryRight, PartRightWindows: CategoryRight,

	PartRoof: CategoryTop,

	PartWheelFrontLeft: CategoryWheels, PartWheelFrontRight: CategoryWheels,
	PartWheelRearLeft: CategoryWheels, PartWheelRearRight: CategoryWheels,
	PartWheelSpare: CategoryWheels,
}

// Valid reports whether the key is a member of the current vocabulary.
func (k PartKey) Valid() bool {
	_, ok := partCategories[k]
	return ok
}

// Category returns the region group the part belongs to, or "" for unknown keys.
func (k PartKey) Category() PartCategory {
	return partCategories[k]
}

// IsWheel reports whether the part is a wheel position. Wheel parts use the
// tire status vocabulary and the tire color table instead of the generic one.
func (k PartKey) IsWheel() bool {
	return partCategories[k] == CategoryWheels
}

// BodyPartID is the legacy, coarser identifier for one of 13 vehicle regions.
// It exists only for backward compatibility with older inspection records.
type BodyPartID string

const (
	BodyFrontBumper      BodyPartID = "front_bumper"
	BodyRearBumper       BodyPartID = "rear_bumper"
	BodyHood             BodyPartID = "hood"
	BodyRoof             BodyPartID = "roof"
	BodyTrunk            BodyPartID = "trunk"
	BodyLeftFrontDoor    BodyPartID = "left_front_door"
	BodyLeftRearDoor     BodyPartID = "left_rear_door"
	BodyRightFrontDoor   BodyPartID = "right_front_door"
	BodyRightRearDoor    BodyPartID = "right_rear_door"
	BodyLeftFrontFender  BodyPartID = "left_front_fender"
	BodyLeftRearFender   BodyPartID = "left_rear_fender"
	BodyRightFrontFender BodyPartID = "right_front_fender"
	BodyRightRearFender  BodyPartID = "right_rear_fender"
)

// AllBodyPartIDs lists the full legacy vocabulary.
var AllBodyPartIDs = []BodyPartID{
	BodyFrontBumper, BodyRearBumper, BodyHood, BodyRoof, BodyTrunk,
	BodyLeftFrontDoor, BodyLeftRearDoor, BodyRightFrontDoor, BodyRightRearDoor,
	BodyLeftFrontFender, BodyLeftRearFender, BodyRightFrontFender, BodyRightRearFender,
}

// PartCondition is one of the seven inspection outcomes for a part.
type PartCondition string

const (
	ConditionGood         PartCondition = "good"
	ConditionScratch      PartCondition = "scratch"
	ConditionBodywork     PartCondition = "bodywork"
	ConditionBroken       PartCondition = "broken"
	ConditionPainted      PartCondition = "painted"
	ConditionReplaced     PartCondition = "replaced"
	ConditionNotInspected PartCondition = "not_inspected"
)

// AllConditions lists every condition in severity-legend order.
var AllConditions = []PartCondition{
	ConditionGood, ConditionScratch, ConditionBodywork, ConditionBroken,
	ConditionPainted, ConditionReplaced, ConditionNotInspected,
}

// RequiresSeverity reports whether the condition is qualified by a damage
// severity. Good and not-inspected parts carry no severity.
func (c PartCondition) RequiresSeverity() bool {
	return c != ConditionGood && c != ConditionNotInspected
}

// DamageSeverity qualifies how bad a damaged part is. It is meaningful only
// when paired with a condition for which RequiresSeverity is true.
type DamageSeverity string

const (
	SeverityLight  DamageSeverity = "light"
	SeverityMedium DamageSeverity = "medium"
	SeveritySevere DamageSeverity = "severe"
)

// LegacyStatus is the six-value condition vocabulary used by older
// inspection records, keyed by BodyPartID.
type LegacyStatus string

const (
	LegacyOriginal   LegacyStatus = "original"
	LegacyPainted    LegacyStatus = "painted"
	LegacyBodywork   LegacyStatus = "bodywork"
	LegacyAccident   LegacyStatus = "accident"
	LegacyReplaced   LegacyStatus = "replaced"
	LegacyNeedsCheck LegacyStatus = "needs_check"
)

// AllLegacyStatuses lists the full legacy status vocabulary.
var AllLegacyStatuses = []LegacyStatus{
	LegacyOriginal, LegacyPainted, LegacyBodywork,
	LegacyAccident, LegacyReplaced, LegacyNeedsCheck,
}

// TireStatus is the condition vocabulary for wheel positions.
type TireStatus string

const (
	TireNew     TireStatus = "new"
	TireUsed50  TireStatus = "used_50"
	TireDamaged TireStatus = "damaged"
)

// AllTireStatuses lists the tire status vocabulary.
var AllTireStatuses = []TireStatus{TireNew, TireUsed50, TireDamaged}

// ViewAngle is one of the five camera perspectives on the body diagram.
type ViewAngle string

const (
	AngleFront     ViewAngle = "front"
	AngleRear      ViewAngle = "rear"
	AngleLeftSide  ViewAngle = "left_side"
	AngleRightSide ViewAngle = "right_side"
	AngleTop       ViewAngle = "top"
)

// AllViewAngles lists the view angles in display order.
var AllViewAngles = []ViewAngle{
	AngleFront, AngleRear, AngleLeftSide, AngleRightSide, AngleTop,
}

// Valid reports whether the angle is a member of the vocabulary.
func (a ViewAngle) Valid() bool {
	switch a {
	case AngleFront, AngleRear, AngleLeftSide, AngleRightSide, AngleTop:
		return true
	}
	return false
}

// CarTemplateType selects which diagram asset family is loaded.
type CarTemplateType string

const (
	TemplateSedan     CarTemplateType = "sedan"
	TemplateSUV       CarTemplateType = "suv"
	TemplateHatchback CarTemplateType = "hatchback"
	TemplateCoupe     CarTemplateType = "coupe"
	TemplatePickup    CarTemplateType = "pickup"
	TemplateVan       CarTemplateType = "van"
)

// AllTemplates lists the template families in display order.
var AllTemplates = []CarTemplateType{
	TemplateSedan, TemplateSUV, TemplateHatchback,
	TemplateCoupe, TemplatePickup, TemplateVan,
}

// Valid reports whether the template type is a member of the vocabulary.
func (t CarTemplateType) Valid() bool {
	switch t {
	case TemplateSedan, TemplateSUV, TemplateHatchback,
		TemplateCoupe, TemplatePickup, TemplateVan:
		return true
	}
	return false
}
