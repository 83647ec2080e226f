package taxonomy

// Language selects one of the two supported label locales.
type Language string

const (
	LangEN Language = "en"
	LangRU Language = "ru"
)

type bilingual struct {
	en, ru string
}

func (b bilingual) in(lang Language) string {
	if lang == LangRU {
		return b.ru
	}
	return b.en
}

var partLabels = map[PartKey]bilingual{
	PartFrontBumper:    {"Front bumper", "Передний бампер"},
	PartGrille:         {"Grille", "Решетка радиатора"},
	PartHood:           {"Hood", "Капот"},
	PartWindshield:     {"Windshield", "Лобовое стекло"},
	PartLeftHeadlight:  {"Left headlight", "Левая фара"},
	PartRightHeadlight: {"Right headlight", "Правая фара"},

	PartRearBumper:     {"Rear bumper", "Задний бампер"},
	PartTrunk:          {"Trunk", "Багажник"},
	PartRearWindow:     {"Rear window", "Заднее стекло"},
	PartLeftTaillight:  {"Left taillight", "Левый фонарь"},
	PartRightTaillight: {"Right taillight", "Правый фонарь"},

	PartLeftFrontDoor:   {"Left front door", "Левая передняя дверь"},
	PartLeftRearDoor:    {"Left rear door", "Левая задняя дверь"},
	PartLeftFrontFender: {"Left front fender", "Левое переднее крыло"},
	PartLeftRearFender:  {"Left rear fender", "Левое заднее крыло"},
	PartLeftMirror:      {"Left mirror", "Левое зеркало"},
	PartLeftWindows:     {"Left windows", "Левые стекла"},

	PartRightFrontDoor:   {"Right front door", "Правая передняя дверь"},
	PartRightRearDoor:    {"Right rear door", "Правая задняя дверь"},
	PartRightFrontFender: {"Right front fender", "Правое переднее крыло"},
	PartRightRearFender:  {"Right rear fender", "Правое заднее крыло"},
	PartRightMirror:      {"Right mirror", "Правое зеркало"},
	PartRightWindows:     {"Right windows", "Правые стекла"},

	PartRoof: {"Roof", "Крыша"},

	PartWheelFrontLeft:  {"Front left wheel", "Переднее левое колесо"},
	PartWheelFrontRight: {"Front right wheel", "Переднее правое колесо"},
	PartWheelRearLeft:   {"Rear left wheel", "Заднее левое колесо"},
	PartWheelRearRight:  {"Rear right wheel", "Заднее правое колесо"},
	PartWheelSpare:      {"Spare wheel", "Запасное колесо"},
}

// Label returns the display name of the part in the given locale. Unknown
// keys fall back to the raw key string so diagnostic output stays readable.
func (k PartKey) Label(lang Language) string {
	if b, ok := partLabels[k]; ok {
		return b.in(lang)
	}
	return string(k)
}

var severityLabels = map[DamageSeverity]bilingual{
	SeverityLight:  {"Light", "Легкое"},
	SeverityMedium: {"Medium", "Среднее"},
	SeveritySevere: {"Severe", "Сильное"},
}

// Label returns the display name of the severity in the given locale.
func (s DamageSeverity) Label(lang Language) string {
	if b, ok := severityLabels[s]; ok {
		return b.in(lang)
	}
	return string(s)
}

var angleLabels = map[ViewAngle]bilingual{
	AngleFront:     {"Front", "Спереди"},
	AngleRear:      {"Rear", "Сзади"},
	AngleLeftSide:  {"Left side", "Слева"},
	AngleRightSide: {"Right side", "Справа"},
	AngleTop:       {"Top", "Сверху"},
}

// Label returns the display name of the view angle in the given locale.
func (a ViewAngle) Label(lang Language) string {
	if b, ok := angleLabels[a]; ok {
		return b.in(lang)
	}
	return string(a)
}

var templateLabels = map[CarTemplateType]bilingual{
	TemplateSedan:     {"Sedan", "Седан"},
	TemplateSUV:       {"SUV", "Внедорожник"},
	TemplateHatchback: {"Hatchback", "Хэтчбек"},
	TemplateCoupe:     {"Coupe", "Купе"},
	TemplatePickup:    {"Pickup", "Пикап"},
	TemplateVan:       {"Van", "Минивэн"},
}

// Label returns the display name of the template type in the given locale.
func (t CarTemplateType) Label(lang Language) string {
	if b, ok := templateLabels[t]; ok {
		return b.in(lang)
	}
	return string(t)
}
