package domain

// Harmony names the relationship between a palette entry and its base colour.
type Harmony string

const (
	HarmonyComplementary Harmony = "complementary"
	HarmonyAnalogous     Harmony = "analogous"
	HarmonyTriadic       Harmony = "triadic"
)

// Locale selects the language of harmony display names.
type Locale string

const (
	LocaleEnglish            Locale = "en"
	LocaleTraditionalChinese Locale = "zh-TW"
)

var harmonyNames = map[Locale]map[Harmony]string{
	LocaleEnglish: {
		HarmonyComplementary: "Complementary",
		HarmonyAnalogous:     "Analogous",
		HarmonyTriadic:       "Triadic",
	},
	LocaleTraditionalChinese: {
		HarmonyComplementary: "互補色",
		HarmonyAnalogous:     "類似色",
		HarmonyTriadic:       "三角配色",
	},
}

// DisplayName returns the human label for h in the given locale.
// Unknown locales fall back to English, unknown harmonies to the raw tag.
func (h Harmony) DisplayName(loc Locale) string {
	names, ok := harmonyNames[loc]
	if !ok {
		names = harmonyNames[LocaleEnglish]
	}
	if n, ok := names[h]; ok {
		return n
	}
	return string(h)
}

// ValidLocale reports whether loc has display names.
func ValidLocale(loc Locale) bool {
	_, ok := harmonyNames[loc]
	return ok
}

// PaletteEntry is one derived swatch.
type PaletteEntry struct {
	Label Harmony  `json:"label"`
	Color HexColor `json:"color"`
}

// Palette is the full result of a generation request. It is never persisted.
type Palette struct {
	Base    HexColor       `json:"base"`
	Entries []PaletteEntry `json:"entries"`
}
