package translate

// DefaultLanguage is the language insights are generated and cached in.
const DefaultLanguage = "en"

// languageNames maps supported target codes to the names used in the
// translation instruction. The default language needs no entry.
var languageNames = map[string]string{
	"hi": "Hindi",
	"ta": "Tamil",
	"te": "Telugu",
	"kn": "Kannada",
	"ml": "Malayalam",
}

// Supported reports whether lang is the default language or a known
// translation target.
func Supported(lang string) bool {
	if lang == DefaultLanguage {
		return true
	}
	_, ok := languageNames[lang]
	return ok
}

// DisplayName returns the instruction name for a supported target code.
func DisplayName(lang string) (string, bool) {
	name, ok := languageNames[lang]
	return name, ok
}

// SupportedLanguages returns the full supported set, default first, in
// a stable order.
func SupportedLanguages() []string {
	return []string{DefaultLanguage, "hi", "ta", "te", "kn", "ml"}
}
