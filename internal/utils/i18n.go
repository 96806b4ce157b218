package utils

// Minimal server-side i18n for fixed keys. Question text lives in the
// catalog file; the server only needs a handful of strings.

var translations = map[string]map[string]string{
	"en": {
		"health.ok":      "ok",
		"confirm.thanks": "Thank you for your response",
	},
	"ta": {
		"health.ok":      "சரி",
		"confirm.thanks": "உங்கள் பதிலுக்கு நன்றி",
	},
}

// T returns the translated string for key in locale; falls back to English.
func T(locale, key string) string {
	if m, ok := translations[locale]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if m, ok := translations["en"]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}
