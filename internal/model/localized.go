package model

// Language is a supported display language tag.
type Language string

const (
	LanguageEN Language = "en"
	LanguageZH Language = "zh"
)

// Valid reports whether the language is one of the supported tags.
func (l Language) Valid() bool {
	return l == LanguageEN || l == LanguageZH
}

// LocalizedText is a pair of strings keyed by language tag.
// Both values are expected to be present; Get implements the only
// fallback chain the app supports (requested language, else English,
// else empty).
type LocalizedText struct {
	EN string `json:"en"`
	ZH string `json:"zh"`
}

// Get returns the text for the requested language, falling back to
// English when the requested localization is empty.
func (t LocalizedText) Get(lang Language) string {
	if lang == LanguageZH && t.ZH != "" {
		return t.ZH
	}
	return t.EN
}

// Empty reports whether no localization is present at all.
func (t LocalizedText) Empty() bool {
	return t.EN == "" && t.ZH == ""
}

// Complete reports whether both localizations are present. Get's English
// fallback covers a missing zh only at display time; a required field with
// either side blank is an invalid record.
func (t LocalizedText) Complete() bool {
	return t.EN != "" && t.ZH != ""
}
