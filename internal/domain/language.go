package domain

import "fmt"

// Language selects the reference frequency list
type Language string

const (
	LanguageEnglish    Language = "en"
	LanguageSpanish    Language = "es"
	LanguageFrench     Language = "fr"
	LanguageGerman     Language = "de"
	LanguageItalian    Language = "it"
	LanguagePortuguese Language = "pt"
)

var languages = []Language{
	LanguageEnglish,
	LanguageSpanish,
	LanguageFrench,
	LanguageGerman,
	LanguageItalian,
	LanguagePortuguese,
}

var languageNames = map[Language]string{
	LanguageEnglish:    "English",
	LanguageSpanish:    "Español",
	LanguageFrench:     "Français",
	LanguageGerman:     "Deutsch",
	LanguageItalian:    "Italiano",
	LanguagePortuguese: "Português",
}

// Languages returns all supported languages in display order
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// ParseLanguage converts a language key like "en" into a Language
func ParseLanguage(s string) (Language, error) {
	lang := Language(s)
	if _, ok := languageNames[lang]; !ok {
		return "", fmt.Errorf("unknown language %q", s)
	}
	return lang, nil
}

// DisplayName returns the language name in that language
func (l Language) DisplayName() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return string(l)
}

// Next returns the language following l in display order, wrapping around
func (l Language) Next() Language {
	for i, lang := range languages {
		if lang == l {
			return languages[(i+1)%len(languages)]
		}
	}
	return languages[0]
}
