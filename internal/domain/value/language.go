package value

// Language is a user's notification language preference.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageKannada Language = "kn"
)

const DefaultLanguage = LanguageEnglish

func (l Language) String() string {
	return string(l)
}

func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageKannada
}

// LanguageOrDefault maps unknown or empty codes to the default language
// instead of failing; rendering must never break on a bad preference.
func LanguageOrDefault(code string) Language {
	if l := Language(code); l.Valid() {
		return l
	}
	return DefaultLanguage
}
