package ai

import (
	"fmt"

	"golang.org/x/text/language"
)

// Language is a proofreading language identified by its BCP 47 base code.
type Language struct {
	Code string
	Name string
}

// SupportedLanguages lists the languages a Proofreader accepts, in display order.
var SupportedLanguages = []Language{
	{Code: "en", Name: "English"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "hi", Name: "Hindi"},
	{Code: "ja", Name: "Japanese"},
	{Code: "zh", Name: "Chinese"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "ru", Name: "Russian"},
	{Code: "it", Name: "Italian"},
}

// LookupLanguage resolves a language tag such as "en", "en-GB" or "pt_BR"
// to one of the SupportedLanguages by its base language.
func LookupLanguage(code string) (Language, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return Language{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}
	base, _ := tag.Base()
	for _, l := range SupportedLanguages {
		if l.Code == base.String() {
			return l, nil
		}
	}
	return Language{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
}
