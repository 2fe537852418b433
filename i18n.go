package jsonschema

import (
	"embed"

	"github.com/kaptinlin/go-i18n"
)

//go:embed locales/*.json
var localesFS embed.FS

// NewI18nBundle returns an initialized internationalization bundle loaded
// from the embedded locale files, used to translate ValidationError issues
// into languages other than English via Localize.
func NewI18nBundle() (*i18n.I18n, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en"),
	)
	if err := bundle.LoadFS(localesFS, "locales/*.json"); err != nil {
		return nil, err
	}
	return bundle, nil
}

// Localize re-renders every issue's message through localizer, keyed by the
// issue's Code and filled in from its Params. An issue whose code has no
// translation entry keeps its original English Message.
func (e *ValidationError) Localize(localizer *i18n.Localizer) *ValidationError {
	if e == nil || localizer == nil {
		return e
	}
	translated := &ValidationError{Errors: make([]Issue, len(e.Errors))}
	for i, issue := range e.Errors {
		msg := localizer.Get(issue.Code, i18n.Vars(issue.Params))
		if msg == "" {
			msg = issue.Message
		}
		translated.Errors[i] = Issue{Message: msg, Code: issue.Code, Pos: issue.Pos, Params: issue.Params}
	}
	return translated
}
