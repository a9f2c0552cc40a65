package i18n

import (
	"embed"
	"io/fs"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// Bundle holds every embedded translation.
type Bundle struct {
	bundle *goi18n.Bundle
}

func NewBundle(defaultLanguage language.Tag) (*Bundle, error) {
	bundle := goi18n.NewBundle(defaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(locales, "locales/*.toml")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locale files")
	}

	for _, file := range files {
		if _, err := bundle.LoadMessageFileFS(locales, file); err != nil {
			return nil, errors.Wrapf(err, "failed to load locale file %s", file)
		}
	}

	return &Bundle{bundle: bundle}, nil
}

// Languages lists the tags a translation exists for.
func (b *Bundle) Languages() []language.Tag {
	return b.bundle.LanguageTags()
}

// Localizer resolves message IDs for a preference list of languages.
type Localizer struct {
	localizer *goi18n.Localizer
}

// Localizer picks the best match of langs, e.g. the values of an Accept-Language header.
func (b *Bundle) Localizer(langs ...string) *Localizer {
	return &Localizer{localizer: goi18n.NewLocalizer(b.bundle, langs...)}
}

// Message renders id with data. Unknown IDs render as the ID itself.
func (l *Localizer) Message(id string, data map[string]interface{}) string {
	msg, err := l.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		log.Warn().Err(err).Str("id", id).Msg("Missing translation")
		return id
	}

	return msg
}
