package internal

import (
	"embed"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var localeFiles = []string{
	"locales/active.en.toml",
	"locales/active.de.toml",
}

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle

	localizerMu sync.RWMutex
	localizer   *i18n.Localizer
)

func getBundle() *i18n.Bundle {
	bundleOnce.Do(func() {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		for _, path := range localeFiles {
			if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
				GetInternalLogger().Error("Failed to load locale file", "path", path, "error", err)
			}
		}

		localizer = i18n.NewLocalizer(bundle, language.English.String())
	})
	return bundle
}

// SetLanguage selects the language used by Localize. Unknown or malformed tags
// fall back to English.
func SetLanguage(tags ...string) {
	b := getBundle()

	langs := make([]string, 0, len(tags)+1)
	for _, raw := range tags {
		tag, err := language.Parse(raw)
		if err != nil {
			GetInternalLogger().Warn("Ignoring invalid language tag", "tag", raw, "error", err)
			continue
		}
		langs = append(langs, tag.String())
	}
	langs = append(langs, language.English.String())

	localizerMu.Lock()
	localizer = i18n.NewLocalizer(b, langs...)
	localizerMu.Unlock()
}

// Localize returns the localized string for the resource id, or the id itself if
// no message is registered for it.
func Localize(id string) string {
	return LocalizeWith(id, nil)
}

// LocalizeWith is Localize with template data.
func LocalizeWith(id string, data map[string]any) string {
	getBundle()

	localizerMu.RLock()
	l := localizer
	localizerMu.RUnlock()

	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
