// Package i18n resolves user-facing labels from the embedded message files.
package i18n

import (
	"embed"
	"fmt"
	"log"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var i *I18N

type I18N struct {
	localizer *i18n.Localizer
	bundle    *i18n.Bundle
	tag       language.Tag
}

// Init parses every embedded message file and selects English.
func Init() error {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := localeFS.ReadDir("locales")
	if err != nil {
		return fmt.Errorf("read locales: %w", err)
	}
	for _, f := range files {
		name := path.Join("locales", f.Name())
		data, err := localeFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, name); err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
	}

	i = &I18N{
		localizer: i18n.NewLocalizer(bundle, language.English.String()),
		bundle:    bundle,
		tag:       language.English,
	}
	return nil
}

// Ready reports whether Init has run.
func Ready() bool {
	return i != nil
}

func SetLanguage(lang language.Tag) {
	i = &I18N{
		localizer: i18n.NewLocalizer(i.bundle, lang.String(), language.English.String()),
		bundle:    i.bundle,
		tag:       lang,
	}
}

func SetWithCode(code string) error {
	lang, err := language.Parse(code)
	if err != nil {
		return err
	}
	SetLanguage(lang)
	return nil
}

// Language returns the active language tag.
func Language() language.Tag {
	return i.tag
}

// Languages lists the tags that have message files.
func Languages() []language.Tag {
	return i.bundle.LanguageTags()
}

// Has reports whether key resolves in the active language or its fallback.
func Has(key string) bool {
	_, err := i.localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	return err == nil
}

// GetString retrieves a localized string by key.
// If the key is not found, it returns the key itself.
func GetString(key string) string {
	return localize(&i18n.LocalizeConfig{MessageID: key})
}

// GetStringWithData retrieves a localized template string by key.
func GetStringWithData(key string, templateData map[string]interface{}) string {
	return localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: templateData,
	})
}

// GetPluralString picks the plural form for count. templateData may be nil.
func GetPluralString(key string, count int, templateData map[string]interface{}) string {
	return localize(&i18n.LocalizeConfig{
		MessageID:    key,
		PluralCount:  count,
		TemplateData: templateData,
	})
}

// localize returns the English text when the active language lacks the key,
// and the key itself when no language has it.
func localize(lc *i18n.LocalizeConfig) string {
	msg, err := i.localizer.Localize(lc)
	if err != nil {
		log.Printf("Warning: missing translation %q: %v", lc.MessageID, err)
		if msg == "" {
			return lc.MessageID
		}
	}
	return msg
}

// Strings resolves a list of keys in order.
func Strings(keys []string) []string {
	out := make([]string, len(keys))
	for n, k := range keys {
		out[n] = GetString(k)
	}
	return out
}
