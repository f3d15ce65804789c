// Package translate formats the messages of every error and log line in the
// language of the user's locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DEFAULT_LOCALE is used when the system reports no locale.
const DEFAULT_LOCALE = "en-US"

var printer *message.Printer
var tag language.Tag

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("translate: locale: %v", err)
	}

	SetLocales(locales...)
}

// SetLocales selects the best supported language from a list of locales,
// in order of preference.
func SetLocales(locales ...string) {
	if len(locales) == 0 {
		locales = []string{DEFAULT_LOCALE}
	}

	tag = message.MatchLanguage(locales...)
	printer = message.NewPrinter(tag)
}

// Language returns the selected language.
func Language() language.Tag {
	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
