// Package i18n holds the message catalogs and language matching shared by the
// chartlab web and tool surfaces.
package i18n

import (
	"bytes"
	"strings"
	"text/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{language.English, language.French}

var matcher = language.NewMatcher(supportedTags)

var catalogs = map[language.Tag]map[string]string{
	language.English: english,
	language.French:  french,
}

func init() {
	for tag, messages := range catalogs {
		for key, value := range messages {
			if err := message.SetString(tag, key, value); err != nil {
				panic("register message " + key + ": " + err.Error())
			}
		}
	}
}

// SupportedTags returns the languages with a catalog, default first.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// DefaultTag returns the fallback language.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag parses value and reports whether it maps onto a supported
// language. Regional variants collapse to their base ("fr-CA" -> "fr").
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultTag(), false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return DefaultTag(), false
	}
	base, _ := tag.Base()
	for _, supported := range supportedTags {
		supportedBase, _ := supported.Base()
		if base == supportedBase {
			return supported, true
		}
	}
	return DefaultTag(), false
}

// MatchTags picks the best supported language for an ordered preference list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag()
	}
	return supportedTags[index]
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// Text returns the translated message for key, formatted with args.
func Text(tag language.Tag, key string, args ...any) string {
	return Printer(tag).Sprintf(key, args...)
}

// Lookup returns the raw catalog entry for key, falling back to the default
// language.
func Lookup(tag language.Tag, key string) (string, bool) {
	if messages, ok := catalogs[tag]; ok {
		if value, ok := messages[key]; ok {
			return value, true
		}
	}
	value, ok := catalogs[DefaultTag()][key]
	return value, ok
}

// Format renders the catalog template for key with metadata. Unknown keys
// render as the key itself.
func Format(tag language.Tag, key string, metadata map[string]string) string {
	tmpl, ok := Lookup(tag, key)
	if !ok {
		return key
	}
	if metadata == nil {
		metadata = map[string]string{}
	}
	t, err := template.New("msg").Option("missingkey=zero").Parse(tmpl)
	if err != nil {
		return tmpl
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, metadata); err != nil {
		return tmpl
	}
	return buf.String()
}

// Keys returns every key defined for tag.
func Keys(tag language.Tag) []string {
	messages := catalogs[tag]
	keys := make([]string, 0, len(messages))
	for key := range messages {
		keys = append(keys, key)
	}
	return keys
}
