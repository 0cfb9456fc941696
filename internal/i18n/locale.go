// Package i18n holds the label tables for every native UI surface (menu bar, tray,
// notifications) and the rules for picking a supported locale.
package i18n

import (
	"strings"

	golocale "github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

// Locale is a locale tag as passed between the shell and the embedding application.
// Only "zh" selects Chinese; any other value behaves as English.
type Locale string

const (
	// Chinese selects the Chinese tables
	Chinese Locale = "zh"

	// English selects the English tables
	English Locale = "en"

	// DefaultLocale is used when nothing else was configured
	DefaultLocale = Chinese
)

// IsChinese reports whether l selects the Chinese tables.
func (l Locale) IsChinese() bool {
	return l == Chinese
}

// Canonical returns the tag that l behaves as: Chinese or English.
func (l Locale) Canonical() Locale {
	if l.IsChinese() {
		return Chinese
	}
	return English
}

func (l Locale) String() string {
	return string(l)
}

var (
	supportedTags = []language.Tag{language.Chinese, language.English}
	matcher       = language.NewMatcher(supportedTags)
)

// Resolve maps an arbitrary BCP-47 or POSIX style tag ("zh-CN", "zh_Hans", "en-US") onto a
// supported locale. It is only used to choose the startup locale; the builder itself compares
// tags exactly.
func Resolve(tag string) Locale {
	tag = strings.TrimSpace(strings.ReplaceAll(tag, "_", "-"))
	if tag == "" {
		return DefaultLocale
	}
	// Strip POSIX encodings such as "zh-CN.UTF-8"
	if idx := strings.IndexByte(tag, '.'); idx >= 0 {
		tag = tag[:idx]
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return English
	}

	_, idx, confidence := matcher.Match(parsed)
	if confidence == language.No {
		return English
	}
	if supportedTags[idx] == language.Chinese {
		return Chinese
	}
	return English
}

// DetectSystem resolves the operating system's user locale. When the OS cannot be queried the
// default locale is returned together with the error so callers can log it.
func DetectSystem() (Locale, error) {
	tag, err := golocale.GetLocale()
	if err != nil {
		return DefaultLocale, err
	}
	return Resolve(tag), nil
}
