// Cinediscover - Content Discovery and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinediscover

package catalog

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageCode reduces a BCP 47 tag ("pt-BR", "FR", "es_419") to the ISO 639-1
// base the upstream expects in original_language filters ("pt", "fr", "es").
func LanguageCode(s string) (string, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid language %q: %w", s, err)
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", fmt.Errorf("invalid language %q", s)
	}
	return base.String(), nil
}

// Locale canonicalizes a request locale ("en_us" becomes "en-US").
func Locale(s string) (string, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid locale %q: %w", s, err)
	}
	return tag.String(), nil
}

// LanguageName returns the English display name of a language code, or the
// code itself when it cannot be parsed.
func LanguageName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}
