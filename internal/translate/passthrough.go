// Package translate provides ports.Translator adapters.
//
// Passthrough validates language tags and returns text unchanged. OpenAI asks
// a chat completion model for the translation.
package translate

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/lueurxax/greeter/internal/core/errors"
	"github.com/lueurxax/greeter/internal/core/ports"
)

// DefaultLanguage is the source and target used by TranslateDefault when no
// pair is configured.
const DefaultLanguage = "en"

var (
	_ ports.Translator = (*Passthrough)(nil)
	_ ports.Translator = (*OpenAI)(nil)
)

// Passthrough returns text unchanged after validating the language tags.
type Passthrough struct {
	source string
	target string
}

// NewPassthrough returns a passthrough translator with the given default pair.
// Empty tags default to DefaultLanguage.
func NewPassthrough(source, target string) *Passthrough {
	return &Passthrough{source: orDefault(source), target: orDefault(target)}
}

// Translate returns text unchanged.
func (p *Passthrough) Translate(_ context.Context, text, source, target string) (string, error) {
	if _, _, err := parsePair(source, target); err != nil {
		return "", err
	}

	return text, nil
}

// TranslateDefault returns text unchanged.
func (p *Passthrough) TranslateDefault(ctx context.Context, text string) (string, error) {
	return p.Translate(ctx, text, p.source, p.target)
}

func orDefault(tag string) string {
	if tag == "" {
		return DefaultLanguage
	}

	return tag
}

func parsePair(source, target string) (language.Tag, language.Tag, error) {
	src, err := parseTag(source)
	if err != nil {
		return language.Und, language.Und, err
	}

	tgt, err := parseTag(target)
	if err != nil {
		return language.Und, language.Und, err
	}

	return src, tgt, nil
}

func parseTag(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("%w %q: %w", errors.ErrInvalidLanguage, s, err)
	}

	return tag, nil
}

// sameLanguage reports whether both tags share a base language.
func sameLanguage(a, b language.Tag) bool {
	ba, _ := a.Base()
	bb, _ := b.Base()

	return ba == bb
}

// displayName is the English name of tag's base language, falling back to
// its BCP 47 form.
func displayName(tag language.Tag) string {
	base, _ := tag.Base()

	if name := display.English.Languages().Name(base); name != "" {
		return name
	}

	return tag.String()
}
