package mocks

import (
	"context"
	"sync"
)

// TranslateCall records the arguments of one Translate call.
type TranslateCall struct {
	Text   string
	Source string
	Target string
}

// Translator is a thread-safe implementation of ports.Translator that
// returns the text unchanged by default.
type Translator struct {
	mu           sync.Mutex
	calls        []TranslateCall
	defaultCalls []string

	// TranslateFn allows overriding Translate behavior.
	TranslateFn func(ctx context.Context, text, source, target string) (string, error)

	// TranslateDefaultFn allows overriding TranslateDefault behavior.
	TranslateDefaultFn func(ctx context.Context, text string) (string, error)
}

// NewTranslator creates a new identity translator.
func NewTranslator() *Translator {
	return &Translator{}
}

// Translate records the call and returns text, or delegates to TranslateFn.
func (t *Translator) Translate(ctx context.Context, text, source, target string) (string, error) {
	t.mu.Lock()
	t.calls = append(t.calls, TranslateCall{Text: text, Source: source, Target: target})
	fn := t.TranslateFn
	t.mu.Unlock()

	if fn != nil {
		return fn(ctx, text, source, target)
	}

	return text, nil
}

// TranslateDefault records the call and returns text, or delegates to TranslateDefaultFn.
func (t *Translator) TranslateDefault(ctx context.Context, text string) (string, error) {
	t.mu.Lock()
	t.defaultCalls = append(t.defaultCalls, text)
	fn := t.TranslateDefaultFn
	t.mu.Unlock()

	if fn != nil {
		return fn(ctx, text)
	}

	return text, nil
}

// Calls returns a copy of the recorded Translate calls.
func (t *Translator) Calls() []TranslateCall {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]TranslateCall(nil), t.calls...)
}

// DefaultCalls returns a copy of the texts passed to TranslateDefault.
func (t *Translator) DefaultCalls() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]string(nil), t.defaultCalls...)
}

// Reset clears recorded calls. Overrides are kept.
func (t *Translator) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.calls = nil
	t.defaultCalls = nil
}
