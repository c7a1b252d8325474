package translate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/lueurxax/greeter/internal/core/errors"
	"github.com/lueurxax/greeter/internal/platform/observability"
)

const (
	// DefaultModel is the chat model used when none is configured.
	DefaultModel = openai.GPT4oMini

	defaultRPS       = 1.0
	rateLimiterBurst = 1
	maxTokens        = 256
	providerName     = "openai"

	translatePromptFmt = "Translate from %s to %s. Output ONLY the translation, nothing else.\n\n%s"
	errRateLimiter     = "rate limiter: %w"
)

// OpenAIConfig configures the OpenAI translator.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	RPS     float64
	Source  string
	Target  string
}

// OpenAI translates text with a chat completion model.
type OpenAI struct {
	client      *openai.Client
	model       string
	source      string
	target      string
	rateLimiter *rate.Limiter
	logger      *zerolog.Logger
}

// NewOpenAI builds an OpenAI translator. A nil logger disables logging.
func NewOpenAI(cfg OpenAIConfig, logger *zerolog.Logger) *OpenAI {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	rps := cfg.RPS
	if rps <= 0 {
		rps = defaultRPS
	}

	return &OpenAI{
		client:      openai.NewClientWithConfig(clientCfg),
		model:       model,
		source:      orDefault(cfg.Source),
		target:      orDefault(cfg.Target),
		rateLimiter: rate.NewLimiter(rate.Limit(rps), rateLimiterBurst),
		logger:      logger,
	}
}

// Translate asks the model to translate text from source to target.
// Text is returned unchanged when it is blank or both tags share a base language.
func (o *OpenAI) Translate(ctx context.Context, text, source, target string) (string, error) {
	src, tgt, err := parsePair(source, target)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" || sameLanguage(src, tgt) {
		return text, nil
	}

	if err := o.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf(errRateLimiter, err)
	}

	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(translatePromptFmt, displayName(src), displayName(tgt), text),
			},
		},
		MaxTokens: maxTokens,
	})

	observability.TranslationDuration.WithLabelValues(providerName).Observe(time.Since(start).Seconds())

	if err != nil {
		observability.TranslationRequests.WithLabelValues(providerName, observability.StatusError).Inc()

		return "", fmt.Errorf("translate %s->%s: %w", src, tgt, err)
	}

	observability.TranslationRequests.WithLabelValues(providerName, observability.StatusSuccess).Inc()

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("translate %s->%s: %w", src, tgt, errors.ErrEmptyResponse)
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("translate %s->%s: %w", src, tgt, errors.ErrEmptyResponse)
	}

	o.logger.Debug().
		Str("source", src.String()).
		Str("target", tgt.String()).
		Int("total_tokens", resp.Usage.TotalTokens).
		Msg("translated text")

	return out, nil
}

// TranslateDefault translates with the configured default pair.
func (o *OpenAI) TranslateDefault(ctx context.Context, text string) (string, error) {
	return o.Translate(ctx, text, o.source, o.target)
}
