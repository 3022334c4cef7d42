package translate

import (
	"context"
	"fmt"

	"github.com/razzzeeev/astro/internal/cohere"
	"github.com/razzzeeev/astro/internal/logger"
)

// Lower temperature than generation, translation wants fidelity.
const (
	translationTemperature = 0.3
	translationMaxTokens   = 300
)

// Translation is the outcome of a translation attempt. Applied is false
// on passthrough and on failure; Language is the language of Text.
type Translation struct {
	Text     string
	Language string
	Applied  bool
}

// Chatter is the chat surface translation needs. Satisfied by the
// Cohere provider client.
type Chatter interface {
	Chat(ctx context.Context, req cohere.ChatRequest) (string, error)
}

// Client translates generated insights into a fixed set of target
// languages through the chat model.
type Client struct {
	cfg     Config
	chatter Chatter
	log     *logger.Logger
}

func NewClient(cfg Config, chatter Chatter, log *logger.Logger) *Client {
	return &Client{
		cfg:     cfg,
		chatter: chatter,
		log:     log,
	}
}

// Translate renders text in lang. The default language passes through
// untouched. Unsupported codes fail before any external call. Provider
// failures return the original text rather than an error; losing the
// translation never loses the insight.
func (c *Client) Translate(ctx context.Context, text, lang string) (Translation, error) {
	if !Supported(lang) {
		return Translation{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	passthrough := Translation{Text: text, Language: DefaultLanguage, Applied: false}
	if lang == DefaultLanguage {
		return passthrough, nil
	}
	if !c.cfg.Enabled {
		c.log.Debug("translation disabled, returning original text", nil, nil)
		return passthrough, nil
	}

	name, _ := DisplayName(lang)
	prompt := fmt.Sprintf("Translate the following English text to %s. Only provide the translation, nothing else:\n\n%s", name, text)

	translated, err := c.chatter.Chat(ctx, cohere.ChatRequest{
		Message:     prompt,
		Temperature: translationTemperature,
		MaxTokens:   translationMaxTokens,
	})
	if err != nil {
		if cohere.IsNotConfigured(err) {
			c.log.Debug("translation provider not configured, returning original text", nil, nil)
		} else {
			c.log.Warn("translation failed, returning original text", err, map[string]interface{}{
				"language": lang,
			})
		}
		return passthrough, nil
	}

	c.log.Info("translated insight", nil, map[string]interface{}{
		"language": lang,
	})
	return Translation{Text: translated, Language: lang, Applied: true}, nil
}
