// Package anthropic implements the text generator on the Anthropic Messages API.
package anthropic

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"metaaudit/internal/ports"
)

const (
	defaultMaxTokens = 200
	systemPrompt     = "You write HTML meta descriptions. Reply with exactly one meta description of 120 to 160 characters, " +
		"plain text, no quotes, no preamble."
)

var errEmptyReply = errors.New("model returned no text")

type Generator struct {
	client    sdk.Client
	model     string
	maxTokens int64
}

// New builds a generator. opts are passed to the SDK client, e.g. an API key
// or, in tests, a base URL.
func New(model string, opts ...option.RequestOption) *Generator {
	return &Generator{
		client:    sdk.NewClient(opts...),
		model:     model,
		maxTokens: defaultMaxTokens,
	}
}

// GenerateMetaCandidate asks the model for one meta description. The API
// gives no confidence score, so Candidate.Confidence stays nil.
func (g *Generator) GenerateMetaCandidate(ctx context.Context, title, contentPreview string) (ports.Candidate, error) {
	msg, err := g.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(g.model),
		MaxTokens: g.maxTokens,
		System:    []sdk.TextBlockParam{{Text: systemPrompt}},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt(title, contentPreview))),
		},
	})
	if err != nil {
		return ports.Candidate{}, fmt.Errorf("anthropic messages: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	text := strings.Trim(strings.TrimSpace(b.String()), `"`)
	if text == "" {
		return ports.Candidate{}, errEmptyReply
	}
	return ports.Candidate{Text: text}, nil
}

func prompt(title, preview string) string {
	return fmt.Sprintf("Page title: %s\n\nPage content:\n%s", title, preview)
}
