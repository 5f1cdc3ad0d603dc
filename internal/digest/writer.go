// Package digest turns a gold batch into the weekly markdown digest. The
// Writer interface covers the per-nugget content generation; the Composer
// assembles the final document.
package digest

import (
	"context"

	"github.com/sirupsen/logrus"

	"goldminer/internal/domain"
)

// Writer produces the human-readable pieces of one digest highlight.
// Implementations must not fail: the AI-assisted variant absorbs provider
// errors by delegating to its fallback, and the rule-based variant is pure.
type Writer interface {
	// ExtractTopics returns canonical topic labels for the nugget.
	ExtractTopics(ctx context.Context, nugget domain.GoldNugget) []string

	// TitleFor returns a heading for the nugget's highlight section.
	TitleFor(ctx context.Context, nugget domain.GoldNugget) string

	// Summarize returns the body of the nugget's highlight section.
	Summarize(ctx context.Context, nugget domain.GoldNugget) string
}

// NewWriter picks the writer variant: AI-assisted with a rule-based
// fallback when an OpenAI token is configured, plain rule-based otherwise.
func NewWriter(openAIToken string, logger logrus.FieldLogger) Writer {
	if openAIToken == "" {
		return NewSimpleWriter()
	}
	return NewOpenAIWriter(openAIToken, NewSimpleWriter(), logger)
}
