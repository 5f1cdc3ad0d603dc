package digest

import (
	"context"

	"goldminer/internal/domain"
)

// SimpleWriter is the deterministic, network-free writer. The permalink
// serves as an always-available title and the summary is the nugget's
// attributed conversation rendering.
type SimpleWriter struct{}

func NewSimpleWriter() SimpleWriter {
	return SimpleWriter{}
}

func (SimpleWriter) ExtractTopics(_ context.Context, nugget domain.GoldNugget) []string {
	return ExtractTopics(nugget.Content)
}

func (SimpleWriter) TitleFor(_ context.Context, nugget domain.GoldNugget) string {
	return nugget.Source
}

func (SimpleWriter) Summarize(_ context.Context, nugget domain.GoldNugget) string {
	return nugget.AsConversation()
}
