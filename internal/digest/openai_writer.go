package digest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"

	"goldminer/internal/domain"
)

// completionClient is the slice of the OpenAI API the writer uses.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIWriter generates titles, summaries, and topics with a language
// model. Every provider failure is logged as a warning and answered by the
// fallback writer instead; callers never see an error. Each call attempts
// the provider exactly once, no retries.
type OpenAIWriter struct {
	client   completionClient
	fallback Writer
	model    string
	log      logrus.FieldLogger
}

func NewOpenAIWriter(apiToken string, fallback Writer, logger logrus.FieldLogger) *OpenAIWriter {
	return newOpenAIWriter(openai.NewClient(apiToken), fallback, logger)
}

func newOpenAIWriter(client completionClient, fallback Writer, logger logrus.FieldLogger) *OpenAIWriter {
	return &OpenAIWriter{
		client:   client,
		fallback: fallback,
		model:    openai.GPT4oMini,
		log:      logger.WithField("component", "openai_writer"),
	}
}

func (w *OpenAIWriter) ExtractTopics(ctx context.Context, nugget domain.GoldNugget) []string {
	raw, err := w.ask(ctx, fmt.Sprintf("Extract the 3 most relevant topics, if possible in one word, from this text as a single parseable JSON array: %s", nugget.Content))
	if err != nil {
		w.log.Warnf("OpenAI error: %s", err)
		return w.fallback.ExtractTopics(ctx, nugget)
	}

	var topics []string
	if err := json.Unmarshal([]byte(trimWrapping(raw, "`")), &topics); err != nil {
		return w.fallback.ExtractTopics(ctx, nugget)
	}
	return topics
}

func (w *OpenAIWriter) TitleFor(ctx context.Context, nugget domain.GoldNugget) string {
	title, err := w.ask(ctx, fmt.Sprintf("Give a small title to this text: %s", nugget.Content))
	if err != nil {
		w.log.Warnf("OpenAI error: %s", err)
		return w.fallback.TitleFor(ctx, nugget)
	}
	return trimWrapping(title, `"`)
}

func (w *OpenAIWriter) Summarize(ctx context.Context, nugget domain.GoldNugget) string {
	summary, err := w.ask(ctx, fmt.Sprintf("Summarize this markdown content, preserving code examples and links: %s", nugget.Content))
	if err != nil {
		w.log.Warnf("OpenAI error: %s", err)
		return w.fallback.Summarize(ctx, nugget)
	}
	return fmt.Sprintf("%s\n\nSource: %s", summary, nugget.Source)
}

func (w *OpenAIWriter) ask(ctx context.Context, prompt string) (string, error) {
	resp, err := w.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       w.model,
		MaxTokens:   1000,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// trimWrapping strips a single wrapping pair of the given marker, e.g.
// backticks around a JSON payload or quotes around a title.
func trimWrapping(s, marker string) string {
	if len(s) >= 2*len(marker) && strings.HasPrefix(s, marker) && strings.HasSuffix(s, marker) {
		return s[len(marker) : len(s)-len(marker)]
	}
	return s
}
