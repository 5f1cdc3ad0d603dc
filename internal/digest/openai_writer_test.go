package digest

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompletions struct {
	content string
	err     error
	calls   int
	prompts []string
}

func (f *fakeCompletions) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.calls++
	if len(req.Messages) > 0 {
		f.prompts = append(f.prompts, req.Messages[0].Content)
	}
	if f.err != nil {
		return openai.ChatCompletionResponse{}, f.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: f.content}},
		},
	}, nil
}

func newTestOpenAIWriter(client completionClient) (*OpenAIWriter, *test.Hook) {
	logger, hook := test.NewNullLogger()
	return newOpenAIWriter(client, NewSimpleWriter(), logger), hook
}

func TestOpenAIWriterExtractTopics(t *testing.T) {
	client := &fakeCompletions{content: `["Ruby", "Metaprogramming", "DSL"]`}
	writer, _ := newTestOpenAIWriter(client)

	topics := writer.ExtractTopics(context.Background(), testNugget())

	assert.Equal(t, []string{"Ruby", "Metaprogramming", "DSL"}, topics)
	assert.Equal(t, 1, client.calls)
}

func TestOpenAIWriterExtractTopicsStripsWrappingBackticks(t *testing.T) {
	client := &fakeCompletions{content: "`[\"CSS\", \"Web\"]`"}
	writer, _ := newTestOpenAIWriter(client)

	assert.Equal(t, []string{"CSS", "Web"}, writer.ExtractTopics(context.Background(), testNugget()))
}

func TestOpenAIWriterExtractTopicsFallsBackOnUnparsablePayload(t *testing.T) {
	client := &fakeCompletions{content: "Sure! The topics are CSS and TIL."}
	writer, _ := newTestOpenAIWriter(client)

	topics := writer.ExtractTopics(context.Background(), testNugget())

	assert.Equal(t, NewSimpleWriter().ExtractTopics(context.Background(), testNugget()), topics)
	assert.Equal(t, 1, client.calls, "no retry after a bad payload")
}

func TestOpenAIWriterExtractTopicsFallsBackOnProviderError(t *testing.T) {
	client := &fakeCompletions{err: errors.New("rate limited")}
	writer, hook := newTestOpenAIWriter(client)

	topics := writer.ExtractTopics(context.Background(), testNugget())

	assert.Equal(t, []string{"CSS", "TIL"}, topics)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "error")
}

func TestOpenAIWriterTitleStripsWrappingQuotes(t *testing.T) {
	client := &fakeCompletions{content: `"A Cool CSS Trick"`}
	writer, _ := newTestOpenAIWriter(client)

	assert.Equal(t, "A Cool CSS Trick", writer.TitleFor(context.Background(), testNugget()))
}

func TestOpenAIWriterTitleKeepsUnquotedText(t *testing.T) {
	client := &fakeCompletions{content: "A Cool CSS Trick"}
	writer, _ := newTestOpenAIWriter(client)

	assert.Equal(t, "A Cool CSS Trick", writer.TitleFor(context.Background(), testNugget()))
}

func TestOpenAIWriterTitleFallsBackOnProviderError(t *testing.T) {
	client := &fakeCompletions{err: errors.New("boom")}
	writer, _ := newTestOpenAIWriter(client)

	// The fallback titles with the permalink.
	assert.Equal(t, testNugget().Source, writer.TitleFor(context.Background(), testNugget()))
	assert.Equal(t, 1, client.calls)
}

func TestOpenAIWriterSummarizeAppendsSource(t *testing.T) {
	client := &fakeCompletions{content: "clamp() bounds a value between a minimum and a maximum."}
	writer, _ := newTestOpenAIWriter(client)

	summary := writer.Summarize(context.Background(), testNugget())

	assert.Equal(t, "clamp() bounds a value between a minimum and a maximum.\n\nSource: https://example.com/message-permalink", summary)
}

func TestOpenAIWriterSummarizeFallsBackOnProviderError(t *testing.T) {
	client := &fakeCompletions{err: errors.New("boom")}
	writer, _ := newTestOpenAIWriter(client)

	assert.Equal(t, testNugget().AsConversation(), writer.Summarize(context.Background(), testNugget()))
}

func TestOpenAIWriterFallsBackOnEmptyResponse(t *testing.T) {
	writer, hook := newTestOpenAIWriter(&emptyCompletions{})

	assert.Equal(t, testNugget().Source, writer.TitleFor(context.Background(), testNugget()))
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

type emptyCompletions struct{}

func (emptyCompletions) CreateChatCompletion(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return openai.ChatCompletionResponse{}, nil
}

func TestNewWriterSelection(t *testing.T) {
	logger, _ := test.NewNullLogger()

	assert.IsType(t, SimpleWriter{}, NewWriter("", logger))
	assert.IsType(t, &OpenAIWriter{}, NewWriter("sk-test", logger))
}
