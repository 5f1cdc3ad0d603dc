package digest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldminer/internal/authors"
	"goldminer/internal/explorer"
	"goldminer/internal/slack"
)

type scriptedSearch map[string][]slack.Message

func (s scriptedSearch) SearchMessages(_ context.Context, query string) ([]slack.Message, error) {
	return s[query], nil
}

type scriptedIdentity map[string]string

func (s scriptedIdentity) ResolveDisplayName(_ context.Context, userID string) (string, error) {
	return s[userID], nil
}

// Exercises the whole pipeline: explore a channel, then compose the digest
// with the rule-based writer.
func TestExploreAndCompose(t *testing.T) {
	since := time.Date(2022, time.September, 30, 0, 0, 0, 0, time.UTC)

	search := scriptedSearch{
		"TIL in:design after:2022-09-30": {
			{Text: "TIL: CSS has clamp()", UserID: "U1", Username: "ann", Permalink: "https://p/1"},
			{Text: "TIL you can pattern match in Elixir", UserID: "U2", Username: "bo", Permalink: "https://p/2"},
		},
		"tip in:design after:2022-09-30": {
			{Text: "Ruby tip: have fun", UserID: "U1", Username: "ann", Permalink: "https://p/3"},
		},
	}
	identity := scriptedIdentity{"U1": "Ann Abbott", "U2": "Bo Baker"}
	directory := authors.New(map[string]string{"ann": "https://example.com/ann"})

	logger, _ := test.NewNullLogger()
	miner := explorer.New(search, identity, directory, "", logger)

	batch, err := miner.Explore(context.Background(), "design", since)
	require.NoError(t, err)
	require.Len(t, batch.Nuggets, 3)
	assert.Equal(t, "ann", batch.Nuggets[0].Author.ID)
	assert.Equal(t, "bo", batch.Nuggets[1].Author.ID)
	assert.Equal(t, "https://p/3", batch.Nuggets[2].Source)

	doc, err := NewComposer("", logger).Compose(context.Background(), batch, NewSimpleWriter())
	require.NoError(t, err)

	// Tags carry the channel token plus the lower-cased topics.
	assert.Contains(t, doc, "this-week-in-design")
	assert.Contains(t, doc, "til")
	assert.Contains(t, doc, "tip")

	// One permalink-titled section per nugget, in TIL, TIL, tip order,
	// each body carrying the raw content.
	first := strings.Index(doc, "## https://p/1")
	second := strings.Index(doc, "## https://p/2")
	third := strings.Index(doc, "## https://p/3")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	require.NotEqual(t, -1, third)
	assert.Less(t, first, second)
	assert.Less(t, second, third)

	assert.Contains(t, doc, "[Ann Abbott][ann] says: TIL: CSS has clamp()")
	assert.Contains(t, doc, "[Bo Baker][bo] says: TIL you can pattern match in Elixir")
	assert.Contains(t, doc, "[Ann Abbott][ann] says: Ruby tip: have fun")

	// Unknown handles fall back to the placeholder link.
	assert.Contains(t, doc, "[bo]: #to-do")
}
