// Package explorer mines a channel for noteworthy messages and packs them
// into a dated batch of gold nuggets.
package explorer

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"

	"goldminer/internal/authors"
	"goldminer/internal/domain"
	"goldminer/internal/slack"
)

// DefaultGoldReaction is the emoji that marks hand-picked messages.
const DefaultGoldReaction = "rupee-gold"

// SearchService is the provider search surface consumed by the explorer.
type SearchService interface {
	SearchMessages(ctx context.Context, query string) ([]slack.Message, error)
}

// IdentityService resolves a workspace user id to a display name.
type IdentityService interface {
	ResolveDisplayName(ctx context.Context, userID string) (string, error)
}

// Explorer runs the three interesting-message searches concurrently, merges
// and deduplicates the results, resolves authorship, and packs a GoldBatch.
type Explorer struct {
	search   SearchService
	identity IdentityService
	authors  *authors.Directory
	reaction string
	log      logrus.FieldLogger
}

// New creates an Explorer. An empty reaction selects DefaultGoldReaction.
func New(search SearchService, identity IdentityService, directory *authors.Directory, reaction string, logger logrus.FieldLogger) *Explorer {
	if reaction == "" {
		reaction = DefaultGoldReaction
	}
	return &Explorer{
		search:   search,
		identity: identity,
		authors:  directory,
		reaction: reaction,
		log:      logger.WithField("component", "explorer"),
	}
}

// Explore searches the channel for messages sent after startDate that are
// tagged TIL, tagged tip, or marked with the gold reaction, and packs the
// deduplicated matches into a GoldBatch. Any search or identity failure
// aborts the whole run.
func (e *Explorer) Explore(ctx context.Context, channel string, startDate time.Time) (domain.GoldBatch, error) {
	base := NewQuery().OnChannel(channel).SentAfter(startDate)
	queries := []Query{
		base.WithTopic("TIL"),
		base.WithTopic("tip"),
		base.WithReaction(e.reaction),
	}

	e.log.WithFields(logrus.Fields{
		"channel": channel,
		"since":   startDate.Format("2006-01-02"),
	}).Info("Exploring channel for gold nuggets")

	// One search per criterion, all in flight at once. Results keep their
	// criterion slot so the later merge is ordered by criterion priority
	// (TIL, tip, reaction), never by completion timing.
	results := make([][]slack.Message, len(queries))
	errs := make([]error, len(queries))

	var wg conc.WaitGroup
	for i, query := range queries {
		i, query := i, query
		wg.Go(func() {
			results[i], errs[i] = e.search.SearchMessages(ctx, query.String())
		})
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return domain.GoldBatch{}, fmt.Errorf("exploring #%s (%s): %w", channel, queries[i], err)
		}
	}

	messages := mergeByPermalink(results)

	displayNames, err := e.resolveDisplayNames(ctx, messages)
	if err != nil {
		return domain.GoldBatch{}, fmt.Errorf("exploring #%s: %w", channel, err)
	}

	nuggets := make([]domain.GoldNugget, 0, len(messages))
	for _, message := range messages {
		nuggets = append(nuggets, domain.GoldNugget{
			Content: message.Text,
			Author: domain.Author{
				ID:          message.Username,
				DisplayName: displayNames[message.UserID],
				Link:        e.authors.LinkFor(message.Username),
			},
			Source: message.Permalink,
		})
	}

	e.log.WithField("nuggets", len(nuggets)).Info("Packed gold batch")

	return domain.GoldBatch{
		Nuggets:     nuggets,
		Origin:      channel,
		PackingDate: startDate,
	}, nil
}

// mergeByPermalink flattens the per-criterion result lists in order and
// drops later messages that share a permalink with an earlier one.
func mergeByPermalink(results [][]slack.Message) []slack.Message {
	var merged []slack.Message
	seen := make(map[string]struct{})
	for _, messages := range results {
		for _, message := range messages {
			if _, ok := seen[message.Permalink]; ok {
				continue
			}
			seen[message.Permalink] = struct{}{}
			merged = append(merged, message)
		}
	}
	return merged
}

// resolveDisplayNames looks up the display name for every distinct author
// in the message set, one concurrent lookup per user id. The returned map
// is the run-scoped cache: a user appearing in N messages is resolved once.
func (e *Explorer) resolveDisplayNames(ctx context.Context, messages []slack.Message) (map[string]string, error) {
	var ids []string
	seen := make(map[string]struct{})
	for _, message := range messages {
		if _, ok := seen[message.UserID]; ok {
			continue
		}
		seen[message.UserID] = struct{}{}
		ids = append(ids, message.UserID)
	}

	names := make([]string, len(ids))
	errs := make([]error, len(ids))

	var wg conc.WaitGroup
	for i, id := range ids {
		i, id := i, id
		wg.Go(func() {
			names[i], errs[i] = e.identity.ResolveDisplayName(ctx, id)
		})
	}
	wg.Wait()

	cache := make(map[string]string, len(ids))
	for i, id := range ids {
		if errs[i] != nil {
			return nil, fmt.Errorf("resolving author %s: %w", id, errs[i])
		}
		cache[id] = names[i]
	}
	return cache, nil
}
