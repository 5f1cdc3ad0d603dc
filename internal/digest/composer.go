package digest

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc"
	"gopkg.in/yaml.v2"

	"goldminer/internal/domain"
)

// Composer renders the final markdown document from a batch and a writer.
// Per-nugget writer calls run concurrently, but the document always lists
// highlights in batch order and all calls are joined before assembly.
type Composer struct {
	byline string
	log    logrus.FieldLogger
}

// NewComposer creates a Composer. byline fills the front-matter author key.
func NewComposer(byline string, logger logrus.FieldLogger) *Composer {
	return &Composer{
		byline: byline,
		log:    logger.WithField("component", "composer"),
	}
}

type frontMatter struct {
	Title  string `yaml:"title"`
	Tags   string `yaml:"tags"`
	Teaser string `yaml:"teaser"`
	Author string `yaml:"author,omitempty"`
}

// highlight holds everything the writer produces for one nugget.
type highlight struct {
	title  string
	body   string
	topics []string
}

// Compose renders the digest document.
func (c *Composer) Compose(ctx context.Context, batch domain.GoldBatch, writer Writer) (string, error) {
	c.log.WithFields(logrus.Fields{
		"channel": batch.Origin,
		"nuggets": len(batch.Nuggets),
	}).Info("Composing digest")

	highlights := make([]highlight, len(batch.Nuggets))

	var wg conc.WaitGroup
	for i, nugget := range batch.Nuggets {
		i, nugget := i, nugget
		wg.Go(func() {
			highlights[i] = highlight{
				title:  writer.TitleFor(ctx, nugget),
				body:   writer.Summarize(ctx, nugget),
				topics: writer.ExtractTopics(ctx, nugget),
			}
		})
	}
	wg.Wait()

	topics := unionTopics(highlights)

	header, err := yaml.Marshal(frontMatter{
		Title:  c.title(batch),
		Tags:   c.tags(batch, topics),
		Teaser: fmt.Sprintf("Highlights of what happened in our #%s channel on Slack this week.", batch.Origin),
		Author: c.byline,
	})
	if err != nil {
		return "", fmt.Errorf("rendering front matter: %w", err)
	}

	var doc strings.Builder
	doc.WriteString("---\n")
	doc.Write(header)
	doc.WriteString("---\n\n")
	doc.WriteString(fmt.Sprintf("Welcome to another edition of This Week in #%s, a series of posts where we\nbring some of the most interesting Slack conversations to the public.\nToday we're talking about: %s.\n\n", batch.Origin, Sentence(topics)))

	for i, h := range highlights {
		if i > 0 {
			doc.WriteString("\n")
		}
		doc.WriteString(fmt.Sprintf("## %s\n\n%s\n", h.title, strings.TrimRight(h.body, "\n")))
	}

	doc.WriteString("\n## Thanks\n\n")
	doc.WriteString(fmt.Sprintf("This edition was brought to you by: %s. Thanks to all contributors! 🎉\n", c.contributors(batch)))

	return doc.String(), nil
}

func (c *Composer) title(batch domain.GoldBatch) string {
	return fmt.Sprintf("This week in #%s (%s)", batch.Origin, prettyDate(batch.PackingDate))
}

// tags renders the channel token followed by the lower-cased topic labels.
func (c *Composer) tags(batch domain.GoldBatch, topics []string) string {
	tags := []string{"this-week-in-" + batch.Origin}
	for _, topic := range topics {
		tags = append(tags, strings.ToLower(topic))
	}
	return strings.Join(tags, ", ")
}

// contributors renders the distinct batch authors sorted by display name,
// each as a footnote-style link reference.
func (c *Composer) contributors(batch domain.GoldBatch) string {
	authors := batch.Authors()
	sort.Slice(authors, func(i, j int) bool {
		return authors[i].DisplayName < authors[j].DisplayName
	})

	names := make([]string, 0, len(authors))
	for _, author := range authors {
		names = append(names, author.NameWithLinkReference())
	}
	return Sentence(names)
}

// unionTopics merges per-nugget topic lists preserving first-seen order.
func unionTopics(highlights []highlight) []string {
	var topics []string
	seen := make(map[string]struct{})
	for _, h := range highlights {
		for _, topic := range h.topics {
			if _, ok := seen[topic]; ok {
				continue
			}
			seen[topic] = struct{}{}
			topics = append(topics, topic)
		}
	}
	return topics
}
