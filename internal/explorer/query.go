package explorer

import (
	"strings"
	"time"
)

// Query is an immutable search filter. Builder methods return a modified
// copy, so a base query can be fanned out into several variants:
//
//	base := NewQuery().OnChannel("dev").SentAfter(date)
//	til := base.WithTopic("TIL")
//	tips := base.WithTopic("tip")
//
// String renders the provider search syntax, e.g.
// "TIL in:dev after:2022-09-30" or "in:dev after:2022-09-30 has::rupee-gold:".
type Query struct {
	topic     string
	channel   string
	startDate string
	reaction  string
}

func NewQuery() Query {
	return Query{}
}

func (q Query) OnChannel(channel string) Query {
	q.channel = channel
	return q
}

func (q Query) SentAfter(startDate time.Time) Query {
	q.startDate = startDate.Format("2006-01-02")
	return q
}

func (q Query) WithTopic(topic string) Query {
	q.topic = topic
	return q
}

func (q Query) WithReaction(reaction string) Query {
	q.reaction = reaction
	return q
}

func (q Query) String() string {
	var parts []string
	if q.topic != "" {
		parts = append(parts, q.topic)
	}
	if q.channel != "" {
		parts = append(parts, "in:"+q.channel)
	}
	if q.startDate != "" {
		parts = append(parts, "after:"+q.startDate)
	}
	if q.reaction != "" {
		parts = append(parts, "has::"+q.reaction+":")
	}
	return strings.Join(parts, " ")
}
