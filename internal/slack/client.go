// Package slack wraps the workspace API surface the miner consumes: message
// search, display-name lookup, and the auth check performed at build time.
package slack

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	slackapi "github.com/slack-go/slack"
)

// Message is a provider search match reduced to the fields the pipeline
// needs. The author's display name is not part of a search match and must
// be resolved separately through ResolveDisplayName.
type Message struct {
	Text      string
	UserID    string
	Username  string
	Permalink string
}

// Client is an authenticated workspace client.
type Client struct {
	api *slackapi.Client
	log logrus.FieldLogger
}

// NewClient builds a client and verifies the token with an auth check.
// A failed check returns an AuthenticationError; no search is attempted
// with an unverified token.
func NewClient(ctx context.Context, apiToken string, logger logrus.FieldLogger, opts ...slackapi.Option) (*Client, error) {
	api := slackapi.New(apiToken, opts...)

	if _, err := api.AuthTestContext(ctx); err != nil {
		return nil, &AuthenticationError{Err: err}
	}

	return &Client{
		api: api,
		log: logger.WithField("component", "slack_client"),
	}, nil
}

// SearchMessages runs a message search and returns the first page of
// matches. Pagination is not followed: when the provider reports more than
// one page the truncation is logged as a warning and the first page is
// used as-is.
func (c *Client) SearchMessages(ctx context.Context, query string) ([]Message, error) {
	result, err := c.api.SearchMessagesContext(ctx, query, slackapi.NewSearchParameters())
	if err != nil {
		return nil, &TransportError{Op: fmt.Sprintf("search %q", query), Err: err}
	}

	if result.Paging.Pages > 1 {
		c.log.WithFields(logrus.Fields{
			"query": query,
			"pages": result.Paging.Pages,
		}).Warn("Found more than one page of results, only the first page will be processed")
	}

	matches := make([]Message, 0, len(result.Matches))
	for _, match := range result.Matches {
		matches = append(matches, Message{
			Text:      match.Text,
			UserID:    match.User,
			Username:  match.Username,
			Permalink: match.Permalink,
		})
	}
	return matches, nil
}

// ResolveDisplayName looks up the human-readable name for a user id.
func (c *Client) ResolveDisplayName(ctx context.Context, userID string) (string, error) {
	user, err := c.api.GetUserInfoContext(ctx, userID)
	if err != nil {
		return "", &TransportError{Op: fmt.Sprintf("users.info %s", userID), Err: err}
	}
	return user.Profile.RealName, nil
}
