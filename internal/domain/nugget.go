package domain

import "fmt"

// GoldNugget is one curated message selected as noteworthy for the digest.
// The permalink in Source is the nugget's identity: a batch never contains
// two nuggets with the same Source.
type GoldNugget struct {
	// Content is the raw message text.
	Content string `json:"content"`

	// Author is the resolved author of the message.
	Author Author `json:"author"`

	// Source is the message permalink.
	Source string `json:"source"`
}

// AsConversation renders the nugget as an attributed quote followed by the
// footnote line resolving the author's link:
//
//	[Jane Doe][jane] says: TIL about clamp()
//
//	[jane]: https://example.com/jane
func (n GoldNugget) AsConversation() string {
	return fmt.Sprintf("%s says: %s\n\n%s\n", n.Author.NameWithLinkReference(), n.Content, n.Author.ReferenceLink())
}
