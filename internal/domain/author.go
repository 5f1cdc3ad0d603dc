package domain

import "fmt"

// DefaultAuthorLink is used when the author directory has no entry for a
// handle. It renders as a visible placeholder so editors can fill it in
// before publishing.
const DefaultAuthorLink = "#to-do"

// Author identifies the person behind a curated message.
// Two Authors are the same contributor only if all three fields match.
type Author struct {
	// ID is the workspace handle (username) of the author. It doubles as
	// the markdown footnote reference id.
	ID string `json:"id"`

	// DisplayName is the resolved human-readable name.
	DisplayName string `json:"display_name"`

	// Link points to the author's preferred attribution page.
	Link string `json:"link"`
}

func (a Author) String() string {
	return a.DisplayName
}

// NameWithLinkReference renders the display name as a markdown
// reference-style link, e.g. "[Jane Doe][jane]".
func (a Author) NameWithLinkReference() string {
	return fmt.Sprintf("[%s][%s]", a.DisplayName, a.ID)
}

// ReferenceLink renders the footnote line resolving the reference,
// e.g. "[jane]: https://example.com/jane".
func (a Author) ReferenceLink() string {
	return fmt.Sprintf("[%s]: %s", a.ID, a.Link)
}
