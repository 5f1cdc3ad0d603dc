package domain

import "time"

// GoldBatch is the dated collection of nuggets packed by one exploration
// run. It is created once and read-only afterwards.
type GoldBatch struct {
	// Nuggets, in discovery order (TIL searches first, then tips, then
	// hand-picked reactions), deduplicated by Source.
	Nuggets []GoldNugget `json:"nuggets"`

	// Origin is the channel the nuggets were mined from.
	Origin string `json:"origin"`

	// PackingDate is the start of the window the batch covers.
	PackingDate time.Time `json:"packing_date"`
}

// Authors returns the distinct contributors referenced by the batch, in
// first-seen order. Authors are compared by full identity (id, name, link).
func (b GoldBatch) Authors() []Author {
	var authors []Author
	seen := make(map[Author]struct{}, len(b.Nuggets))
	for _, n := range b.Nuggets {
		if _, ok := seen[n.Author]; ok {
			continue
		}
		seen[n.Author] = struct{}{}
		authors = append(authors, n.Author)
	}
	return authors
}
