// Package authors maps workspace handles to preferred attribution links.
//
// The directory is backed by a small YAML file of the form:
//
//	jane:
//	  link: https://example.com/authors/jane
//	bo:
//	  link: https://example.com/authors/bo
//
// Handles missing from the file resolve to a placeholder link so the
// rendered digest stays valid and the gap is easy to spot during review.
package authors

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"goldminer/internal/domain"
)

// Directory is an immutable handle -> link lookup.
type Directory struct {
	links map[string]string
}

type directoryEntry struct {
	Link string `yaml:"link"`
}

// New builds a directory from an in-memory handle -> link map.
func New(links map[string]string) *Directory {
	if links == nil {
		links = map[string]string{}
	}
	return &Directory{links: links}
}

// Load reads a directory from a YAML file.
func Load(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read authors file %s: %w", path, err)
	}

	var entries map[string]directoryEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse authors file %s: %w", path, err)
	}

	links := make(map[string]string, len(entries))
	for handle, entry := range entries {
		links[handle] = entry.Link
	}
	return New(links), nil
}

// LinkFor returns the attribution link for a handle, or the placeholder
// link when the handle is unknown.
func (d *Directory) LinkFor(handle string) string {
	if link, ok := d.links[handle]; ok {
		return link
	}
	return domain.DefaultAuthorLink
}
