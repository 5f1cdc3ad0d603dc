package digest

import (
	"regexp"
	"strings"
)

// topicMatcher pairs a canonical label with the phrases that select it.
// Table order is the output order of ExtractTopics.
type topicMatcher struct {
	label   string
	phrases []string
}

// Languages first, then techniques, tools, paradigms, and the two
// digest-specific labels.
var topicTable = []topicMatcher{
	{"Ruby", []string{"ruby", "ruby on rails"}},
	{"Elixir", []string{"elixir"}},
	{"JavaScript", []string{"javascript", "js", "node", "nodejs", "yarn", "npm"}},
	{"TypeScript", []string{"typescript", "ts"}},
	{"SQL", []string{"sql"}},
	{"CSS", []string{"css"}},
	{"Refactoring", []string{"refactor", "refactoring"}},
	{"Testing", []string{"test", "tests", "testing"}},
	{"Ruby on Rails", []string{"ruby on rails"}},
	{"React", []string{"react", "reactjs"}},
	{"React Native", []string{"react native"}},
	{"Tailwind", []string{"tailwind css", "tailwindcss", "tailwind"}},
	{"Functional Programming", []string{"functional programming"}},
	{"OOP", []string{"object oriented programming", "oop"}},
	{"TIL", []string{"til", "today i learned", "today i learnt"}},
	{"Tip", []string{"tip", "tips"}},
}

var nonWord = regexp.MustCompile(`\W+`)

// ExtractTopics returns the canonical topic labels mentioned in text, in
// table order, each at most once. Matching is case-insensitive and
// whole-word: "ruby" matches "#ruby" but not "rubyon".
func ExtractTopics(text string) []string {
	words := nonWord.Split(strings.ToLower(text), -1)
	tokens := words[:0]
	for _, word := range words {
		if word != "" {
			tokens = append(tokens, word)
		}
	}
	// Padding with spaces turns phrase matching into a substring check
	// against whole tokens.
	sanitized := " " + strings.Join(tokens, " ") + " "

	var topics []string
	for _, matcher := range topicTable {
		for _, phrase := range matcher.phrases {
			if strings.Contains(sanitized, " "+phrase+" ") {
				topics = append(topics, matcher.label)
				break
			}
		}
	}
	return topics
}
