package digest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSentence(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  string
	}{
		{name: "empty", words: nil, want: ""},
		{name: "one word", words: []string{"Ann"}, want: "Ann"},
		{name: "two words", words: []string{"Ann", "Bo"}, want: "Ann and Bo"},
		{name: "three words use an oxford comma", words: []string{"Ann", "Bo", "Cid"}, want: "Ann, Bo, and Cid"},
		{name: "four words", words: []string{"Ann", "Bo", "Cid", "Dee"}, want: "Ann, Bo, Cid, and Dee"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sentence(tt.words))
		})
	}
}

func TestPrettyDate(t *testing.T) {
	date := time.Date(2022, time.September, 30, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "Sep 30, 2022", prettyDate(date))
}
