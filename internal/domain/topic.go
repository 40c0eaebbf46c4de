package domain

import (
	"strings"
	"unicode"
)

// Topic is the free-text subject study notes are generated for.
// It keeps the text exactly as submitted; surrounding whitespace is only
// ignored when deciding whether the topic is blank.
type Topic string

// NewTopic validates text and returns it as a Topic.
// Returns ErrTopicRequired if text is blank after trimming.
func NewTopic(text string) (Topic, error) {
	if strings.TrimFunc(text, isTrimmable) == "" {
		return "", ErrTopicRequired
	}
	return Topic(text), nil
}

// String returns the original, untrimmed topic text.
func (t Topic) String() string {
	return string(t)
}

// isTrimmable reports whether r counts as surrounding whitespace.
// The byte order mark is included because browsers strip it as whitespace too.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
