package domain

import "strings"

// Normalizer rewrites rich-text input before it is stored. It is kept as a
// plain function type so the paragraph strip below can be swapped for a full
// HTML sanitizer without touching storage or routing code. Post bodies are
// later rendered unescaped (Post.HTMLBody), so whatever passes through here
// reaches the browser as markup; the normalizer is the one place to restrict
// that.
type Normalizer func(string) string

// StripParagraphTags removes the literal paragraph wrappers the rich-text
// editor adds around submitted bodies. It deliberately touches nothing else.
func StripParagraphTags(s string) string {
	s = strings.ReplaceAll(s, "<p>", "")
	return strings.ReplaceAll(s, "</p>", "")
}

// CollapseWhitespace folds runs of whitespace into single spaces and trims
// both ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Chain composes normalizers left to right.
func Chain(ns ...Normalizer) Normalizer {
	return func(s string) string {
		for _, n := range ns {
			s = n(s)
		}
		return s
	}
}
