package blog

import (
	"encoding/json"
	"math"
	"strings"
	"unicode/utf8"
)

// Reading-speed constants. Plain text length is counted in Unicode runes so
// the estimate behaves the same for English and Japanese bodies, then divided
// by 5 chars/word and 180 words/minute and rounded to whole minutes.
const (
	charsPerWord   = 5
	wordsPerMinute = 180
)

// EstimatedReadingTime estimates reading minutes for a plain-text rendering
// of a post body. Pure and deterministic: identical input, identical result.
func EstimatedReadingTime(plain string) int {
	runes := utf8.RuneCountInString(plain)
	return int(math.Round(float64(runes) / charsPerWord / wordsPerMinute))
}

type textSpan struct {
	Text string `json:"text"`
}

type textBlock struct {
	Type     string     `json:"_type"`
	Children []textSpan `json:"children"`
}

// PlainText flattens the body to plain text: span texts of each "block" node
// concatenated, blocks joined by newlines. Custom nodes (images, tables,
// embeds, code) contribute nothing. A malformed tree yields the empty string,
// never an error.
func (pt PortableText) PlainText() string {
	if len(pt) == 0 {
		return ""
	}

	var blocks []textBlock
	if err := json.Unmarshal([]byte(pt), &blocks); err != nil {
		return ""
	}

	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b.Type != "block" {
			continue
		}
		var sb strings.Builder
		for _, span := range b.Children {
			sb.WriteString(span.Text)
		}
		if sb.Len() > 0 {
			parts = append(parts, sb.String())
		}
	}

	return strings.Join(parts, "\n")
}
