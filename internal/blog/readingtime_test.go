package blog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimatedReadingTime(t *testing.T) {
	t.Run("EmptyBodyIsZero", func(t *testing.T) {
		assert.Equal(t, 0, EstimatedReadingTime(""))
	})

	t.Run("ShortBodyRoundsDownToZero", func(t *testing.T) {
		// 100 runes -> 20 words -> 0.11 minutes.
		assert.Equal(t, 0, EstimatedReadingTime(strings.Repeat("a", 100)))
	})

	t.Run("RoundsToNearestMinute", func(t *testing.T) {
		// 900 runes is exactly one minute at 5 chars/word, 180 words/min.
		assert.Equal(t, 1, EstimatedReadingTime(strings.Repeat("a", 900)))
		// 1300 runes -> 1.44 minutes -> 1.
		assert.Equal(t, 1, EstimatedReadingTime(strings.Repeat("a", 1300)))
		// 1400 runes -> 1.56 minutes -> 2.
		assert.Equal(t, 2, EstimatedReadingTime(strings.Repeat("a", 1400)))
	})

	t.Run("CountsRunesNotBytes", func(t *testing.T) {
		// Each kana is 3 bytes in UTF-8; the estimate must not triple.
		ascii := strings.Repeat("a", 900)
		kana := strings.Repeat("あ", 900)
		assert.Equal(t, EstimatedReadingTime(ascii), EstimatedReadingTime(kana))
	})

	t.Run("Deterministic", func(t *testing.T) {
		body := strings.Repeat("kyoto ", 500)
		assert.Equal(t, EstimatedReadingTime(body), EstimatedReadingTime(body))
	})
}

func TestPortableTextPlainText(t *testing.T) {
	t.Run("SpansConcatenatedBlocksJoined", func(t *testing.T) {
		pt := PortableText(`[
			{"_type":"block","children":[{"_type":"span","text":"Hello, "},{"_type":"span","text":"world."}]},
			{"_type":"block","children":[{"_type":"span","text":"Second paragraph."}]}
		]`)
		assert.Equal(t, "Hello, world.\nSecond paragraph.", pt.PlainText())
	})

	t.Run("CustomNodesContributeNothing", func(t *testing.T) {
		pt := PortableText(`[
			{"_type":"image","asset":{"_ref":"image-a-100x100-jpg"}},
			{"_type":"block","children":[{"_type":"span","text":"text"}]},
			{"_type":"codeBlock","code":"fmt.Println()"}
		]`)
		assert.Equal(t, "text", pt.PlainText())
	})

	t.Run("EmptyAndNilBodies", func(t *testing.T) {
		assert.Equal(t, "", PortableText(nil).PlainText())
		assert.Equal(t, "", PortableText(`[]`).PlainText())
	})

	t.Run("MalformedTreeIsEmptyNotError", func(t *testing.T) {
		assert.Equal(t, "", PortableText(`{"not":"an array"}`).PlainText())
		assert.Equal(t, "", PortableText(`[{`).PlainText())
	})
}
