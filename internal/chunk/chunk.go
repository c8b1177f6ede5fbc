package chunk

import (
	"github.com/raylin-tw/docrelay/internal/model"
)

const (
	// MaxMessageChars is the platform's single-message size ceiling.
	MaxMessageChars = 4000
	// SplitThreshold is the response length above which splitting kicks in.
	// Responses at or below it go out as one reply even when they exceed
	// MaxMessageChars.
	SplitThreshold = 5000
)

// Split converts one response string into an ordered delivery plan. Chunk 0
// always goes through the reply channel; every later chunk goes through push.
// The split is raw length-based: concatenating the chunk texts in order
// reproduces the input exactly, and no word or rune boundary is respected.
func Split(resp string) []model.MessageChunk {
	if len(resp) <= SplitThreshold {
		return []model.MessageChunk{{Index: 0, Channel: model.ChannelReply, Text: resp}}
	}
	chunks := make([]model.MessageChunk, 0, (len(resp)+MaxMessageChars-1)/MaxMessageChars)
	for i := 0; i < len(resp); i += MaxMessageChars {
		end := i + MaxMessageChars
		if end > len(resp) {
			end = len(resp)
		}
		channel := model.ChannelPush
		if i == 0 {
			channel = model.ChannelReply
		}
		chunks = append(chunks, model.MessageChunk{
			Index:   len(chunks),
			Channel: channel,
			Text:    resp[i:end],
		})
	}
	return chunks
}
