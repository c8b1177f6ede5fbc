package chunk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raylin-tw/docrelay/internal/model"
)

func TestSplitShortResponses(t *testing.T) {
	tests := []struct {
		name string
		resp string
	}{
		{name: "empty", resp: ""},
		{name: "one char", resp: "a"},
		{name: "above max below threshold", resp: strings.Repeat("a", 4500)},
		{name: "exactly threshold", resp: strings.Repeat("a", 5000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.resp)
			require.Len(t, got, 1)
			require.Equal(t, tt.resp, got[0].Text)
			require.Equal(t, model.ChannelReply, got[0].Channel)
			require.Equal(t, 0, got[0].Index)
		})
	}
}

func TestSplitLongResponses(t *testing.T) {
	tests := []struct {
		name     string
		length   int
		wantLens []int
	}{
		{name: "just above threshold", length: 5001, wantLens: []int{4000, 1001}},
		{name: "9000 chars", length: 9000, wantLens: []int{4000, 4000, 1000}},
		{name: "evenly divisible", length: 8000, wantLens: []int{4000, 4000}},
		{name: "remainder of one", length: 12001, wantLens: []int{4000, 4000, 4000, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := strings.Repeat("a", tt.length)
			got := Split(resp)
			require.Len(t, got, len(tt.wantLens))
			var rebuilt strings.Builder
			for i, c := range got {
				require.Equal(t, tt.wantLens[i], len(c.Text))
				require.Equal(t, i, c.Index)
				if i == 0 {
					require.Equal(t, model.ChannelReply, c.Channel)
				} else {
					require.Equal(t, model.ChannelPush, c.Channel)
				}
				rebuilt.WriteString(c.Text)
			}
			require.Equal(t, resp, rebuilt.String())
		})
	}
}

func TestSplitPreservesContentOrder(t *testing.T) {
	var b strings.Builder
	for b.Len() <= SplitThreshold {
		b.WriteString("0123456789")
	}
	resp := b.String()
	got := Split(resp)
	require.Greater(t, len(got), 1)
	var rebuilt strings.Builder
	for _, c := range got {
		rebuilt.WriteString(c.Text)
	}
	require.Equal(t, resp, rebuilt.String())
}
