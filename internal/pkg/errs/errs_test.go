package errs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserMessage(t *testing.T) {
	require.Equal(t, "", UserMessage(nil))

	msg := UserMessage(fmt.Errorf("%w: no such key", ErrFetch))
	require.Contains(t, msg, "處理您的請求時發生錯誤")
	require.Contains(t, msg, "no such key")

	msg = UserMessage(fmt.Errorf("%w: deadline exceeded", ErrInferenceTimeout))
	require.Equal(t, "處理您的查詢時發生超時，請嘗試簡化您的問題或稍後再試。", msg)

	msg = UserMessage(fmt.Errorf("%w: doc-2", ErrEmptyDocument))
	require.Equal(t, "無法處理您的請求：有PDF文件為空。", msg)

	msg = UserMessage(fmt.Errorf("%w: model exploded", ErrInference))
	require.Contains(t, msg, "處理您的查詢時發生錯誤")
	require.Contains(t, msg, "model exploded")
}

func TestTaggedChecks(t *testing.T) {
	require.True(t, IsFetch(fmt.Errorf("%w: x", ErrFetch)))
	require.False(t, IsFetch(ErrDelivery))
	require.True(t, IsDelivery(fmt.Errorf("deliver chunk 0: %w", ErrDelivery)))
}
