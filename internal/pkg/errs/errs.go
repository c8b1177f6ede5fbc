package errs

import (
	"errors"
	"fmt"
)

var (
	ErrFetch            = errors.New("document fetch failed")
	ErrEmptyDocument    = errors.New("document is empty")
	ErrInference        = errors.New("inference failed")
	ErrInferenceTimeout = errors.New("inference timed out")
	ErrDelivery         = errors.New("message delivery failed")
)

func IsFetch(err error) bool {
	return errors.Is(err, ErrFetch)
}

func IsDelivery(err error) bool {
	return errors.Is(err, ErrDelivery)
}

// UserMessage maps an internal failure to the text shown to the user.
// Timeouts get a fixed retry hint; everything else carries the raw error
// description, matching what the platform user expects to see.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInferenceTimeout):
		return "處理您的查詢時發生超時，請嘗試簡化您的問題或稍後再試。"
	case errors.Is(err, ErrEmptyDocument):
		return "無法處理您的請求：有PDF文件為空。"
	case errors.Is(err, ErrInference):
		return fmt.Sprintf("處理您的查詢時發生錯誤: %v", err)
	default:
		return fmt.Sprintf("處理您的請求時發生錯誤: %v", err)
	}
}
