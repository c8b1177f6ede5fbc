package messenger

import (
	"context"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

// stdoutMessenger logs outbound messages instead of delivering them.
// Local development only.
type stdoutMessenger struct{}

func init() {
	Register("stdout", func(args interface{}) (Messenger, error) {
		_ = args
		return &stdoutMessenger{}, nil
	})
}

func (m *stdoutMessenger) Reply(ctx context.Context, replyToken string, text string) error {
	logutil.GetLogger(ctx).Info("reply message",
		zap.String("reply_token", replyToken),
		zap.Int("length", len(text)),
		zap.String("text", text),
	)
	return nil
}

func (m *stdoutMessenger) Push(ctx context.Context, userID string, text string) error {
	logutil.GetLogger(ctx).Info("push message",
		zap.String("user_id", userID),
		zap.Int("length", len(text)),
		zap.String("text", text),
	)
	return nil
}
