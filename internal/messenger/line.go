package messenger

import (
	"context"
	"fmt"

	"github.com/line/line-bot-sdk-go/v8/linebot/messaging_api"

	"github.com/raylin-tw/docrelay/internal/pkg/errs"
)

type lineConfig struct {
	ChannelAccessToken string `json:"channel_access_token"`
}

type lineMessenger struct {
	api *messaging_api.MessagingApiAPI
}

func init() {
	Register("line", createLineMessenger)
}

func createLineMessenger(args interface{}) (Messenger, error) {
	cfg := &lineConfig{}
	if err := decodeConfig(args, cfg); err != nil {
		return nil, err
	}
	if cfg.ChannelAccessToken == "" {
		return nil, fmt.Errorf("line channel_access_token is required")
	}
	api, err := messaging_api.NewMessagingApiAPI(cfg.ChannelAccessToken)
	if err != nil {
		return nil, fmt.Errorf("init line messaging api: %w", err)
	}
	return &lineMessenger{api: api}, nil
}

func (m *lineMessenger) Reply(ctx context.Context, replyToken string, text string) error {
	_ = ctx
	_, err := m.api.ReplyMessage(&messaging_api.ReplyMessageRequest{
		ReplyToken: replyToken,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: text},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: reply: %v", errs.ErrDelivery, err)
	}
	return nil
}

func (m *lineMessenger) Push(ctx context.Context, userID string, text string) error {
	_ = ctx
	_, err := m.api.PushMessage(&messaging_api.PushMessageRequest{
		To: userID,
		Messages: []messaging_api.MessageInterface{
			messaging_api.TextMessage{Text: text},
		},
	}, "")
	if err != nil {
		return fmt.Errorf("%w: push: %v", errs.ErrDelivery, err)
	}
	return nil
}
