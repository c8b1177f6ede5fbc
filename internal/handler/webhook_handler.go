package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/line/line-bot-sdk-go/v8/linebot/webhook"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/raylin-tw/docrelay/internal/messenger"
	"github.com/raylin-tw/docrelay/internal/model"
	"github.com/raylin-tw/docrelay/internal/pkg/errs"
)

// Relayer processes one verified text-message query end to end.
type Relayer interface {
	HandleTextMessage(ctx context.Context, q model.Query) error
}

type WebhookHandler struct {
	channelSecret string
	relay         Relayer
	messenger     messenger.Messenger
}

func NewWebhookHandler(channelSecret string, relay Relayer, msgr messenger.Messenger) *WebhookHandler {
	return &WebhookHandler{
		channelSecret: channelSecret,
		relay:         relay,
		messenger:     msgr,
	}
}

// Callback is the webhook endpoint. A request with a bad signature gets 400;
// everything else is acknowledged with 200 "OK" no matter what happened
// inside, so the platform never retries delivery because of our own
// failures. Events are processed synchronously, one at a time.
func (h *WebhookHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := logutil.GetLogger(ctx)

	cb, err := webhook.ParseRequest(h.channelSecret, c.Request)
	if err != nil {
		logger.Warn("webhook verification failed", zap.Error(err))
		c.String(http.StatusBadRequest, "")
		return
	}

	for _, event := range cb.Events {
		me, ok := event.(webhook.MessageEvent)
		if !ok {
			continue
		}
		tm, ok := me.Message.(webhook.TextMessageContent)
		if !ok {
			continue
		}
		q := model.Query{ReplyToken: me.ReplyToken, Text: tm.Text}
		switch src := me.Source.(type) {
		case webhook.UserSource:
			q.UserID = src.UserId
		case webhook.GroupSource:
			q.UserID = src.UserId
		case webhook.RoomSource:
			q.UserID = src.UserId
		}
		if q.UserID == "" {
			logger.Warn("message event without user id, skipping")
			continue
		}
		if err := h.relay.HandleTextMessage(ctx, q); err != nil {
			logger.Error("relay failed", zap.String("user_id", q.UserID), zap.Error(err))
			// Last line of defense. The reply token may already be
			// consumed, in which case this fails silently.
			if rerr := h.messenger.Reply(ctx, q.ReplyToken, errs.UserMessage(err)); rerr != nil {
				logger.Warn("final error reply failed", zap.Error(rerr))
			}
		}
	}

	c.String(http.StatusOK, "OK")
}
