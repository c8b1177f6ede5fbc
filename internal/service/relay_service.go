package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/raylin-tw/docrelay/internal/ai"
	"github.com/raylin-tw/docrelay/internal/chunk"
	"github.com/raylin-tw/docrelay/internal/docstore"
	"github.com/raylin-tw/docrelay/internal/messenger"
	"github.com/raylin-tw/docrelay/internal/model"
	"github.com/raylin-tw/docrelay/internal/pkg/errs"
)

// RelayService runs the pipeline for one verified text-message event:
// acknowledgment push, document fetch, inference, chunked delivery.
// Every request fetches its documents fresh; nothing is cached in between.
type RelayService struct {
	store      docstore.Store
	provider   ai.IProvider
	messenger  messenger.Messenger
	modelName  string
	docIDs     []string
	ackMessage string
	timeout    time.Duration
}

func NewRelayService(
	store docstore.Store,
	provider ai.IProvider,
	msgr messenger.Messenger,
	modelName string,
	docIDs []string,
	ackMessage string,
	timeout time.Duration,
) *RelayService {
	return &RelayService{
		store:      store,
		provider:   provider,
		messenger:  msgr,
		modelName:  modelName,
		docIDs:     docIDs,
		ackMessage: ackMessage,
		timeout:    timeout,
	}
}

// HandleTextMessage processes one query start to finish. Fetch and inference
// failures are converted into user-visible replies here and are not returned;
// delivery failures propagate so the caller can run its last line of defense.
func (s *RelayService) HandleTextMessage(ctx context.Context, q model.Query) error {
	logger := logutil.GetLogger(ctx).With(zap.String("user_id", q.UserID))

	// The acknowledgment goes out before the fetch, so it fires even when a
	// later step fails. Its own failure never aborts the request.
	if s.ackMessage != "" {
		if err := s.messenger.Push(ctx, q.UserID, s.ackMessage); err != nil {
			logger.Warn("ack push failed", zap.Error(err))
		}
	}

	docs, err := s.fetchDocuments(ctx)
	if err != nil {
		logger.Error("document fetch failed", zap.Error(err))
		if rerr := s.messenger.Reply(ctx, q.ReplyToken, errs.UserMessage(err)); rerr != nil {
			return rerr
		}
		return nil
	}

	answer, err := s.infer(ctx, docs, q.Text)
	if err != nil {
		logger.Error("inference failed", zap.Error(err))
		// Converted to a user-facing explanation and delivered like any
		// other answer.
		answer = errs.UserMessage(err)
	}

	return s.deliver(ctx, q, answer)
}

func (s *RelayService) fetchDocuments(ctx context.Context) ([]model.DocumentPayload, error) {
	logger := logutil.GetLogger(ctx)
	docs := make([]model.DocumentPayload, 0, len(s.docIDs))
	for _, id := range s.docIDs {
		data, err := s.store.Fetch(ctx, id)
		if err != nil {
			return nil, err
		}
		docs = append(docs, model.DocumentPayload{
			FileID:   id,
			MIMEType: model.MIMETypePDF,
			Data:     data,
		})
	}
	for _, doc := range docs {
		if len(doc.Data) == 0 {
			return nil, fmt.Errorf("%w: %s", errs.ErrEmptyDocument, doc.FileID)
		}
	}
	logger.Info("documents fetched", zap.Int("count", len(docs)))
	return docs, nil
}

func (s *RelayService) infer(ctx context.Context, docs []model.DocumentPayload, query string) (string, error) {
	inferCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		inferCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	answer, err := s.provider.Infer(inferCtx, s.modelName, docs, query)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", errs.ErrInferenceTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", errs.ErrInference, err)
	}
	return answer, nil
}

func (s *RelayService) deliver(ctx context.Context, q model.Query, answer string) error {
	logger := logutil.GetLogger(ctx).With(zap.String("user_id", q.UserID))
	chunks := chunk.Split(answer)
	logger.Info("delivering response",
		zap.Int("length", len(answer)),
		zap.Int("chunks", len(chunks)),
	)
	for _, c := range chunks {
		var err error
		switch c.Channel {
		case model.ChannelReply:
			err = s.messenger.Reply(ctx, q.ReplyToken, c.Text)
		default:
			err = s.messenger.Push(ctx, q.UserID, c.Text)
		}
		if err != nil {
			return fmt.Errorf("deliver chunk %d: %w", c.Index, err)
		}
	}
	return nil
}
