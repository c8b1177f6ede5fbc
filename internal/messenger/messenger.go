package messenger

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/raylin-tw/docrelay/internal/config"
)

// Messenger delivers outbound text messages. Reply consumes the single-use
// reply token of an inbound event; Push addresses the user directly and can
// be called any number of times.
type Messenger interface {
	Reply(ctx context.Context, replyToken string, text string) error
	Push(ctx context.Context, userID string, text string) error
}

type Factory func(args interface{}) (Messenger, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

func Register(name string, factory Factory) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" || factory == nil {
		return
	}
	registryMu.Lock()
	registry[key] = factory
	registryMu.Unlock()
}

func New(cfg config.MessengerConfig) (Messenger, error) {
	key := strings.ToLower(strings.TrimSpace(cfg.Type))
	if key == "" {
		return nil, fmt.Errorf("messenger.type is required")
	}
	registryMu.RLock()
	factory := registry[key]
	registryMu.RUnlock()
	if factory == nil {
		return nil, fmt.Errorf("unsupported messenger type: %s", cfg.Type)
	}
	return factory(cfg.Data)
}

func decodeConfig(args interface{}, dst interface{}) error {
	if args == nil {
		return fmt.Errorf("messenger config is required")
	}
	data, err := json.Marshal(args)
	if err != nil {
		return fmt.Errorf("encode messenger config: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode messenger config: %w", err)
	}
	return nil
}
