package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/raylin-tw/docrelay/internal/model"
)

const defaultClaudeModel = "claude-sonnet-4-20250514"

type claudeConfig struct {
	APIKey    string `json:"api_key"`
	MaxTokens int    `json:"max_tokens"`
}

type claudeProvider struct {
	apiKey    string
	maxTokens int
}

func (p *claudeProvider) Name() string {
	return "claude"
}

func (p *claudeProvider) Infer(ctx context.Context, modelName string, docs []model.DocumentPayload, query string) (string, error) {
	if p.apiKey == "" {
		return "", ErrUnavailable
	}
	if modelName == "" {
		modelName = defaultClaudeModel
	}
	client := anthropic.NewClient(option.WithAPIKey(p.apiKey))

	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(docs)+1)
	for _, doc := range docs {
		blocks = append(blocks, anthropic.NewDocumentBlock(anthropic.Base64PDFSourceParam{
			Data: base64.StdEncoding.EncodeToString(doc.Data),
		}))
	}
	blocks = append(blocks, anthropic.NewTextBlock(query))

	resp, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelName),
		MaxTokens: int64(p.maxTokens),
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(blocks...)},
	})
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("no text content in claude response")
	}
	return strings.TrimSpace(sb.String()), nil
}

func createClaudeProvider(args interface{}) (IProvider, error) {
	cfg := &claudeConfig{}
	if err := decodeConfig(args, cfg); err != nil {
		return nil, err
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 8192
	}
	return &claudeProvider{
		apiKey:    strings.TrimSpace(cfg.APIKey),
		maxTokens: cfg.MaxTokens,
	}, nil
}

func init() {
	Register("claude", createClaudeProvider)
}
