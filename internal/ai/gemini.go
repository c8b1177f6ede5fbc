package ai

import (
	"bytes"
	"context"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/raylin-tw/docrelay/internal/model"
)

const defaultGeminiModel = "gemini-2.0-flash"

// Documents above this size go through the Files API instead of being sent
// inline; Gemini rejects inline requests around the 20MiB mark.
const geminiInlineLimit = 15 << 20

type geminiConfig struct {
	APIKey string `json:"api_key"`
}

type geminiProvider struct {
	apiKey string
}

func (p *geminiProvider) Name() string {
	return "gemini"
}

func (p *geminiProvider) Infer(ctx context.Context, modelName string, docs []model.DocumentPayload, query string) (string, error) {
	if p.apiKey == "" {
		return "", ErrUnavailable
	}
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", err
	}
	logger := logutil.GetLogger(ctx)
	parts := make([]*genai.Part, 0, len(docs)+1)
	for _, doc := range docs {
		if len(doc.Data) > geminiInlineLimit {
			file, err := client.Files.Upload(ctx, bytes.NewReader(doc.Data), &genai.UploadFileConfig{
				MIMEType: doc.MIMEType,
			})
			if err != nil {
				return "", err
			}
			logger.Info("document uploaded to gemini files api",
				zap.String("file_id", doc.FileID),
				zap.String("uri", file.URI),
			)
			parts = append(parts, genai.NewPartFromURI(file.URI, file.MIMEType))
			continue
		}
		parts = append(parts, genai.NewPartFromBytes(doc.Data, doc.MIMEType))
	}
	parts = append(parts, genai.NewPartFromText(query))

	resp, err := client.Models.GenerateContent(
		ctx,
		modelName,
		[]*genai.Content{{Role: genai.RoleUser, Parts: parts}},
		nil,
	)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}

func createGeminiProvider(args interface{}) (IProvider, error) {
	cfg := &geminiConfig{}
	if err := decodeConfig(args, cfg); err != nil {
		return nil, err
	}
	return &geminiProvider{apiKey: strings.TrimSpace(cfg.APIKey)}, nil
}

func init() {
	Register("gemini", createGeminiProvider)
}
