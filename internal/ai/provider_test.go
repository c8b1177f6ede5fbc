package ai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raylin-tw/docrelay/internal/model"
)

func TestNewProvider(t *testing.T) {
	_, err := NewProvider("", nil)
	require.Error(t, err)

	_, err = NewProvider("nonexistent", nil)
	require.Error(t, err)

	p, err := NewProvider("gemini", map[string]interface{}{"api_key": "k"})
	require.NoError(t, err)
	require.Equal(t, "gemini", p.Name())

	p, err = NewProvider("Claude", map[string]interface{}{"api_key": "k"})
	require.NoError(t, err)
	require.Equal(t, "claude", p.Name())
}

func TestProviderConfigRequired(t *testing.T) {
	_, err := NewProvider("gemini", nil)
	require.Error(t, err)
}

func TestInferWithoutAPIKey(t *testing.T) {
	docs := []model.DocumentPayload{{FileID: "f", MIMEType: model.MIMETypePDF, Data: []byte("x")}}

	p, err := NewProvider("gemini", map[string]interface{}{})
	require.NoError(t, err)
	_, err = p.Infer(context.Background(), "", docs, "q")
	require.ErrorIs(t, err, ErrUnavailable)

	p, err = NewProvider("claude", map[string]interface{}{})
	require.NoError(t, err)
	_, err = p.Infer(context.Background(), "", docs, "q")
	require.ErrorIs(t, err, ErrUnavailable)
}
