package docstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/raylin-tw/docrelay/internal/config"
	"github.com/raylin-tw/docrelay/internal/pkg/errs"
)

func TestNewUnknownType(t *testing.T) {
	_, err := New(config.DocStoreConfig{Type: "ftp"})
	require.Error(t, err)

	_, err = New(config.DocStoreConfig{})
	require.Error(t, err)
}

func TestLocalStoreFetch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ref.pdf"), []byte("%PDF-1.4 fake"), 0o644))

	store, err := New(config.DocStoreConfig{
		Type: "local",
		Data: map[string]interface{}{"dir": dir},
	})
	require.NoError(t, err)

	data, err := store.Fetch(context.Background(), "ref.pdf")
	require.NoError(t, err)
	require.Equal(t, []byte("%PDF-1.4 fake"), data)
}

func TestLocalStoreFetchMissing(t *testing.T) {
	store, err := New(config.DocStoreConfig{
		Type: "local",
		Data: map[string]interface{}{"dir": t.TempDir()},
	})
	require.NoError(t, err)

	_, err = store.Fetch(context.Background(), "absent.pdf")
	require.Error(t, err)
	require.True(t, errs.IsFetch(err))

	_, err = store.Fetch(context.Background(), "../escape.pdf")
	require.Error(t, err)
}

func TestGDriveStoreRequiresCredentials(t *testing.T) {
	_, err := New(config.DocStoreConfig{
		Type: "gdrive",
		Data: map[string]interface{}{},
	})
	require.Error(t, err)
}

func TestS3StoreRequiresSecrets(t *testing.T) {
	_, err := New(config.DocStoreConfig{
		Type: "s3",
		Data: map[string]interface{}{"endpoint": "127.0.0.1:9000"},
	})
	require.Error(t, err)
}
