package docstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/raylin-tw/docrelay/internal/pkg/errs"
)

type localConfig struct {
	Dir string `json:"dir"`
}

// localStore reads documents from a directory. Local development only.
type localStore struct {
	dir string
}

func init() {
	Register("local", createLocalStore)
}

func createLocalStore(args interface{}) (Store, error) {
	config := &localConfig{}
	if err := decodeConfig(args, config); err != nil {
		return nil, err
	}
	if config.Dir == "" {
		return nil, fmt.Errorf("local store dir is required")
	}
	return &localStore{dir: config.Dir}, nil
}

func (s *localStore) Fetch(ctx context.Context, fileID string) ([]byte, error) {
	_ = ctx
	if strings.Contains(fileID, "/") || strings.Contains(fileID, "\\") {
		return nil, fmt.Errorf("%w: invalid file id", errs.ErrFetch)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, fileID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrFetch, err)
	}
	return data, nil
}
