package docstore

import (
	"context"
	"fmt"
	"io"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/raylin-tw/docrelay/internal/pkg/errs"
)

type gdriveConfig struct {
	CredentialsFile string `json:"credentials_file"`
}

// gdriveStore downloads files through the Drive API with a read-only
// service-account credential.
type gdriveStore struct {
	credentialsFile string
}

func init() {
	Register("gdrive", createGDriveStore)
}

func createGDriveStore(args interface{}) (Store, error) {
	config := &gdriveConfig{}
	if err := decodeConfig(args, config); err != nil {
		return nil, err
	}
	if config.CredentialsFile == "" {
		return nil, fmt.Errorf("gdrive credentials_file is required")
	}
	return &gdriveStore{credentialsFile: config.CredentialsFile}, nil
}

func (s *gdriveStore) Fetch(ctx context.Context, fileID string) ([]byte, error) {
	if fileID == "" {
		return nil, fmt.Errorf("%w: file id is required", errs.ErrFetch)
	}
	svc, err := drive.NewService(ctx,
		option.WithCredentialsFile(s.credentialsFile),
		option.WithScopes(drive.DriveReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: init drive client: %v", errs.ErrFetch, err)
	}
	resp, err := svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("%w: download %s: %v", errs.ErrFetch, fileID, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", errs.ErrFetch, fileID, err)
	}
	logutil.GetLogger(ctx).Info("document downloaded from drive",
		zap.String("file_id", fileID),
		zap.Int("size", len(data)),
	)
	return data, nil
}
