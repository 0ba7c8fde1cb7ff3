package bundle

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"console-server/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service mirrors the console bundle from a bucket to the local disk.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a new bundle service.
func NewService(client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
	}
}

// Fetch downloads every object in the bucket into dest, mirroring object
// keys as relative paths. It returns the number of files written.
func (s *Service) Fetch(ctx context.Context, dest string) (int, error) {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return 0, fmt.Errorf("checking bucket %q: %w", s.bucket, err)
	}
	if !exists {
		return 0, fmt.Errorf("bucket %q does not exist", s.bucket)
	}

	count := 0
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return count, fmt.Errorf("listing bucket %q: %w", s.bucket, obj.Err)
		}
		// Folder markers carry no content.
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		if err := s.fetchObject(ctx, obj.Key, dest); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

func (s *Service) fetchObject(ctx context.Context, key, dest string) error {
	rc, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return fmt.Errorf("downloading %q: %w", key, err)
	}
	defer rc.Close()

	// Keys are joined under dest the same way request paths are joined
	// under the asset root: cleaned as absolute first.
	target := filepath.Join(dest, filepath.Clean("/"+key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating directory for %q: %w", key, err)
	}

	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("creating %q: %w", target, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, rc); err != nil {
		return fmt.Errorf("writing %q: %w", target, err)
	}

	s.logger.Debug("Fetched object", zap.String("key", key))
	return nil
}
