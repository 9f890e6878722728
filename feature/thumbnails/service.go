package thumbnails

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"kitinventory/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service serves kit and part thumbnail images from object storage, mirroring
// them from the catalog's image host on first access.
type Service struct {
	client     storage.Client
	bucket     string
	imageHost  string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewService creates a thumbnail service. imageHost is the base URL the
// catalog serves original images from.
func NewService(client storage.Client, bucket, imageHost string, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client:     client,
		bucket:     bucket,
		imageHost:  strings.TrimSuffix(imageHost, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// EnsureBucket creates the thumbnail bucket if it does not exist yet.
func (s *Service) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// Get returns the thumbnail image bytes for the given object name. On a
// storage miss the image is fetched from the catalog's image host, mirrored
// into the bucket, and returned.
func (s *Service) Get(ctx context.Context, name string) ([]byte, error) {
	if obj, err := s.client.GetObject(ctx, s.bucket, name, minio.GetObjectOptions{}); err == nil {
		defer obj.Close()
		data, readErr := io.ReadAll(obj)
		if readErr == nil && len(data) > 0 {
			return data, nil
		}
		// A zero-length or unreadable object falls through to the mirror path
	}

	data, err := s.fetchOrigin(ctx, name)
	if err != nil {
		return nil, err
	}

	if _, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{}); err != nil {
		// Mirroring is an optimization; serving the image still succeeds
		s.logger.Warn("failed to mirror thumbnail",
			zap.String("object", name),
			zap.Error(err),
		)
	}
	return data, nil
}

func (s *Service) fetchOrigin(ctx context.Context, name string) ([]byte, error) {
	url := s.imageHost + "/thumbnail/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image host returned HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}
	return data, nil
}
