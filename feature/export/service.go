package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"nbcli/core/render"
	"nbcli/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ObjectPrefix is the key prefix of uploaded exports.
const ObjectPrefix = "exports"

// Service writes list tables to a writer or to object storage.
type Service struct {
	client storage.Client
	bucket string
	region string
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new export service. client may be nil when uploads are not used.
func NewService(client storage.Client, cfg storage.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		bucket: cfg.Bucket,
		region: cfg.Region,
		logger: logger,
		now:    time.Now,
	}
}

// Write encodes table to w.
func (s *Service) Write(w io.Writer, format Format, table *render.Table) error {
	return Encode(w, format, table)
}

// Upload encodes table and stores it as exports/<category>/<UTC timestamp>.<ext>,
// creating the bucket when missing. It returns the object name.
func (s *Service) Upload(ctx context.Context, category string, format Format, table *render.Table) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("storage client not configured")
	}

	var buf bytes.Buffer
	if err := Encode(&buf, format, table); err != nil {
		return "", err
	}

	if err := storage.EnsureBucket(ctx, s.client, s.bucket, s.region); err != nil {
		return "", err
	}

	objectName := ObjectName(category, format, s.now())
	info, err := s.client.PutObject(ctx, s.bucket, objectName, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: format.ContentType(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", objectName, err)
	}

	s.logger.Info("Export uploaded",
		zap.String("bucket", s.bucket),
		zap.String("object", objectName),
		zap.Int64("size", info.Size),
		zap.Int("rows", table.Len()))
	return objectName, nil
}

// ObjectName returns the object key for an export taken at t.
func ObjectName(category string, format Format, t time.Time) string {
	return fmt.Sprintf("%s/%s/%s.%s", ObjectPrefix, category, t.UTC().Format("20060102T150405Z"), format.Extension())
}
