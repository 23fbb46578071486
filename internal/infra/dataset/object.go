package dataset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yanqian/sunsafe/internal/domain/lookup"
)

const maxSnapshotBytes = 8 << 20

// ObjectSource fetches the YAML snapshot from an S3-compatible bucket.
type ObjectSource struct {
	client *minio.Client
	bucket string
	key    string
	logger *slog.Logger
}

// NewObjectSource constructs the source. Endpoint may carry an http(s) scheme.
func NewObjectSource(endpoint, accessKey, secretKey, bucket, region, key string, logger *slog.Logger) (*ObjectSource, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if strings.TrimSpace(bucket) == "" || strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("object store bucket and key are required")
	}
	useSSL := !strings.HasPrefix(strings.ToLower(endpoint), "http://")
	client, err := minio.New(sanitizeEndpoint(endpoint), &minio.Options{
		Creds:        credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure:       useSSL,
		Region:       region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("init object store client: %w", err)
	}
	return &ObjectSource{
		client: client,
		bucket: bucket,
		key:    key,
		logger: logger.With("component", "dataset.object"),
	}, nil
}

// Load downloads and validates the snapshot.
func (s *ObjectSource) Load(ctx context.Context) (lookup.Dataset, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return lookup.Dataset{}, fmt.Errorf("get dataset object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(io.LimitReader(obj, maxSnapshotBytes+1))
	if err != nil {
		return lookup.Dataset{}, fmt.Errorf("read dataset object: %w", err)
	}
	if len(data) > maxSnapshotBytes {
		return lookup.Dataset{}, fmt.Errorf("dataset object exceeds %d bytes", maxSnapshotBytes)
	}
	s.logger.Info("dataset snapshot downloaded", "bucket", s.bucket, "key", s.key, "bytes", len(data))
	return decodeSnapshot(data)
}

func sanitizeEndpoint(endpoint string) string {
	clean := strings.TrimSpace(endpoint)
	clean = strings.TrimPrefix(clean, "https://")
	clean = strings.TrimPrefix(clean, "http://")
	return strings.TrimRight(clean, "/")
}

var _ lookup.Source = (*ObjectSource)(nil)
