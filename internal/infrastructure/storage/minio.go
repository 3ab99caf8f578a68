package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/kurochkinivan/egrid_loader/internal/config"
	"github.com/kurochkinivan/egrid_loader/internal/domain"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var ErrBucketNotFound = errors.New("bucket does not exist")

type Storage struct {
	log    *slog.Logger
	client *minio.Client
	bucket string
	prefix string
}

func New(ctx context.Context, log *slog.Logger, cfg config.MinIO) (*Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.Secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("%q: %w", cfg.Bucket, ErrBucketNotFound)
	}

	return &Storage{
		log:    log,
		client: client,
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
	}, nil
}

// ListEligibleFiles lists every CSV object under the configured prefix.
func (s *Storage) ListEligibleFiles(ctx context.Context) ([]*domain.FileDescriptor, error) {
	const op = "storage.ListEligibleFiles"
	log := s.log.With(slog.String("op", op), slog.String("bucket", s.bucket), slog.String("prefix", s.prefix))

	objects := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.prefix,
		Recursive: true,
	})

	var files []*domain.FileDescriptor
	for object := range objects {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", object.Err)
		}

		file, ok := descriptorOf(s.bucket, object)
		if !ok {
			continue
		}

		files = append(files, file)
	}

	log.DebugContext(ctx, "listed eligible files", slog.Int("count", len(files)))

	return files, nil
}

// ReadSample returns up to byteCount leading bytes of the object.
func (s *Storage) ReadSample(ctx context.Context, file *domain.FileDescriptor, byteCount int64) (string, error) {
	opts := minio.GetObjectOptions{}
	if byteCount > 0 {
		if err := opts.SetRange(0, byteCount-1); err != nil {
			return "", fmt.Errorf("failed to set range: %w", err)
		}
	}

	object, err := s.client.GetObject(ctx, s.bucketOf(file), file.Key, opts)
	if err != nil {
		return "", fmt.Errorf("failed to get object %q: %w", file.Key, err)
	}
	defer object.Close()

	sample, err := io.ReadAll(io.LimitReader(object, byteCount))
	if err != nil {
		return "", fmt.Errorf("failed to read sample of %q: %w", file.Key, err)
	}

	return string(sample), nil
}

func (s *Storage) Download(ctx context.Context, file *domain.FileDescriptor, destination string) error {
	if err := s.client.FGetObject(ctx, s.bucketOf(file), file.Key, destination, minio.GetObjectOptions{}); err != nil {
		return fmt.Errorf("failed to download %q: %w", file.Key, err)
	}

	return nil
}

// HealthCheck reports whether the configured bucket is reachable.
func (s *Storage) HealthCheck(ctx context.Context) bool {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		s.log.WarnContext(ctx, "storage health check failed", slog.String("err", err.Error()))
		return false
	}

	return exists
}

func (s *Storage) bucketOf(file *domain.FileDescriptor) string {
	if file.Bucket != "" {
		return file.Bucket
	}
	return s.bucket
}

func descriptorOf(bucket string, object minio.ObjectInfo) (*domain.FileDescriptor, bool) {
	if strings.HasSuffix(object.Key, "/") {
		return nil, false
	}

	file := &domain.FileDescriptor{
		Key:          object.Key,
		Size:         object.Size,
		LastModified: object.LastModified,
		Bucket:       bucket,
	}

	if !file.HasExtension(domain.CSVExtension) {
		return nil, false
	}

	return file, true
}
