package storage

import (
	"bytes"
	"context"
	"fmt"

	"calendar-sync-api/core/config"
	"calendar-sync-api/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// DocumentStore writes JSON documents to an S3-compatible object store.
// Overwrite semantics are the store's: a put with the same key replaces
// the previous document.
type DocumentStore interface {
	PutJSON(ctx context.Context, key string, body []byte) error
}

type s3Store struct {
	client *s3.Client
	bucket string
}

func InitStorage(cfg config.StorageConfig) (DocumentStore, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	opts := s3.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}

	logger.Info("Storage initialized", "bucket", cfg.Bucket, "region", cfg.Region)
	return &s3Store{client: s3.New(opts), bucket: cfg.Bucket}, nil
}

func (s *s3Store) PutJSON(ctx context.Context, key string, body []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		logger.Error("Storage:PutJSON", "key", key, "error", err)
		return err
	}
	return nil
}
