package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinioOptions struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
}

// MinioStore keeps blobs in a MinIO bucket, for self-hosted deployments.
type MinioStore struct {
	client *minio.Client
	bucket string
}

func NewMinioStore(ctx context.Context, opts MinioOptions) (*MinioStore, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKeyID, opts.SecretAccessKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.BucketName)
	if err != nil {
		return nil, fmt.Errorf("storage: check bucket %s: %w", opts.BucketName, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("storage: create bucket %s: %w", opts.BucketName, err)
		}
	}

	return &MinioStore{client: client, bucket: opts.BucketName}, nil
}

func (m *MinioStore) Store(ctx context.Context, data []byte, suggestedName string) (string, error) {
	key := NewKey(suggestedName)
	_, err := m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("storage: put %s: %w", key, err)
	}
	return key, nil
}

func (m *MinioStore) Retrieve(ctx context.Context, key string) ([]byte, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("storage: get %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: read %s: %w", key, err)
	}
	return data, nil
}
