package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/KUD2IP/StreamFlow/pkg/config"
	"github.com/KUD2IP/StreamFlow/pkg/file"
)

type S3Storage struct {
	client *s3.Client
}

// NewS3Storage builds an S3 client. A non-empty endpoint switches the
// client to path-style addressing for MinIO-compatible deployments.
func NewS3Storage(cfg config.StorageConfig) (*S3Storage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{client: client}, nil
}

func (s *S3Storage) UploadFile(localPath, bucket string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open file %s: %w", localPath, err)
	}
	defer f.Close()

	key := objectKey(localPath)
	_, err = s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(file.ContentType(localPath)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", key, bucket, err)
	}

	return bucket + "/" + key, nil
}

func (s *S3Storage) DeleteFile(bucket, key string) error {
	_, err := s.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	return err
}

// objectKey derives a deterministic storage key from a workspace file path:
// the workspace directory is the video id, so renditions land under
// "<videoID>/<quality>.mp4".
func objectKey(localPath string) string {
	return filepath.Base(filepath.Dir(localPath)) + "/" + filepath.Base(localPath)
}
