package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/counsel-scheduler/internal/config"
)

// Uploader stores a public object and returns the url it is served from.
type Uploader interface {
	Put(
		ctx context.Context,
		key string,
		contentType string,
		body []byte,
	) (string, error)
}

type S3Uploader struct {
	client     *s3.Client
	bucket     string
	publicBase string
}

// NewS3Uploader builds a client from static credentials. A custom
// endpoint (minio, r2) switches to path-style addressing.
func NewS3Uploader(cfg *config.Config) *S3Uploader {
	opts := s3.Options{
		Region: cfg.S3Region,
	}

	if cfg.S3AccessKey != "" {
		opts.Credentials = aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		)
	}

	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	return &S3Uploader{
		client:     s3.New(opts),
		bucket:     cfg.S3Bucket,
		publicBase: publicBase(cfg),
	}
}

func publicBase(cfg *config.Config) string {
	if cfg.S3PublicBaseURL != "" {
		return strings.TrimRight(cfg.S3PublicBaseURL, "/")
	}
	if cfg.S3Endpoint != "" {
		return strings.TrimRight(cfg.S3Endpoint, "/") + "/" + cfg.S3Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
}

func (u *S3Uploader) Put(
	ctx context.Context,
	key string,
	contentType string,
	body []byte,
) (string, error) {

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(u.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("put %s: %w", key, err)
	}

	return u.publicBase + "/" + key, nil
}

var _ Uploader = (*S3Uploader)(nil)
