package blobstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API методы клиента S3, которые использует S3Store
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Config struct {
	Bucket    string
	Region    string
	KeyPrefix string
	// PublicBaseURL адрес бакета или CDN; по умолчанию virtual-hosted URL бакета
	PublicBaseURL string
}

// S3Store хранит файлы в бакете S3
type S3Store struct {
	client  S3API
	cfg     S3Config
	baseURL string
}

// NewS3Client создает клиент из цепочки учетных данных по умолчанию
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return s3.NewFromConfig(awsCfg), nil
}

func NewS3Store(client S3API, cfg S3Config) (*S3Store, error) {
	if client == nil {
		return nil, fmt.Errorf("s3 blob store: client cannot be nil")
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 blob store: bucket is required")
	}
	baseURL := strings.TrimRight(cfg.PublicBaseURL, "/")
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
	cfg.KeyPrefix = strings.Trim(cfg.KeyPrefix, "/")
	return &S3Store{client: client, cfg: cfg, baseURL: baseURL}, nil
}

func (s *S3Store) key(name string) string {
	if s.cfg.KeyPrefix == "" {
		return name
	}
	return s.cfg.KeyPrefix + "/" + name
}

func (s *S3Store) Put(ctx context.Context, name, contentType string, content io.Reader, _ int64) error {
	// длину тела SDK определяет через io.Seeker (multipart.File)
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(s.key(name)),
		Body:   content,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("s3 blob store: failed to put %s: %w", name, err)
	}
	return nil
}

func (s *S3Store) Delete(ctx context.Context, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(s.key(name)),
	})
	if err != nil {
		return fmt.Errorf("s3 blob store: failed to delete %s: %w", name, err)
	}
	return nil
}

func (s *S3Store) URL(name string) string {
	return s.baseURL + "/" + s.key(name)
}
