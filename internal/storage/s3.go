package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/agusnoopy3000/huertohogar-api/internal/config"
	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const keyPrefix = "documents"

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type s3Storage struct {
	logger *slog.Logger
	client s3API
	bucket string
	region string
	now    func() time.Time
}

// NewS3 connects to the configured bucket. Without credentials the storage is
// simulated: nothing is uploaded, keys and public URLs are still produced.
func NewS3(logger *slog.Logger, cfg config.Storage) *s3Storage {
	s := &s3Storage{
		logger: logger.With(slog.String("component", "storage")),
		bucket: cfg.Bucket,
		region: cfg.Region,
		now:    time.Now,
	}

	if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		s.logger.Warn("s3 credentials are not set, documents will not be uploaded")
		return s
	}

	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	}
	s.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return s
}

func (s *s3Storage) Simulated() bool {
	return s.client == nil
}

// Key builds documents/YYYY/MM/<uuid>-<name> with unsafe characters replaced.
func (s *s3Storage) Key(name string) string {
	now := s.now().UTC()
	return path.Join(keyPrefix, now.Format("2006"), now.Format("01"), uuid.NewString()+"-"+Sanitize(name))
}

func (s *s3Storage) URL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func (s *s3Storage) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	if s.Simulated() {
		s.logger.Info("simulated upload", slog.String("key", key), slog.Int64("size", size))
		return nil
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return entities.Dependency("failed to upload object", err)
	}
	return nil
}

func (s *s3Storage) Delete(ctx context.Context, key string) error {
	if s.Simulated() {
		s.logger.Info("simulated delete", slog.String("key", key))
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return entities.Dependency("failed to delete object", err)
	}
	return nil
}

// Sanitize keeps letters, digits, dots, dashes and underscores of a file name.
func Sanitize(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return unsafeChars.ReplaceAllString(name, "_")
}
