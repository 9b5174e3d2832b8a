// Package storage uploads generated sticker images to S3-compatible storage.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gofrs/uuid/v5"
)

// Config addresses a bucket. Endpoint is set for non-AWS providers.
type Config struct {
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
	UsePathStyle  bool
	Prefix        string
}

// Validate reports the first missing field.
func (c Config) Validate() error {
	switch {
	case c.Bucket == "":
		return fmt.Errorf("s3 bucket is required")
	case c.Region == "":
		return fmt.Errorf("s3 region is required")
	case c.AccessKey == "" || c.SecretKey == "":
		return fmt.Errorf("s3 credentials are required")
	case c.PublicBaseURL == "":
		return fmt.Errorf("s3 public base url is required")
	}
	return nil
}

// PutObjectAPI is the part of *s3.Client the uploader uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Uploader stores images under <prefix>/YYYY/MM/DD/<uuid><ext> and returns their public URL.
type Uploader struct {
	cfg    Config
	client PutObjectAPI
	now    func() time.Time
}

// NewUploader builds an S3 client with static credentials.
func NewUploader(cfg Config) (*Uploader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := s3.Options{
		Region:       cfg.Region,
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: cfg.UsePathStyle,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return NewUploaderWithClient(cfg, s3.New(opts)), nil
}

// NewUploaderWithClient uses a caller-supplied client.
func NewUploaderWithClient(cfg Config, client PutObjectAPI) *Uploader {
	if cfg.Prefix == "" {
		cfg.Prefix = "stickers"
	}
	return &Uploader{cfg: cfg, client: client, now: time.Now}
}

// Upload stores data and returns its public URL.
func (u *Uploader) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("no data to upload")
	}
	if contentType == "" {
		contentType = "image/png"
	}
	key, err := u.key(contentType)
	if err != nil {
		return "", err
	}
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		return "", fmt.Errorf("upload to s3: %w", err)
	}
	return strings.TrimRight(u.cfg.PublicBaseURL, "/") + "/" + key, nil
}

func (u *Uploader) key(contentType string) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	day := u.now().UTC().Format("2006/01/02")
	return path.Join(strings.Trim(u.cfg.Prefix, "/"), day, id.String()+extension(contentType)), nil
}

func extension(contentType string) string {
	switch strings.ToLower(contentType) {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".bin"
	}
}
