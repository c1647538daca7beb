// Package publish encodes rendered frames to PNG and uploads them to
// S3-compatible object storage.
package publish

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/nfnt/resize"
)

// UploadTimeout bounds a single PutObject call
const UploadTimeout = 30 * time.Second

// ThumbnailWidth is the width of generated thumbnails in pixels
const ThumbnailWidth = 256

// Config holds the object storage settings
type Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
}

// ConfigFromEnv reads the publish configuration from the environment
func ConfigFromEnv() Config {
	return Config{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Bucket:    os.Getenv("S3_BUCKET"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Publisher uploads encoded images to a bucket
type Publisher struct {
	client s3iface.S3API
	bucket string
}

// New creates a publisher from the given configuration
func New(cfg Config) (*Publisher, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("publish: S3_BUCKET is not set")
	}

	sess, err := session.NewSession(&aws.Config{
		Credentials:      credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, ""),
		Endpoint:         aws.String(cfg.Endpoint),
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("publish: failed to create session: %w", err)
	}

	return &Publisher{client: s3.New(sess), bucket: cfg.Bucket}, nil
}

// NewWithClient creates a publisher with an existing client
func NewWithClient(client s3iface.S3API, bucket string) *Publisher {
	return &Publisher{client: client, bucket: bucket}
}

// UploadPNG encodes the image as PNG and uploads it under the given key
func (p *Publisher) UploadPNG(ctx context.Context, key string, img image.Image) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	_, err = p.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String("image/png"),
	})
	if err != nil {
		return fmt.Errorf("publish: failed to upload %s: %w", key, err)
	}
	return nil
}

// EncodePNG encodes an image to PNG bytes
func EncodePNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("publish: failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Thumbnail scales the image down to ThumbnailWidth, preserving the
// aspect ratio
func Thumbnail(img image.Image) image.Image {
	return resize.Resize(ThumbnailWidth, 0, img, resize.Lanczos3)
}
