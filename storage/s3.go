package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Prefixes double as the buckets the original product used.
const (
	PrefixLogos  = "restaurant-logos"
	PrefixPhotos = "menu-item-photos"
)

type Storage struct {
	uploader   *manager.Uploader
	bucket     string
	region     string
	publicBase string
}

func New(ctx context.Context, region, bucket, publicBase string) (*Storage, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &Storage{
		uploader:   manager.NewUploader(client),
		bucket:     bucket,
		region:     region,
		publicBase: publicBase,
	}, nil
}

// Upload stores the object publicly readable and returns its URL.
func (s *Storage) Upload(ctx context.Context, prefix string, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("%s/%s-%s", prefix, time.Now().Format("20060102150405"), filename)

	result, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ACL:         "public-read",
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	if s.publicBase != "" {
		return fmt.Sprintf("%s/%s", s.publicBase, key), nil
	}
	return result.Location, nil
}
