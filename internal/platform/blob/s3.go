// Copyright (c) 2026 Featherworks. All rights reserved.

package blob

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config holds explicit construction parameters for the S3 driver.
type S3Config struct {
	Bucket string
	Region string
	// Endpoint enables S3-compatible providers (Cloudflare R2, MinIO).
	Endpoint string
	// PublicBaseURL is the CDN or public bucket base for serving objects.
	// When empty, a standard virtual-hosted AWS URL is derived.
	PublicBaseURL string
}

// S3Store implements [Store] against an S3-compatible backend.
type S3Store struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3 creates an S3 blob store from config, using the default AWS
// credentials chain.
func NewS3(ctx context.Context, cfg S3Config, logger *slog.Logger) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("blob: s3 bucket required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("blob: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := strings.TrimSuffix(cfg.PublicBaseURL, "/")
	if baseURL == "" {
		if cfg.Endpoint != "" {
			baseURL = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
		} else {
			baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
	}

	logger.Info("blob store ready",
		slog.String("driver", "s3"),
		slog.String("bucket", cfg.Bucket),
	)

	return &S3Store{client: client, bucket: cfg.Bucket, baseURL: baseURL}, nil
}

// Put uploads the object and returns its public URL.
func (store *S3Store) Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(store.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := store.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("blob: put %q: %w", key, err)
	}

	return store.baseURL + "/" + key, nil
}
