package services

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"glossary-backend/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// ExportStorage stores rendered glossary exports and hands out download links.
type ExportStorage interface {
	PutObject(ctx context.Context, objectName, contentType string, data []byte) error
	PresignedGetURL(ctx context.Context, objectName, downloadName string) (string, error)
}

type MinIOService struct {
	client *minio.Client
	bucket string
	region string
	expiry time.Duration
	logger *logrus.Logger
}

func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := cfg.Endpoint
	endpoint = strings.TrimPrefix(endpoint, "https://")
	endpoint = strings.TrimPrefix(endpoint, "http://")

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   cfg.BucketName,
		"useSSL":   cfg.UseSSL,
	}).Info("MinIO client initialized successfully")

	service := &MinIOService{
		client: minioClient,
		bucket: cfg.BucketName,
		region: cfg.Region,
		expiry: cfg.PresignExpiry,
		logger: logger,
	}

	if err := service.ensureBucket(context.Background()); err != nil {
		logger.WithError(err).Warn("Failed to configure export bucket, but continuing...")
	}

	return service, nil
}

// Exports stay private; downloads go through presigned URLs only.
func (s *MinIOService) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Bucket created successfully")
	}
	return nil
}

func (s *MinIOService) PutObject(ctx context.Context, objectName, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.logger.WithError(err).WithField("objectName", objectName).Error("Failed to upload export")
		return fmt.Errorf("failed to upload %s: %w", objectName, err)
	}

	s.logger.WithFields(logrus.Fields{
		"objectName": objectName,
		"size":       len(data),
	}).Info("Export uploaded to MinIO")
	return nil
}

func (s *MinIOService) PresignedGetURL(ctx context.Context, objectName, downloadName string) (string, error) {
	params := url.Values{}
	if downloadName != "" {
		params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", downloadName))
	}

	presignedURL, err := s.client.PresignedGetObject(ctx, s.bucket, objectName, s.expiry, params)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate presigned URL")
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return presignedURL.String(), nil
}
