// Package storage forwards staged uploads to S3 as webp objects.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ImageStore is what handlers depend on; tests substitute a fake.
type ImageStore interface {
	UploadImage(ctx context.Context, localPath string) (string, error)
	DeleteImage(ctx context.Context, publicURL string) error
}

type S3Store struct {
	client *s3.Client
	bucket string
	region string
}

func NewS3Store(region, bucket, accessKey, secretKey string) *S3Store {
	client := s3.New(s3.Options{
		Region: region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	})

	return &S3Store{
		client: client,
		bucket: bucket,
		region: region,
	}
}

// UploadImage converts the staged file to webp and puts it under a
// random key, returning the public object URL.
func (s *S3Store) UploadImage(ctx context.Context, localPath string) (string, error) {
	body, err := encodeWebP(localPath)
	if err != nil {
		return "", err
	}

	objectKey := fmt.Sprintf("images/%s.webp", uuid.NewString())

	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("image/webp"),
	}); err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, objectKey), nil
}

func (s *S3Store) DeleteImage(ctx context.Context, publicURL string) error {
	objectKey := s.keyFromURL(publicURL)
	if objectKey == "" {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (s *S3Store) keyFromURL(publicURL string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.bucket, s.region)
	if !strings.HasPrefix(publicURL, prefix) {
		return ""
	}
	return strings.TrimPrefix(publicURL, prefix)
}
