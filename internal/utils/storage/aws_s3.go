package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
)

var AllowImage = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

var ErrFileTypeNotAllowed = errors.New("file type not allowed")

type (
	AwsS3 interface {
		UploadBytes(fileName, originalName string, data []byte, contentType string) (string, error)
		GetPublicLinkKey(objectKey string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

// NewAwsS3 builds the uploader from AWS_S3_BUCKET / AWS_S3_REGION /
// AWS_ACCESS_KEY / AWS_SECRET_KEY. Returns nil when no bucket is
// configured; callers treat that as the archive being disabled.
func NewAwsS3() AwsS3 {
	bucket := os.Getenv("AWS_S3_BUCKET")
	region := os.Getenv("AWS_S3_REGION")
	if bucket == "" || region == "" {
		return nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			os.Getenv("AWS_ACCESS_KEY"),
			os.Getenv("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Errorf("unable to load AWS config: %v", err)
		return nil
	}

	return &awsS3{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		region: region,
	}
}

func (a *awsS3) UploadBytes(fileName, originalName string, data []byte, contentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	allowed := false
	for _, allowedExt := range AllowImage {
		if ext == allowedExt {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", ErrFileTypeNotAllowed
	}

	objectKey := fmt.Sprintf("meal-photos/%s%s", fileName, ext)
	_, err := a.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return objectKey, nil
}

func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, objectKey)
}

