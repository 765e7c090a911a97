package s3

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"github.com/secretspot/site-content/pkg/sitecontent"
)

// Config options for the S3 media host
type Config struct {
	Region          string // AWS region
	Bucket          string // S3 bucket name
	AccessKeyID     string // AWS access key ID
	SecretAccessKey string // AWS secret access key
	Endpoint        string // Optional custom endpoint for S3-compatible services
	UsePathStyle    bool   // Use path-style addressing (default: false)
	PublicBaseURL   string // Optional CDN/public base URL for stored assets
}

// Host is an S3-compatible implementation of the sitecontent.MediaHost
// interface. Uploaded assets are publicly addressable through the bucket (or
// a CDN in front of it); the object key doubles as the asset identifier.
type Host struct {
	client *s3.Client
	config Config
}

// New creates a new S3-compatible media host
func New(config Config) (*Host, error) {
	if config.Bucket == "" {
		return nil, errors.New("bucket name is required")
	}

	if config.Region == "" {
		config.Region = "us-east-1"
	}

	var awsCfg aws.Config
	var err error

	if config.AccessKeyID != "" && config.SecretAccessKey != "" {
		awsCfg, err = awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(config.Region),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				config.AccessKeyID,
				config.SecretAccessKey,
				"",
			)),
		)
	} else {
		awsCfg, err = awsconfig.LoadDefaultConfig(context.Background(),
			awsconfig.WithRegion(config.Region),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var s3Options []func(*s3.Options)
	if config.Endpoint != "" {
		s3Options = append(s3Options, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(config.Endpoint)
			o.UsePathStyle = config.UsePathStyle
		})
	}

	return &Host{
		client: s3.NewFromConfig(awsCfg, s3Options...),
		config: config,
	}, nil
}

// Upload stores the asset under a fresh key inside the logical folder and
// returns its public URL. The object key is the asset identifier.
func (h *Host) Upload(ctx context.Context, input sitecontent.UploadInput) (*sitecontent.UploadResult, error) {
	key := objectKey(input.Folder, input.FileName)

	uploader := manager.NewUploader(h.client)
	_, err := uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(h.config.Bucket),
		Key:         aws.String(key),
		Body:        input.Body,
		ContentType: aws.String(contentType(input.FileName, input.Kind)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object: %w", err)
	}

	return &sitecontent.UploadResult{
		SecureURL: h.publicURL(key),
		AssetID:   key,
	}, nil
}

// Destroy deletes the asset by its object key. A missing object counts as
// success so destroy stays idempotent.
func (h *Host) Destroy(ctx context.Context, assetID string) error {
	_, err := h.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(h.config.Bucket),
		Key:    aws.String(assetID),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.ErrorCode() {
			case "NoSuchKey", "NotFound":
				return nil
			}
		}
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// objectKey builds a unique object key inside the folder, keeping the
// original file extension when there is one.
func objectKey(folder, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return path.Join(folder, uuid.New().String()+ext)
}

// contentType guesses the MIME type from the file extension, falling back on
// the resource kind.
func contentType(fileName string, kind sitecontent.ResourceKind) string {
	if ct := mime.TypeByExtension(strings.ToLower(path.Ext(fileName))); ct != "" {
		return ct
	}
	switch kind {
	case sitecontent.ResourceVideo:
		return "video/mp4"
	case sitecontent.ResourceImage:
		return "image/jpeg"
	}
	return "application/octet-stream"
}

// publicURL builds the publicly addressable URL for an object key.
func (h *Host) publicURL(key string) string {
	if h.config.PublicBaseURL != "" {
		return strings.TrimRight(h.config.PublicBaseURL, "/") + "/" + key
	}
	if h.config.Endpoint != "" {
		return strings.TrimRight(h.config.Endpoint, "/") + "/" + h.config.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", h.config.Bucket, h.config.Region, key)
}
