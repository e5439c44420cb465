package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// MediaStore hands out presigned URLs for images kept in an R2 bucket.
// Records only ever store the public URL.
type MediaStore struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

type R2Options struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	PublicBaseURL   string
}

// NewMediaStore initializes the R2 client using static credentials and the
// account endpoint.
func NewMediaStore(opts R2Options) (*MediaStore, error) {
	if opts.AccountID == "" || opts.BucketName == "" || opts.AccessKeyID == "" {
		return nil, errors.New("r2 storage is not configured")
	}
	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", opts.AccountID)

	cfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		Region:      opts.Region,
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	return &MediaStore{
		client:        client,
		bucket:        opts.BucketName,
		publicBaseURL: strings.TrimRight(opts.PublicBaseURL, "/"),
	}, nil
}

// PresignPut creates a presigned URL for uploading an object to R2.
func (m *MediaStore) PresignPut(ctx context.Context, key, contentType string, expires time.Duration) (string, error) {
	presigner := s3.NewPresignClient(m.client)
	req, err := presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("presign put %s: %w", key, err)
	}
	return req.URL, nil
}

// PublicURL is the address under which an uploaded object is served.
func (m *MediaStore) PublicURL(key string) string {
	return m.publicBaseURL + "/" + key
}

// Exists checks if a given object key exists in the bucket.
func (m *MediaStore) Exists(ctx context.Context, key string) (bool, error) {
	_, err := m.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(m.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *s3types.NotFound
		if errors.As(err, &nsk) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// KeyFromPublicURL returns the object key of a URL produced by PublicURL.
func (m *MediaStore) KeyFromPublicURL(url string) (string, bool) {
	prefix := m.publicBaseURL + "/"
	if m.publicBaseURL == "" || !strings.HasPrefix(url, prefix) {
		return "", false
	}
	return strings.TrimPrefix(url, prefix), true
}
