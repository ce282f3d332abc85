package storage

import (
	"Recette/domain"
	"Recette/internal/utils"
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// AllowImage mirrors the page's file picker, which accepts any image type.
var AllowImage = []string{"image/*"}

type (
	AwsS3 interface {
		UploadFile(ctx context.Context, objectKey string, body []byte, contentType string, allowed ...string) (string, error)
		GetPublicLinkKey(objectKey string) string
	}

	s3API interface {
		PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	}

	awsS3 struct {
		client    s3API
		bucket    string
		region    string
		endpoint  string
		publicURL string
	}
)

var (
	loadDefaultAWSConfig  = config.LoadDefaultConfig
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3API {
		return s3.NewFromConfig(cfg, optFns...)
	}
)

// NewAwsS3 builds the bucket client from AWS_* configuration keys. When
// AWS_S3_ENDPOINT is set the client talks path-style to that endpoint, which
// is what S3 compatible providers expect.
func NewAwsS3(ctx context.Context) (AwsS3, error) {
	region := utils.GetConfig("AWS_S3_REGION")
	endpoint := utils.GetConfig("AWS_S3_ENDPOINT")

	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if key := utils.GetConfig("AWS_ACCESS_KEY"); key != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, utils.GetConfig("AWS_SECRET_KEY"), ""),
		))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return newAwsS3(client, utils.GetConfig("AWS_S3_BUCKET"), region, endpoint, utils.GetConfig("AWS_S3_PUBLIC_URL")), nil
}

func newAwsS3(client s3API, bucket, region, endpoint, publicURL string) *awsS3 {
	return &awsS3{
		client:    client,
		bucket:    bucket,
		region:    region,
		endpoint:  strings.TrimRight(endpoint, "/"),
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func (a *awsS3) UploadFile(ctx context.Context, objectKey string, body []byte, contentType string, allowed ...string) (string, error) {
	if !isAllowed(contentType, allowed) {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidImageFormat, contentType)
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := a.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("put object %s/%s: %w", a.bucket, objectKey, err)
	}
	return objectKey, nil
}

// GetPublicLinkKey returns the public URL of an object: <base>/<bucket>/<key>
// where base is AWS_S3_PUBLIC_URL, or AWS_S3_ENDPOINT when no public URL is
// set. Without either it is the virtual-hosted AWS URL.
func (a *awsS3) GetPublicLinkKey(objectKey string) string {
	key := escapeKey(objectKey)
	base := a.publicURL
	if base == "" {
		base = a.endpoint
	}
	if base != "" {
		return fmt.Sprintf("%s/%s/%s", base, url.PathEscape(a.bucket), key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, key)
}

func escapeKey(objectKey string) string {
	parts := strings.Split(objectKey, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

func isAllowed(contentType string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	contentType = strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	for _, a := range allowed {
		if prefix, ok := strings.CutSuffix(a, "/*"); ok {
			if strings.HasPrefix(contentType, prefix+"/") {
				return true
			}
			continue
		}
		if contentType == a {
			return true
		}
	}
	return false
}
