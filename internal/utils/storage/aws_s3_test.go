package storage

import (
	"Recette/domain"
	"Recette/internal/utils"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeS3) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if params.Body != nil {
		f.body, _ = io.ReadAll(params.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestUploadFile_PutsObjectInBucket(t *testing.T) {
	client := &fakeS3{}
	s := newAwsS3(client, "recipe-images", "us-east-1", "", "")

	key, err := s.UploadFile(context.Background(), "abc.png", []byte("png-bytes"), "image/png", AllowImage...)
	require.NoError(t, err)

	assert.Equal(t, "abc.png", key)
	assert.Equal(t, "recipe-images", aws.ToString(client.input.Bucket))
	assert.Equal(t, "abc.png", aws.ToString(client.input.Key))
	assert.Equal(t, "image/png", aws.ToString(client.input.ContentType))
	assert.Equal(t, int64(9), aws.ToInt64(client.input.ContentLength))
	assert.Equal(t, []byte("png-bytes"), client.body)
}

func TestUploadFile_RejectsNonImage(t *testing.T) {
	client := &fakeS3{}
	s := newAwsS3(client, "recipe-images", "us-east-1", "", "")

	_, err := s.UploadFile(context.Background(), "notes.txt", []byte("hi"), "text/plain", AllowImage...)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidImageFormat))
	assert.Nil(t, client.input, "nothing should be uploaded")
}

func TestUploadFile_PropagatesBackendError(t *testing.T) {
	client := &fakeS3{err: errors.New("access denied")}
	s := newAwsS3(client, "recipe-images", "us-east-1", "", "")

	_, err := s.UploadFile(context.Background(), "abc.jpg", []byte("x"), "image/jpeg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
	assert.Contains(t, err.Error(), "recipe-images/abc.jpg")
}

func TestGetPublicLinkKey(t *testing.T) {
	tests := []struct {
		name      string
		endpoint  string
		publicURL string
		key       string
		want      string
	}{
		{
			name: "aws virtual hosted",
			key:  "abc.png",
			want: "https://recipe-images.s3.eu-west-1.amazonaws.com/abc.png",
		},
		{
			name:      "public base url",
			publicURL: "https://project.supabase.co/storage/v1/object/public/",
			key:       "abc.png",
			want:      "https://project.supabase.co/storage/v1/object/public/recipe-images/abc.png",
		},
		{
			name:      "escapes key segments",
			publicURL: "http://localhost:9000",
			key:       "dir/a b.png",
			want:      "http://localhost:9000/recipe-images/dir/a%20b.png",
		},
		{
			name:     "custom endpoint without public url",
			endpoint: "http://127.0.0.1:9000/",
			key:      "abc.png",
			want:     "http://127.0.0.1:9000/recipe-images/abc.png",
		},
		{
			name:      "public url wins over endpoint",
			endpoint:  "https://s3.internal:9000",
			publicURL: "https://cdn.example.com",
			key:       "abc.png",
			want:      "https://cdn.example.com/recipe-images/abc.png",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newAwsS3(&fakeS3{}, "recipe-images", "eu-west-1", tt.endpoint, tt.publicURL)
			assert.Equal(t, tt.want, s.GetPublicLinkKey(tt.key))
		})
	}
}

func TestIsAllowed(t *testing.T) {
	assert.True(t, isAllowed("image/png", AllowImage))
	assert.True(t, isAllowed("IMAGE/JPEG; charset=binary", AllowImage))
	assert.False(t, isAllowed("application/pdf", AllowImage))
	assert.False(t, isAllowed("", AllowImage))
	assert.True(t, isAllowed("application/pdf", nil))
	assert.True(t, isAllowed("image/webp", []string{"image/webp"}))
}

func TestNewAwsS3_UsesCustomEndpoint(t *testing.T) {
	t.Setenv("AWS_S3_ENDPOINT", "http://127.0.0.1:9000")
	t.Setenv("AWS_S3_BUCKET", "recipe-images")
	t.Setenv("AWS_S3_REGION", "us-east-1")
	t.Setenv("AWS_ACCESS_KEY", "minioadmin")
	t.Setenv("AWS_SECRET_KEY", "minioadmin")
	utils.LoadConfig()

	origLoad, origNew := loadDefaultAWSConfig, newS3ClientFromConfig
	t.Cleanup(func() {
		loadDefaultAWSConfig, newS3ClientFromConfig = origLoad, origNew
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		assert.NotNil(t, lo.Credentials)
		return aws.Config{}, nil
	}

	var opts s3.Options
	client := &fakeS3{}
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3API {
		for _, fn := range optFns {
			fn(&opts)
		}
		return client
	}

	s, err := NewAwsS3(context.Background())
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.Equal(t, "http://127.0.0.1:9000", aws.ToString(opts.BaseEndpoint))
	assert.True(t, opts.UsePathStyle)
	assert.Equal(t, "http://127.0.0.1:9000/recipe-images/abc.png", s.GetPublicLinkKey("abc.png"))
}

func TestNewAwsS3_LoadConfigError(t *testing.T) {
	origLoad := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = origLoad })

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("no region")
	}

	_, err := NewAwsS3(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no region")
}
