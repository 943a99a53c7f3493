package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"mime"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/ygoproxy/ygoproxy/printer/config"
)

// SpacesService stores custom card artwork in an S3 compatible bucket.
type SpacesService struct {
	client        *s3.Client
	bucket        string
	region        string
	publicBaseURL string
	CardRoot      string
	now           func() time.Time
}

// NewSpacesService connects to DigitalOcean Spaces in region, or to
// endpoint when one is given.
func NewSpacesService(spacesKey, spacesSecret, region, bucket, endpoint, publicBaseURL, cardRoot string) (*SpacesService, error) {
	customEndpoint := endpoint != ""
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		if customEndpoint {
			return aws.Endpoint{URL: endpoint, HostnameImmutable: true}, nil
		}
		return aws.Endpoint{
			URL: fmt.Sprintf("https://%s.digitaloceanspaces.com", region),
		}, nil
	})

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithEndpointResolverWithOptions(resolver),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(spacesKey, spacesSecret, "")),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load spaces config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = customEndpoint
	})

	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("https://%s.%s.digitaloceanspaces.com", bucket, region)
	}

	return &SpacesService{
		client:        client,
		bucket:        bucket,
		region:        region,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		CardRoot:      strings.Trim(cardRoot, "/"),
		now:           time.Now,
	}, nil
}

// UploadCustomCardImage stores data under {root}/{owner}/{unix-millis}.{ext}
// with a public-read ACL and returns the public URL.
func (s *SpacesService) UploadCustomCardImage(ctx context.Context, ownerID, ext string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image")
	}
	if len(data) > config.MaxImageSize {
		return "", fmt.Errorf("image exceeds %d bytes", config.MaxImageSize)
	}

	ext = strings.TrimPrefix(strings.ToLower(ext), ".")
	key := fmt.Sprintf("%s/%d.%s", ownerID, s.now().UnixMilli(), ext)
	if s.CardRoot != "" {
		key = s.CardRoot + "/" + key
	}

	contentType := mime.TypeByExtension("." + ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	start := time.Now()
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ACL:          types.ObjectCannedACLPublicRead,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String(config.ImageCacheControl),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	slog.Debug("Uploaded custom card image",
		slog.String("type", "api"),
		slog.String("key", key),
		slog.Int("bytes", len(data)),
		slog.Duration("took", time.Since(start)))

	return s.publicBaseURL + "/" + key, nil
}

func (s *SpacesService) GetBucket() string {
	return s.bucket
}

func (s *SpacesService) GetRegion() string {
	return s.region
}
