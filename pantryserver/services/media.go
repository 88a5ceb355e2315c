package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	lru "github.com/hashicorp/golang-lru"

	pantrycfg "github.com/pantrybook/pantry-server/pantryserver/config"
)

// MediaService stores recipe images in an S3-compatible bucket. Forking a
// recipe copies the image key by reference; a new object is only written when
// a household uploads its own image for the forked copy.
type MediaService struct {
	client    *s3.Client
	bucket    string
	region    string
	MediaRoot string
	exists    *lru.Cache
}

func NewMediaService(spacesKey, spacesSecret, region, bucket, mediaRoot string) *MediaService {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
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
		panic(fmt.Sprintf("Unable to load Spaces config: %v", err))
	}

	client := s3.NewFromConfig(cfg)
	cache, _ := lru.New(pantrycfg.MediaCacheSize)

	return &MediaService{
		client:    client,
		bucket:    bucket,
		region:    region,
		MediaRoot: strings.TrimPrefix(mediaRoot, "/"),
		exists:    cache,
	}
}

// ImageKey builds the canonical object key for a recipe image.
func (s *MediaService) ImageKey(recipeID int64, filename string) string {
	return fmt.Sprintf("%s%d/%s", pantrycfg.RecipeImageRoot, recipeID, filename)
}

// URL returns the public URL for a stored object key.
func (s *MediaService) URL(key string) string {
	return fmt.Sprintf("https://%s.%s.digitaloceanspaces.com/%s", s.bucket, s.region, key)
}

// Exists checks whether the object is present, with a positive-result cache:
// keys are immutable once written so a hit never goes stale.
func (s *MediaService) Exists(ctx context.Context, key string) (bool, error) {
	if _, ok := s.exists.Get(key); ok {
		return true, nil
	}
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		if strings.Contains(err.Error(), "NotFound") || strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, fmt.Errorf("head object %s: %w", key, err)
	}
	s.exists.Add(key, struct{}{})
	return true, nil
}

// Upload writes a recipe image under the given key.
func (s *MediaService) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        body,
		ContentType: &contentType,
		ACL:         "public-read",
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	s.exists.Add(key, struct{}{})
	return nil
}

// Delete removes an object. Only called on explicit household action; the
// fork path never deletes blobs.
func (s *MediaService) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	s.exists.Remove(key)
	return nil
}
