// Package segmentstore indexes where a segment's artifacts live in S3. The
// catalog itself only stores an opaque file_paths map per segment (spec §3);
// this package resolves and garbage-collects against the bucket those paths
// point at. Writing the artifacts is the compactor's job, an external
// collaborator out of scope here (spec Non-goals) — this package only
// consults and cleans up after it, grounded on the teacher's
// pkg/sysdb/metastore/s3/impl.go.
package segmentstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/corevecdb/corevec/pkg/model"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

type S3LocatorConfig struct {
	BucketName              string
	Region                  string
	Endpoint                string
	AccessKeyID             string
	SecretAccessKey         string
	ForcePathStyle          bool
	CreateBucketIfNotExists bool
}

// S3Locator resolves and garbage-collects a segment's artifact prefixes
// against an S3-compatible bucket.
type S3Locator struct {
	s3     *s3.Client
	bucket string
}

// NewS3Locator constructs an S3Locator, creating the bucket first if
// cfg.CreateBucketIfNotExists is set (idempotent: BucketAlreadyOwnedByYou
// and BucketAlreadyExists are not treated as failures).
func NewS3Locator(ctx context.Context, cfg S3LocatorConfig) (*S3Locator, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsConfig, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		o.UsePathStyle = cfg.ForcePathStyle
		if cfg.Endpoint != "" {
			endpoint := cfg.Endpoint
			if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
				endpoint = "http://" + endpoint
			}
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	locator := &S3Locator{s3: client, bucket: cfg.BucketName}

	if cfg.CreateBucketIfNotExists {
		if _, err := client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(cfg.BucketName)}); err != nil {
			if !isBucketAlreadyPresent(err) {
				return nil, fmt.Errorf("creating bucket %s: %w", cfg.BucketName, err)
			}
			log.Info("segment artifact bucket already exists", zap.String("bucket", cfg.BucketName))
		}
	}

	return locator, nil
}

func isBucketAlreadyPresent(err error) bool {
	var owned *types.BucketAlreadyOwnedByYou
	var exists *types.BucketAlreadyExists
	return errors.As(err, &owned) || errors.As(err, &exists)
}

// ArtifactPrefix returns the S3 key prefix a segment's artifacts live under.
// The compactor is expected to write everything for a segment beneath this
// prefix; segmentstore never depends on the internal layout past this root.
func ArtifactPrefix(segment *model.Segment) string {
	return fmt.Sprintf("segments/%s/%s", segment.CollectionID.String(), segment.ID.String())
}

// HasObjectWithPrefix reports whether any object exists under prefix,
// used to confirm a segment's artifacts were actually written before
// considering the segment ready, and to confirm nothing remains after a
// delete.
func (l *S3Locator) HasObjectWithPrefix(ctx context.Context, prefix string) (bool, error) {
	result, err := l.s3.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(l.bucket),
		Prefix: aws.String(prefix),
	})
	if err != nil {
		return false, fmt.Errorf("listing objects under %s: %w", prefix, err)
	}
	return len(result.Contents) > 0, nil
}

// DeleteSegmentArtifacts removes every key recorded in a segment's
// FilePaths map. The Coordinator's DeleteSegment path does not call it;
// deleting a catalog row leaves the segment's artifacts in the bucket.
func (l *S3Locator) DeleteSegmentArtifacts(ctx context.Context, filePaths map[string][]string) error {
	for _, keys := range filePaths {
		for _, key := range keys {
			if _, err := l.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(l.bucket),
				Key:    aws.String(key),
			}); err != nil {
				return fmt.Errorf("deleting artifact %s: %w", key, err)
			}
		}
	}
	return nil
}
