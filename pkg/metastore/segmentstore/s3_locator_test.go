package segmentstore

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/corevecdb/corevec/pkg/model"
	"github.com/corevecdb/corevec/pkg/types"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func putObjectInput(bucket, key string) *s3.PutObjectInput {
	return &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   strings.NewReader("artifact"),
	}
}

const (
	testMinioImage  = "minio/minio:latest"
	testMinioAccess = "minioadmin"
	testMinioSecret = "minioadmin"
	testMinioBucket = "corevec-segments"
)

// newMinioLocator starts a disposable MinIO container and returns an
// S3Locator pointed at it, grounded on the teacher's
// pkg/sysdb/metastore/s3/test_utils.go NewS3MetaStoreWithContainer helper.
func newMinioLocator(t *testing.T, ctx context.Context) *S3Locator {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        testMinioImage,
		ExposedPorts: []string{"9000/tcp"},
		Env: map[string]string{
			"MINIO_ACCESS_KEY": testMinioAccess,
			"MINIO_SECRET_KEY": testMinioSecret,
		},
		Cmd: []string{"server", "/data"},
		WaitingFor: wait.ForAll(
			wait.ForLog("MinIO Object Storage Server"),
			wait.ForListeningPort("9000/tcp"),
		).WithDeadline(2 * time.Minute),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	mappedPort, err := container.MappedPort(ctx, "9000")
	require.NoError(t, err)
	hostIP, err := container.Host(ctx)
	require.NoError(t, err)

	locator, err := NewS3Locator(ctx, S3LocatorConfig{
		BucketName:              testMinioBucket,
		Region:                  "us-east-1",
		Endpoint:                fmt.Sprintf("%s:%s", hostIP, mappedPort.Port()),
		AccessKeyID:             testMinioAccess,
		SecretAccessKey:         testMinioSecret,
		ForcePathStyle:          true,
		CreateBucketIfNotExists: true,
	})
	require.NoError(t, err)
	return locator
}

func TestS3Locator_HasObjectWithPrefix(t *testing.T) {
	ctx := context.Background()
	locator := newMinioLocator(t, ctx)

	segment := &model.Segment{ID: types.NewUniqueID(), CollectionID: types.NewUniqueID()}
	prefix := ArtifactPrefix(segment)

	exists, err := locator.HasObjectWithPrefix(ctx, prefix)
	require.NoError(t, err)
	require.False(t, exists)

	key := prefix + "/hnsw_index.bin"
	_, err = locator.s3.PutObject(ctx, putObjectInput(testMinioBucket, key))
	require.NoError(t, err)

	exists, err = locator.HasObjectWithPrefix(ctx, prefix)
	require.NoError(t, err)
	require.True(t, exists)
}

func TestS3Locator_DeleteSegmentArtifacts(t *testing.T) {
	ctx := context.Background()
	locator := newMinioLocator(t, ctx)

	segment := &model.Segment{ID: types.NewUniqueID(), CollectionID: types.NewUniqueID()}
	prefix := ArtifactPrefix(segment)
	key := prefix + "/hnsw_index.bin"

	_, err := locator.s3.PutObject(ctx, putObjectInput(testMinioBucket, key))
	require.NoError(t, err)

	exists, err := locator.HasObjectWithPrefix(ctx, prefix)
	require.NoError(t, err)
	require.True(t, exists)

	err = locator.DeleteSegmentArtifacts(ctx, map[string][]string{"hnsw": {key}})
	require.NoError(t, err)

	exists, err = locator.HasObjectWithPrefix(ctx, prefix)
	require.NoError(t, err)
	require.False(t, exists)
}
