// Package storage uploads user binaries to object storage.
package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"zeneasy/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gocloud.dev/blob"

	// Bucket drivers selectable through the bucket URL scheme.
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobStorage implements service.ObjectStorage on a gocloud.dev bucket.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// OpenBucket opens the bucket named by a gocloud.dev URL such as
// file:///var/uploads, gs://bucket or s3://bucket?region=eu-west-1.
func OpenBucket(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %q", bucketURL)
	}

	return bucket, nil
}

// NewBlobStorage is the constructor for blobStorage.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) service.ObjectStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Upload writes the object under folder/<uuid><ext> and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, object *service.UploadObject) (string, error) {
	key := objectKey(object)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: object.ContentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(writer, object.Body); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write blob")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to commit blob")
	}

	if s.publicBaseURL == "" {
		return key, nil
	}

	return s.publicBaseURL + "/" + key, nil
}

func objectKey(object *service.UploadObject) string {
	name := uuid.NewString() + strings.ToLower(path.Ext(object.FileName))
	folder := strings.Trim(object.Folder, "/")
	if folder == "" {
		return name
	}

	return folder + "/" + name
}
