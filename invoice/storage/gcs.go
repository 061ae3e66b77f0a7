package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"

	"github.com/goldleaf/storefront/invoices/common"
	"github.com/goldleaf/storefront/invoices/invoice/domain"
)

const (
	contentTypePDF = "application/pdf"
	cacheControl   = "no-cache, max-age=0"
	publicHost     = "https://storage.googleapis.com"
)

type objectWriterFunc func(ctx context.Context, bucket, object string) io.WriteCloser

// GCSUploader stores invoices in a Cloud Storage bucket as <folder>/<name>.pdf.
type GCSUploader struct {
	bucket    string
	folder    string
	newWriter objectWriterFunc
}

func NewGCSUploader(client *storage.Client, bucket, folder string) *GCSUploader {
	folder = common.RemoveLeadingAndTrailingSlashes(folder)
	if folder == "" {
		folder = DefaultFolder
	}

	return &GCSUploader{
		bucket: bucket,
		folder: folder,
		newWriter: func(ctx context.Context, bucket, object string) io.WriteCloser {
			if client == nil {
				return failingWriter{}
			}

			w := client.Bucket(bucket).Object(object).NewWriter(ctx)
			w.ContentType = contentTypePDF
			w.CacheControl = cacheControl

			return w
		},
	}
}

func (u *GCSUploader) Validate() error {
	if strings.TrimSpace(u.bucket) == "" {
		return &domain.MissingCredentialsError{Provider: ProviderGCS, Missing: []string{"bucket"}}
	}

	return nil
}

func (u *GCSUploader) Target() string {
	return fmt.Sprintf("gs://%s/%s", u.bucket, u.folder)
}

func (u *GCSUploader) objectName(name string) string {
	return fmt.Sprintf("%s/%s.pdf", u.folder, name)
}

func (u *GCSUploader) Upload(ctx context.Context, name string, pdf []byte) (string, error) {
	if err := u.Validate(); err != nil {
		return "", err
	}

	object := u.objectName(name)
	w := u.newWriter(ctx, u.bucket, object)

	if _, err := w.Write(pdf); err != nil {
		w.Close()
		return "", fmt.Errorf("%w: write gs://%s/%s: %w", domain.ErrUpload, u.bucket, object, err)
	}

	if err := w.Close(); err != nil {
		return "", fmt.Errorf("%w: close gs://%s/%s: %w", domain.ErrUpload, u.bucket, object, err)
	}

	return fmt.Sprintf("%s/%s/%s", publicHost, u.bucket, object), nil
}

type failingWriter struct{}

var errNoStorageClient = errors.New("cloud storage client is not configured")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errNoStorageClient
}

func (failingWriter) Close() error {
	return errNoStorageClient
}
