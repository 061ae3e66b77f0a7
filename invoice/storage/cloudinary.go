package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/goldleaf/storefront/invoices/common"
	"github.com/goldleaf/storefront/invoices/invoice/domain"
)

type CloudinaryCredentials struct {
	CloudName string `json:"cloud_name"`
	APIKey    string `json:"api_key"`
	APISecret string `json:"api_secret"`
}

type mediaAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

// CloudinaryUploader stores invoices as raw assets.
type CloudinaryUploader struct {
	creds     CloudinaryCredentials
	folder    string
	newClient func(CloudinaryCredentials) (mediaAPI, error)
}

func NewCloudinaryUploader(creds CloudinaryCredentials, folder string) *CloudinaryUploader {
	folder = common.RemoveLeadingAndTrailingSlashes(folder)
	if folder == "" {
		folder = DefaultFolder
	}

	return &CloudinaryUploader{
		creds:     creds,
		folder:    folder,
		newClient: newCloudinaryAPI,
	}
}

func newCloudinaryAPI(c CloudinaryCredentials) (mediaAPI, error) {
	cld, err := cloudinary.NewFromParams(c.CloudName, c.APIKey, c.APISecret)
	if err != nil {
		return nil, err
	}

	return &cld.Upload, nil
}

func (u *CloudinaryUploader) Validate() error {
	var missing []string

	if strings.TrimSpace(u.creds.CloudName) == "" {
		missing = append(missing, "cloud name")
	}

	if strings.TrimSpace(u.creds.APIKey) == "" {
		missing = append(missing, "api key")
	}

	if strings.TrimSpace(u.creds.APISecret) == "" {
		missing = append(missing, "api secret")
	}

	if len(missing) > 0 {
		return &domain.MissingCredentialsError{Provider: ProviderCloudinary, Missing: missing}
	}

	return nil
}

func (u *CloudinaryUploader) Target() string {
	return fmt.Sprintf("%s://%s/%s", ProviderCloudinary, u.creds.CloudName, u.folder)
}

func (u *CloudinaryUploader) Upload(ctx context.Context, name string, pdf []byte) (string, error) {
	if err := u.Validate(); err != nil {
		return "", err
	}

	client, err := u.newClient(u.creds)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrUpload, err)
	}

	resp, err := client.Upload(ctx, bytes.NewReader(pdf), uploader.UploadParams{
		PublicID:     name,
		Folder:       u.folder,
		ResourceType: "raw",
		Overwrite:    api.Bool(true),
		Invalidate:   api.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrUpload, err)
	}

	if resp.Error.Message != "" {
		return "", fmt.Errorf("%w: %s", domain.ErrUpload, resp.Error.Message)
	}

	if resp.SecureURL == "" {
		return "", domain.ErrUploadMissingURL
	}

	return resp.SecureURL, nil
}
