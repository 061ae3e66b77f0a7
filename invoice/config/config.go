package config

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/goldleaf/storefront/invoices/common"
	"github.com/goldleaf/storefront/invoices/invoice/storage"
	"github.com/goldleaf/storefront/invoices/secretmanager"
)

const (
	OrdersBackendFirestore = "firestore"
	OrdersBackendMongoDB   = "mongodb"

	defaultStoreName     = "Goldleaf Jewels"
	defaultUploadTimeout = 30 * time.Second
	defaultMaxRenders    = 4
	defaultMongoDatabase = "storefront"
)

// Config holds the invoice service settings read from the environment.
type Config struct {
	StorageProvider string
	Cloudinary      storage.CloudinaryCredentials
	UploadFolder    string
	GCSBucket       string

	BrowserPath string
	StoreName   string

	UploadTimeout        time.Duration
	MaxConcurrentRenders int

	OrdersBackend string
	MongoURI      string
	MongoDatabase string

	UseSecretManager bool
}

func FromEnv() *Config {
	timeout := defaultUploadTimeout
	if seconds := common.GetEnvInt("INVOICE_UPLOAD_TIMEOUT_SECONDS", 0); seconds > 0 {
		timeout = time.Duration(seconds) * time.Second
	}

	return &Config{
		StorageProvider: strings.ToLower(common.GetEnv("INVOICE_STORAGE_PROVIDER", storage.ProviderCloudinary)),
		Cloudinary: storage.CloudinaryCredentials{
			CloudName: common.GetEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    common.GetEnv("CLOUDINARY_API_KEY", ""),
			APISecret: common.GetEnv("CLOUDINARY_API_SECRET", ""),
		},
		UploadFolder:         common.GetEnv("INVOICE_UPLOAD_FOLDER", storage.DefaultFolder),
		GCSBucket:            common.GetEnv("INVOICE_GCS_BUCKET", common.GetInvoicesBucket()),
		BrowserPath:          common.GetEnv("CHROME_EXECUTABLE_PATH", ""),
		StoreName:            common.GetEnv("STORE_NAME", defaultStoreName),
		UploadTimeout:        timeout,
		MaxConcurrentRenders: common.GetEnvInt("INVOICE_MAX_CONCURRENT_RENDERS", defaultMaxRenders),
		OrdersBackend:        strings.ToLower(common.GetEnv("ORDERS_BACKEND", OrdersBackendFirestore)),
		MongoURI:             common.GetEnv("MONGODB_URI", ""),
		MongoDatabase:        common.GetEnv("MONGODB_DATABASE", defaultMongoDatabase),
		UseSecretManager:     common.GetEnvBool("USE_SECRET_MANAGER", false),
	}
}

// SecretAccessor fetches a secret payload.
type SecretAccessor func(ctx context.Context, secret secretmanager.SecretName) ([]byte, error)

type mongoSecret struct {
	URI string `json:"uri"`
}

// LoadSecrets fills credentials that are absent from the environment from Secret Manager.
// Values already set are kept. It is a no-op unless UseSecretManager is set.
func (c *Config) LoadSecrets(ctx context.Context, access SecretAccessor) error {
	if !c.UseSecretManager {
		return nil
	}

	if c.StorageProvider == storage.ProviderCloudinary && !c.hasCloudinaryCredentials() {
		data, err := access(ctx, secretmanager.SecretCloudinary)
		if err != nil {
			return fmt.Errorf("failed to access %s secret: %w", secretmanager.SecretCloudinary, err)
		}

		var creds storage.CloudinaryCredentials
		if err := json.Unmarshal(data, &creds); err != nil {
			return fmt.Errorf("failed to parse %s secret: %w", secretmanager.SecretCloudinary, err)
		}

		c.Cloudinary = mergeCredentials(c.Cloudinary, creds)
	}

	if c.OrdersBackend == OrdersBackendMongoDB && c.MongoURI == "" {
		data, err := access(ctx, secretmanager.SecretMongoDB)
		if err != nil {
			return fmt.Errorf("failed to access %s secret: %w", secretmanager.SecretMongoDB, err)
		}

		var s mongoSecret
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to parse %s secret: %w", secretmanager.SecretMongoDB, err)
		}

		c.MongoURI = s.URI
	}

	return nil
}

func (c *Config) hasCloudinaryCredentials() bool {
	return c.Cloudinary.CloudName != "" && c.Cloudinary.APIKey != "" && c.Cloudinary.APISecret != ""
}

func mergeCredentials(env, secret storage.CloudinaryCredentials) storage.CloudinaryCredentials {
	if env.CloudName == "" {
		env.CloudName = secret.CloudName
	}

	if env.APIKey == "" {
		env.APIKey = secret.APIKey
	}

	if env.APISecret == "" {
		env.APISecret = secret.APISecret
	}

	return env
}
