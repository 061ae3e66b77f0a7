package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goldleaf/storefront/invoices/invoice/storage"
	"github.com/goldleaf/storefront/invoices/secretmanager"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("INVOICE_STORAGE_PROVIDER", "GCS")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "goldleaf")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")
	t.Setenv("INVOICE_GCS_BUCKET", "goldleaf-invoices")
	t.Setenv("CHROME_EXECUTABLE_PATH", "/opt/chrome/chrome")
	t.Setenv("INVOICE_UPLOAD_TIMEOUT_SECONDS", "5")
	t.Setenv("INVOICE_MAX_CONCURRENT_RENDERS", "0")
	t.Setenv("ORDERS_BACKEND", "mongodb")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("USE_SECRET_MANAGER", "true")

	want := &Config{
		StorageProvider: storage.ProviderGCS,
		Cloudinary:      storage.CloudinaryCredentials{CloudName: "goldleaf", APIKey: "key", APISecret: "secret"},
		UploadFolder:    storage.DefaultFolder,
		GCSBucket:       "goldleaf-invoices",
		BrowserPath:     "/opt/chrome/chrome",
		StoreName:       defaultStoreName,
		UploadTimeout:   5 * time.Second,
		OrdersBackend:   OrdersBackendMongoDB,
		MongoURI:        "mongodb://localhost:27017",
		MongoDatabase:   defaultMongoDatabase,

		UseSecretManager: true,
	}

	if diff := cmp.Diff(want, FromEnv()); diff != "" {
		t.Errorf("FromEnv() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("INVOICE_UPLOAD_TIMEOUT_SECONDS", "")
	t.Setenv("INVOICE_MAX_CONCURRENT_RENDERS", "")
	t.Setenv("INVOICE_STORAGE_PROVIDER", "cloudinary")
	t.Setenv("ORDERS_BACKEND", "firestore")

	c := FromEnv()

	assert.Equal(t, 30*time.Second, c.UploadTimeout)
	assert.Equal(t, defaultMaxRenders, c.MaxConcurrentRenders)
	assert.Equal(t, storage.ProviderCloudinary, c.StorageProvider)
	assert.Equal(t, OrdersBackendFirestore, c.OrdersBackend)
}

func TestConfig_LoadSecrets(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		secrets map[secretmanager.SecretName]string
		want    Config
		wantErr bool
	}{
		{
			name:   "disabled",
			config: Config{StorageProvider: storage.ProviderCloudinary},
			want:   Config{StorageProvider: storage.ProviderCloudinary},
		},
		{
			name: "fills missing cloudinary values and keeps env values",
			config: Config{
				StorageProvider:  storage.ProviderCloudinary,
				Cloudinary:       storage.CloudinaryCredentials{CloudName: "from-env"},
				UseSecretManager: true,
			},
			secrets: map[secretmanager.SecretName]string{
				secretmanager.SecretCloudinary: `{"cloud_name":"from-secret","api_key":"k","api_secret":"s"}`,
			},
			want: Config{
				StorageProvider:  storage.ProviderCloudinary,
				Cloudinary:       storage.CloudinaryCredentials{CloudName: "from-env", APIKey: "k", APISecret: "s"},
				UseSecretManager: true,
			},
		},
		{
			name: "mongo uri",
			config: Config{
				StorageProvider:  storage.ProviderGCS,
				OrdersBackend:    OrdersBackendMongoDB,
				UseSecretManager: true,
			},
			secrets: map[secretmanager.SecretName]string{
				secretmanager.SecretMongoDB: `{"uri":"mongodb+srv://cluster0.example.net"}`,
			},
			want: Config{
				StorageProvider:  storage.ProviderGCS,
				OrdersBackend:    OrdersBackendMongoDB,
				MongoURI:         "mongodb+srv://cluster0.example.net",
				UseSecretManager: true,
			},
		},
		{
			name:    "missing secret",
			config:  Config{StorageProvider: storage.ProviderCloudinary, UseSecretManager: true},
			wantErr: true,
		},
		{
			name:    "malformed secret",
			config:  Config{StorageProvider: storage.ProviderCloudinary, UseSecretManager: true},
			secrets: map[secretmanager.SecretName]string{secretmanager.SecretCloudinary: "not json"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			access := func(_ context.Context, name secretmanager.SecretName) ([]byte, error) {
				v, ok := tt.secrets[name]
				if !ok {
					return nil, errors.New("secret not found")
				}

				return []byte(v), nil
			}

			c := tt.config
			err := c.LoadSecrets(context.Background(), access)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}
