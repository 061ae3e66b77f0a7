package secretmanager

import (
	"context"
	"fmt"
	"sync"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"

	"github.com/goldleaf/storefront/invoices/common"
)

type SecretName string

// List of configured secrets in Secret Manager
const (
	SecretCloudinary SecretName = "cloudinary"
	SecretMongoDB    SecretName = "mongodb"
)

const (
	latestVersion = "latest"
)

var (
	state = make(map[string][]byte)
	mutex = &sync.Mutex{}

	accessRemote = accessSecretManager
)

// AccessSecretLatestVersion utility function to fetch the latest version of a secret payload
func AccessSecretLatestVersion(ctx context.Context, secret SecretName) ([]byte, error) {
	return AccessSecretVersion(ctx, string(secret), latestVersion)
}

// AccessSecretVersion fetch payload of a secret's version. Payloads are cached for the process lifetime.
func AccessSecretVersion(ctx context.Context, secret, version string) ([]byte, error) {
	name := secretResourceName(common.ProjectID, secret, version)

	mutex.Lock()
	v, prs := state[name]
	mutex.Unlock()

	if prs {
		return v, nil
	}

	data, err := accessRemote(ctx, name)
	if err != nil {
		return nil, err
	}

	mutex.Lock()
	state[name] = data
	mutex.Unlock()

	return data, nil
}

func accessSecretManager(ctx context.Context, name string) ([]byte, error) {
	sm, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, err
	}

	defer sm.Close()

	accessSecretVersionRes, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return nil, err
	}

	return accessSecretVersionRes.Payload.GetData(), nil
}

func secretResourceName(projectID, secret, version string) string {
	return fmt.Sprintf("projects/%s/secrets/%s/versions/%s", projectID, secret, version)
}
