package storage

import "context"

// DefaultFolder is the remote folder every invoice is written to.
const DefaultFolder = "invoices"

const (
	ProviderCloudinary = "cloudinary"
	ProviderGCS        = "gcs"
)

// Uploader publishes a rendered invoice and returns its durable URL.
type Uploader interface {
	// Validate reports missing credentials without calling the remote service.
	Validate() error
	// Upload writes pdf under name, replacing any previous object with that name.
	Upload(ctx context.Context, name string, pdf []byte) (string, error)
	// Target describes where uploads go, for logging.
	Target() string
}
