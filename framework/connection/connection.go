package connection

import (
	"context"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	"github.com/hashicorp/go-multierror"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/goldleaf/storefront/invoices/logger"
)

// Options selects the clients a Connection opens.
type Options struct {
	Firestore     bool
	CloudStorage  bool
	MongoURI      string
	MongoDatabase string
}

type Connection struct {
	*FirestoreClient
	*CloudStorageClient
	*MongoClient
}

// NewConnection initializes the clients necessary for api support. Clients not selected by opts stay nil.
func NewConnection(ctx context.Context, log *logger.Logging, opts Options) (*Connection, error) {
	conn := &Connection{
		FirestoreClient:    &FirestoreClient{},
		CloudStorageClient: &CloudStorageClient{},
		MongoClient:        &MongoClient{},
	}

	if opts.Firestore {
		fs, err := NewFirestore(ctx, log)
		if err != nil {
			return nil, err
		}

		conn.FirestoreClient = fs
	}

	if opts.CloudStorage {
		gcs, err := NewCloudStorage(ctx, log)
		if err != nil {
			conn.Close(ctx)
			return nil, err
		}

		conn.CloudStorageClient = gcs
	}

	if opts.MongoURI != "" {
		mc, err := NewMongo(ctx, log, opts.MongoURI, opts.MongoDatabase)
		if err != nil {
			conn.Close(ctx)
			return nil, err
		}

		conn.MongoClient = mc
	}

	return conn, nil
}

// Firestore returns the firestore client, nil unless Options.Firestore was set.
func (c *Connection) Firestore(_ context.Context) *firestore.Client {
	return c.fs
}

// CloudStorage returns the cloud storage client, nil unless Options.CloudStorage was set.
func (c *Connection) CloudStorage(_ context.Context) *storage.Client {
	return c.gcs
}

// MongoDatabase returns the configured mongo database, nil without a mongo uri.
func (c *Connection) MongoDatabase(_ context.Context) *mongo.Database {
	return c.db
}

// Close releases every open client.
func (c *Connection) Close(ctx context.Context) error {
	var result error

	if c.fs != nil {
		if err := c.fs.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if c.gcs != nil {
		if err := c.gcs.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if c.mongo != nil {
		if err := c.mongo.Disconnect(ctx); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result
}

type FirestoreFromContextFun = func(ctx context.Context) *firestore.Client
