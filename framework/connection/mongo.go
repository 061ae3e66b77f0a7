package connection

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/goldleaf/storefront/invoices/logger"
)

var (
	ErrMongoInitialization = errors.New("mongodb initialization error")
)

const mongoConnectTimeout = 10 * time.Second

type MongoClient struct {
	mongo *mongo.Client
	db    *mongo.Database
}

func NewMongo(ctx context.Context, log *logger.Logging, uri, database string) (*MongoClient, error) {
	logger := log.Logger(ctx)

	if database == "" {
		logger.Errorf("%s: missing database name", ErrMongoInitialization)
		return nil, ErrMongoInitialization
	}

	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Errorf("%s: %s", ErrMongoInitialization, err)
		return nil, ErrMongoInitialization
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Errorf("%s: %s", ErrMongoInitialization, err)
		client.Disconnect(ctx)

		return nil, ErrMongoInitialization
	}

	return &MongoClient{
		mongo: client,
		db:    client.Database(database),
	}, nil
}
