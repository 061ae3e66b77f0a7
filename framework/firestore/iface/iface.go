//go:generate mockery --output=../mocks --all

package iface

import (
	"context"

	"cloud.google.com/go/firestore"
)

// DocumentsHandler performs single document reads.
type DocumentsHandler interface {
	Get(ctx context.Context, ref *firestore.DocumentRef) (DocumentSnapshot, error)
	// First returns the first document matching query.
	First(ctx context.Context, query firestore.Query) (DocumentSnapshot, error)
}

type DocumentSnapshot interface {
	DataTo(p interface{}) error
	ID() string
}
