package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/goldleaf/storefront/invoices/framework/firestore/iface"
)

// DocumentHandler is the firestore backed iface.DocumentsHandler.
type DocumentHandler struct{}

type documentSnapshot struct {
	snap *firestore.DocumentSnapshot
}

func (s documentSnapshot) DataTo(p interface{}) error {
	return s.snap.DataTo(p)
}

func (s documentSnapshot) ID() string {
	return s.snap.Ref.ID
}

func (DocumentHandler) Get(ctx context.Context, ref *firestore.DocumentRef) (iface.DocumentSnapshot, error) {
	snap, err := ref.Get(ctx)
	if err != nil {
		return nil, err
	}

	return documentSnapshot{snap}, nil
}

// First returns a NotFound status error when nothing matches query.
func (DocumentHandler) First(ctx context.Context, query firestore.Query) (iface.DocumentSnapshot, error) {
	iter := query.Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, status.Error(codes.NotFound, "no document matches query")
	}

	if err != nil {
		return nil, err
	}

	return documentSnapshot{snap}, nil
}
