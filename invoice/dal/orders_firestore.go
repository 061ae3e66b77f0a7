package dal

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/goldleaf/storefront/invoices/framework/connection"
	fs "github.com/goldleaf/storefront/invoices/framework/firestore"
	"github.com/goldleaf/storefront/invoices/framework/firestore/iface"
	"github.com/goldleaf/storefront/invoices/invoice/domain"
)

// OrdersFirestore is used to interact with orders stored on Firestore.
type OrdersFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   iface.DocumentsHandler
}

// NewOrdersFirestore returns a new OrdersFirestore reading through the given client getter.
func NewOrdersFirestore(fun connection.FirestoreFromContextFun) *OrdersFirestore {
	return &OrdersFirestore{
		firestoreClientFun: fun,
		documentsHandler:   fs.DocumentHandler{},
	}
}

func (d *OrdersFirestore) collection(ctx context.Context) *firestore.CollectionRef {
	return d.firestoreClientFun(ctx).Collection(ordersCollection)
}

func (d *OrdersFirestore) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, domain.ErrMissingOrderID
	}

	snap, err := d.getByID(ctx, orderID)
	if status.Code(err) == codes.NotFound {
		snap, err = d.documentsHandler.First(ctx, d.collection(ctx).Where(orderNumberField, "==", orderID))
	}

	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrOrderNotFound
		}

		return nil, err
	}

	var order domain.Order

	if err := snap.DataTo(&order); err != nil {
		return nil, err
	}

	order.ID = snap.ID()

	return &order, nil
}

func (d *OrdersFirestore) getByID(ctx context.Context, orderID string) (iface.DocumentSnapshot, error) {
	// document ids cannot contain a slash, such values can only be order numbers
	if strings.Contains(orderID, "/") {
		return nil, status.Error(codes.NotFound, "invalid document id")
	}

	return d.documentsHandler.Get(ctx, d.collection(ctx).Doc(orderID))
}
