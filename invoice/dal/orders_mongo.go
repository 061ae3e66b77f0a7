package dal

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/goldleaf/storefront/invoices/invoice/domain"
)

// OrdersMongo reads orders from the storefront MongoDB database.
type OrdersMongo struct {
	ordersCollection *mongo.Collection
}

func NewOrdersMongo(db *mongo.Database) *OrdersMongo {
	return &OrdersMongo{
		ordersCollection: db.Collection(ordersCollection),
	}
}

func orderFilter(orderID string) bson.M {
	or := bson.A{
		bson.M{"_id": orderID},
		bson.M{orderNumberField: orderID},
	}

	if len(orderID) == objectIDHexLength {
		if oid, err := primitive.ObjectIDFromHex(orderID); err == nil {
			or = append(bson.A{bson.M{"_id": oid}}, or...)
		}
	}

	return bson.M{"$or": or}
}

func (d *OrdersMongo) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, domain.ErrMissingOrderID
	}

	var order domain.Order

	if err := d.ordersCollection.FindOne(ctx, orderFilter(orderID)).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}

		return nil, err
	}

	return &order, nil
}
