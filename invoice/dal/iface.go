//go:generate mockery --output=./mocks --all

package dal

import (
	"context"
	"errors"

	"github.com/goldleaf/storefront/invoices/invoice/domain"
)

var ErrOrderNotFound = errors.New("order not found")

const (
	ordersCollection  = "orders"
	orderNumberField  = "orderNumber"
	objectIDHexLength = 24
)

// OrdersDAL reads order snapshots written by the checkout flow.
type OrdersDAL interface {
	// GetOrder looks the order up by id, then by order number.
	GetOrder(ctx context.Context, orderID string) (*domain.Order, error)
}
