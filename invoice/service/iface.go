package service

import (
	"context"

	"github.com/goldleaf/storefront/invoices/invoice/domain"
)

//go:generate mockery --output=./mocks --all
type IInvoiceService interface {
	// Generate renders the invoice of order and returns its public URL.
	Generate(ctx context.Context, order *domain.Order) (string, error)
	// GenerateForOrder loads the order first.
	GenerateForOrder(ctx context.Context, orderID string) (string, error)
}

type HTMLBuilder interface {
	Build(order *domain.Order) (string, error)
}

type PDFRenderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}
