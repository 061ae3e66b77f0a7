package api

import (
	"net/http"
	"os"

	"github.com/goldleaf/storefront/invoices/cmd/api/handlers"
	"github.com/goldleaf/storefront/invoices/framework/connection"
	"github.com/goldleaf/storefront/invoices/framework/mid"
	"github.com/goldleaf/storefront/invoices/framework/web"
	"github.com/goldleaf/storefront/invoices/invoice/config"
	invoiceHandlers "github.com/goldleaf/storefront/invoices/invoice/handlers"
	"github.com/goldleaf/storefront/invoices/logger"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
	cfg      *config.Config
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection, cfg *config.Config) *API {
	return &API{
		shutdown,
		logging,
		conn,
		cfg,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() (http.Handler, error) {
	loggerProvider := logger.FromContext

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, os.Getenv("SENTRY_DSN"), mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	invoice, err := invoiceHandlers.NewInvoice(loggerProvider, a.conn, a.cfg)
	if err != nil {
		return nil, err
	}

	app.Get("/_ah/health", handlers.Ping)

	invoices := web.NewGroup(app, "/invoices")
	invoices.Post("", invoice.CreateInvoice)

	orders := web.NewGroup(app, "/orders")
	orders.Get("/:orderID/invoice", invoice.GetOrderInvoice, mid.ValidatePathParamNotEmpty("orderID"))

	return app, nil
}
