package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/goldleaf/storefront/invoices/errorreporting"
	"github.com/goldleaf/storefront/invoices/framework/connection"
	"github.com/goldleaf/storefront/invoices/framework/web"
	"github.com/goldleaf/storefront/invoices/invoice/config"
	"github.com/goldleaf/storefront/invoices/invoice/dal"
	"github.com/goldleaf/storefront/invoices/invoice/domain"
	"github.com/goldleaf/storefront/invoices/invoice/render"
	"github.com/goldleaf/storefront/invoices/invoice/service"
	"github.com/goldleaf/storefront/invoices/invoice/storage"
	"github.com/goldleaf/storefront/invoices/invoice/template"
	"github.com/goldleaf/storefront/invoices/logger"
)

// ErrGenerateFailedMessage is what clients see for any failure past input validation.
const ErrGenerateFailedMessage = "failed to generate invoice, please try again"

type Invoice struct {
	loggerProvider logger.Provider
	service        service.IInvoiceService
}

type invoiceResponse struct {
	URL string `json:"url"`
}

func NewInvoice(loggerProvider logger.Provider, conn *connection.Connection, cfg *config.Config) (*Invoice, error) {
	ordersDAL, err := newOrdersDAL(conn, cfg)
	if err != nil {
		return nil, err
	}

	uploader, err := newUploader(conn, cfg)
	if err != nil {
		return nil, err
	}

	invoiceService := service.NewInvoiceService(
		loggerProvider,
		ordersDAL,
		template.NewBuilder(cfg.StoreName),
		render.NewRenderer(logger.DetailedLoggerFromContext, render.EnvironmentFromEnv(), cfg.BrowserPath),
		uploader,
		service.Options{
			UploadTimeout:        cfg.UploadTimeout,
			MaxConcurrentRenders: cfg.MaxConcurrentRenders,
		},
	)

	return &Invoice{
		loggerProvider,
		invoiceService,
	}, nil
}

func newOrdersDAL(conn *connection.Connection, cfg *config.Config) (dal.OrdersDAL, error) {
	switch cfg.OrdersBackend {
	case config.OrdersBackendFirestore:
		return dal.NewOrdersFirestore(conn.Firestore), nil
	case config.OrdersBackendMongoDB:
		db := conn.MongoDatabase(context.Background())
		if db == nil {
			return nil, errors.New("mongodb orders backend selected but no database is connected")
		}

		return dal.NewOrdersMongo(db), nil
	default:
		return nil, fmt.Errorf("unknown orders backend %q", cfg.OrdersBackend)
	}
}

func newUploader(conn *connection.Connection, cfg *config.Config) (storage.Uploader, error) {
	switch cfg.StorageProvider {
	case storage.ProviderCloudinary:
		return storage.NewCloudinaryUploader(cfg.Cloudinary, cfg.UploadFolder), nil
	case storage.ProviderGCS:
		return storage.NewGCSUploader(conn.CloudStorage(context.Background()), cfg.GCSBucket, cfg.UploadFolder), nil
	default:
		return nil, fmt.Errorf("unknown invoice storage provider %q", cfg.StorageProvider)
	}
}

// CreateInvoice renders the invoice of the order snapshot in the request body.
func (h *Invoice) CreateInvoice(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)
	l.SetLabel(logger.LabelInvoiceSource, "snapshot")

	var order domain.Order

	if err := ctx.ShouldBindJSON(&order); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	url, err := h.service.Generate(ctx, &order)
	if err != nil {
		return requestError(ctx, err)
	}

	return web.Respond(ctx, invoiceResponse{URL: url}, http.StatusCreated)
}

// GetOrderInvoice renders the invoice of a stored order. With ?redirect=true the client
// is sent straight to the document.
func (h *Invoice) GetOrderInvoice(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)
	l.SetLabel(logger.LabelInvoiceSource, "order")

	orderID := ctx.Param("orderID")

	redirect, err := parseRedirect(ctx.Query("redirect"))
	if err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	url, err := h.service.GenerateForOrder(ctx, orderID)
	if err != nil {
		return requestError(ctx, err)
	}

	if redirect {
		return web.RespondRedirect(ctx, url)
	}

	return web.Respond(ctx, invoiceResponse{URL: url}, http.StatusOK)
}

func parseRedirect(v string) (bool, error) {
	if v == "" {
		return false, nil
	}

	redirect, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid redirect value %q", v)
	}

	return redirect, nil
}

func requestError(ctx *gin.Context, err error) error {
	switch {
	case domain.KindOf(err) == domain.KindInput:
		return web.NewRequestError(err, http.StatusBadRequest)
	case errors.Is(err, dal.ErrOrderNotFound):
		return web.NewRequestError(err, http.StatusNotFound)
	default:
		errorreporting.ReportRequestError(ctx, err)
		return web.NewPublicRequestError(err, http.StatusInternalServerError, ErrGenerateFailedMessage)
	}
}
