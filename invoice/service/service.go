package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/goldleaf/storefront/invoices/invoice/dal"
	"github.com/goldleaf/storefront/invoices/invoice/domain"
	"github.com/goldleaf/storefront/invoices/invoice/storage"
	"github.com/goldleaf/storefront/invoices/logger"
)

// DefaultUploadTimeout bounds a single upload call.
const DefaultUploadTimeout = 30 * time.Second

type Options struct {
	UploadTimeout time.Duration
	// MaxConcurrentRenders caps the browsers running at once, 0 means no cap.
	MaxConcurrentRenders int
}

type InvoiceService struct {
	loggerProvider logger.Provider
	ordersDAL      dal.OrdersDAL
	builder        HTMLBuilder
	renderer       PDFRenderer
	uploader       storage.Uploader
	uploadTimeout  time.Duration
	renderSlots    *semaphore.Weighted
}

func NewInvoiceService(
	loggerProvider logger.Provider,
	ordersDAL dal.OrdersDAL,
	builder HTMLBuilder,
	renderer PDFRenderer,
	uploader storage.Uploader,
	opts Options,
) *InvoiceService {
	s := &InvoiceService{
		loggerProvider: loggerProvider,
		ordersDAL:      ordersDAL,
		builder:        builder,
		renderer:       renderer,
		uploader:       uploader,
		uploadTimeout:  opts.UploadTimeout,
	}

	if s.uploadTimeout <= 0 {
		s.uploadTimeout = DefaultUploadTimeout
	}

	if opts.MaxConcurrentRenders > 0 {
		s.renderSlots = semaphore.NewWeighted(int64(opts.MaxConcurrentRenders))
	}

	return s
}

func (s *InvoiceService) GenerateForOrder(ctx context.Context, orderID string) (string, error) {
	l := s.loggerProvider(ctx)
	l.SetLabel(logger.LabelOrderID, orderID)

	order, err := s.ordersDAL.GetOrder(ctx, orderID)
	if err != nil {
		if !errors.Is(err, dal.ErrOrderNotFound) {
			l.Errorf("failed to load order %s: %s", orderID, err)
		}

		return "", err
	}

	return s.Generate(ctx, order)
}

// Generate validates order, renders its invoice and uploads it under a name derived from
// the order, so repeated calls replace the same object. The returned URL is never empty.
func (s *InvoiceService) Generate(ctx context.Context, order *domain.Order) (string, error) {
	l := s.loggerProvider(ctx)

	if err := order.Validate(); err != nil {
		l.Warningf("rejected invoice request: %s", err)
		return "", err
	}

	invoice := &domain.Invoice{
		OrderID: order.ID,
		Name:    domain.InvoiceName(order),
	}
	target := s.uploader.Target()

	l.SetLabels(map[string]string{
		logger.LabelOrderID:      invoice.OrderID,
		logger.LabelInvoiceName:  invoice.Name,
		logger.LabelUploadTarget: target,
	})

	if err := s.uploader.Validate(); err != nil {
		l.Errorf("invoice upload is not configured for %s: %s", target, err)
		return "", err
	}

	pdf, err := s.render(ctx, order)
	if err != nil {
		l.Errorf("failed to render invoice for order %s: %s", invoice.OrderID, err)
		return "", err
	}

	invoice.PDF = pdf

	l.Infof("rendered invoice %s for order %s, %d bytes", invoice.Name, invoice.OrderID, len(invoice.PDF))

	invoice.URL, err = s.upload(ctx, invoice.Name, invoice.PDF)
	if err != nil {
		l.Errorf("failed to upload invoice %s (%d bytes) to %s: %s", invoice.Name, len(invoice.PDF), target, err)
		return "", err
	}

	if invoice.URL == "" {
		l.Errorf("upload of invoice %s to %s returned no url", invoice.Name, target)
		return "", domain.ErrUploadMissingURL
	}

	l.Infof("uploaded invoice %s to %s", invoice.Name, invoice.URL)

	return invoice.URL, nil
}

func (s *InvoiceService) render(ctx context.Context, order *domain.Order) ([]byte, error) {
	html, err := s.builder.Build(order)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRender, err)
	}

	if s.renderSlots != nil {
		if err := s.renderSlots.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("waiting for a render slot: %w", err)
		}
		defer s.renderSlots.Release(1)
	}

	return s.renderer.Render(ctx, html)
}

type uploadResult struct {
	url string
	err error
}

// upload gives up after uploadTimeout, whatever the uploader does afterwards.
func (s *InvoiceService) upload(ctx context.Context, name string, pdf []byte) (string, error) {
	uploadCtx, cancel := context.WithTimeout(ctx, s.uploadTimeout)
	defer cancel()

	done := make(chan uploadResult, 1)

	go func() {
		url, err := s.uploader.Upload(uploadCtx, name, pdf)
		done <- uploadResult{url: url, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil && s.timedOut(ctx, uploadCtx) {
			return "", s.timeoutError()
		}

		return r.url, r.err
	case <-uploadCtx.Done():
		if s.timedOut(ctx, uploadCtx) {
			return "", s.timeoutError()
		}

		return "", fmt.Errorf("%w: %w", domain.ErrUpload, ctx.Err())
	}
}

func (s *InvoiceService) timedOut(parent, uploadCtx context.Context) bool {
	return parent.Err() == nil && errors.Is(uploadCtx.Err(), context.DeadlineExceeded)
}

func (s *InvoiceService) timeoutError() error {
	return fmt.Errorf("%w after %s", domain.ErrUploadTimeout, s.uploadTimeout)
}
