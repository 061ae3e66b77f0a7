package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/goldleaf/storefront/invoices/invoice/dal"
	dalMocks "github.com/goldleaf/storefront/invoices/invoice/dal/mocks"
	"github.com/goldleaf/storefront/invoices/invoice/domain"
	"github.com/goldleaf/storefront/invoices/invoice/service/mocks"
	storageMocks "github.com/goldleaf/storefront/invoices/invoice/storage/mocks"
	"github.com/goldleaf/storefront/invoices/logger"
)

const (
	invoiceURL   = "https://res.cloudinary.com/goldleaf/raw/upload/v1/invoices/invoice-ORD-1001"
	uploadTarget = "cloudinary://goldleaf/invoices"
	invoiceHTML  = "<html>ORD-1001</html>"
)

var invoicePDF = []byte("%PDF-1.4 ORD-1001")

type fields struct {
	ordersDAL *dalMocks.OrdersDAL
	builder   *mocks.HTMLBuilder
	renderer  *mocks.PDFRenderer
	uploader  *storageMocks.Uploader
}

func newFields() *fields {
	return &fields{
		ordersDAL: &dalMocks.OrdersDAL{},
		builder:   &mocks.HTMLBuilder{},
		renderer:  &mocks.PDFRenderer{},
		uploader:  &storageMocks.Uploader{},
	}
}

func (f *fields) service(opts Options) *InvoiceService {
	return NewInvoiceService(logger.FromContext, f.ordersDAL, f.builder, f.renderer, f.uploader, opts)
}

func (f *fields) assertExpectations(t *testing.T) {
	f.ordersDAL.AssertExpectations(t)
	f.builder.AssertExpectations(t)
	f.renderer.AssertExpectations(t)
	f.uploader.AssertExpectations(t)
}

func goldChainOrder() *domain.Order {
	return &domain.Order{
		ID:          "507f1f77bcf86cd799439011",
		OrderNumber: "ORD-1001",
		Items: []domain.Item{
			{Name: "Gold Chain", Price: 60000, Quantity: 1},
		},
		SubtotalAmount:       60000,
		TaxAmount:            1800,
		PaymentChargesAmount: 500,
		TotalAmount:          62300,
	}
}

func TestInvoiceService_Generate(t *testing.T) {
	tests := []struct {
		name     string
		order    *domain.Order
		on       func(f *fields)
		want     string
		wantErr  error
		wantKind domain.Kind
	}{
		{
			name:  "uploads the rendered invoice",
			order: goldChainOrder(),
			on: func(f *fields) {
				f.uploader.On("Target").Return(uploadTarget).Once()
				f.uploader.On("Validate").Return(nil).Once()
				f.builder.On("Build", mock.AnythingOfType("*domain.Order")).Return(invoiceHTML, nil).Once()
				f.renderer.On("Render", mock.Anything, invoiceHTML).Return(invoicePDF, nil).Once()
				f.uploader.On("Upload", mock.Anything, "invoice-ORD-1001", invoicePDF).Return(invoiceURL, nil).Once()
			},
			want: invoiceURL,
		},
		{
			name:     "nil order",
			order:    nil,
			wantErr:  domain.ErrMissingOrderID,
			wantKind: domain.KindInput,
		},
		{
			name:     "missing id",
			order:    &domain.Order{Items: goldChainOrder().Items},
			wantErr:  domain.ErrMissingOrderID,
			wantKind: domain.KindInput,
		},
		{
			name:     "no items",
			order:    &domain.Order{ID: "507f1f77bcf86cd799439011"},
			wantErr:  domain.ErrNoItems,
			wantKind: domain.KindInput,
		},
		{
			name: "negative quantity",
			order: &domain.Order{
				ID:    "507f1f77bcf86cd799439011",
				Items: []domain.Item{{Name: "Ring", Price: 100, Quantity: -1}},
			},
			wantErr:  domain.ErrInvalidItem,
			wantKind: domain.KindInput,
		},
		{
			name:  "missing credentials",
			order: goldChainOrder(),
			on: func(f *fields) {
				f.uploader.On("Target").Return(uploadTarget).Once()
				f.uploader.On("Validate").
					Return(&domain.MissingCredentialsError{Provider: "cloudinary", Missing: []string{"api key"}}).
					Once()
			},
			wantErr:  domain.ErrMissingCredentials,
			wantKind: domain.KindConfiguration,
		},
		{
			name:  "template failure",
			order: goldChainOrder(),
			on: func(f *fields) {
				f.uploader.On("Target").Return(uploadTarget).Once()
				f.uploader.On("Validate").Return(nil).Once()
				f.builder.On("Build", mock.AnythingOfType("*domain.Order")).Return("", errors.New("template: bad field")).Once()
			},
			wantErr:  domain.ErrRender,
			wantKind: domain.KindRendering,
		},
		{
			name:  "browser not found",
			order: goldChainOrder(),
			on: func(f *fields) {
				f.uploader.On("Target").Return(uploadTarget).Once()
				f.uploader.On("Validate").Return(nil).Once()
				f.builder.On("Build", mock.AnythingOfType("*domain.Order")).Return(invoiceHTML, nil).Once()
				f.renderer.On("Render", mock.Anything, invoiceHTML).
					Return(nil, &domain.BrowserNotFoundError{Searched: []string{"/usr/bin/chromium"}}).
					Once()
			},
			wantErr:  domain.ErrBrowserNotFound,
			wantKind: domain.KindEnvironment,
		},
		{
			name:  "upload failure",
			order: goldChainOrder(),
			on: func(f *fields) {
				f.uploader.On("Target").Return(uploadTarget).Once()
				f.uploader.On("Validate").Return(nil).Once()
				f.builder.On("Build", mock.AnythingOfType("*domain.Order")).Return(invoiceHTML, nil).Once()
				f.renderer.On("Render", mock.Anything, invoiceHTML).Return(invoicePDF, nil).Once()
				f.uploader.On("Upload", mock.Anything, "invoice-ORD-1001", invoicePDF).
					Return("", domain.ErrUpload).
					Once()
			},
			wantErr:  domain.ErrUpload,
			wantKind: domain.KindUpload,
		},
		{
			name:  "empty url",
			order: goldChainOrder(),
			on: func(f *fields) {
				f.uploader.On("Target").Return(uploadTarget).Once()
				f.uploader.On("Validate").Return(nil).Once()
				f.builder.On("Build", mock.AnythingOfType("*domain.Order")).Return(invoiceHTML, nil).Once()
				f.renderer.On("Render", mock.Anything, invoiceHTML).Return(invoicePDF, nil).Once()
				f.uploader.On("Upload", mock.Anything, "invoice-ORD-1001", invoicePDF).Return("", nil).Once()
			},
			wantErr:  domain.ErrUploadMissingURL,
			wantKind: domain.KindUpload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields()
			if tt.on != nil {
				tt.on(f)
			}

			got, err := f.service(Options{}).Generate(context.Background(), tt.order)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantKind, domain.KindOf(err))
				assert.Empty(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			f.assertExpectations(t)

			if tt.wantKind == domain.KindInput {
				f.uploader.AssertNotCalled(t, "Validate")
				f.renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
				f.uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}

func TestInvoiceService_GenerateUploadTimeout(t *testing.T) {
	f := newFields()
	release := make(chan time.Time)

	f.uploader.On("Target").Return(uploadTarget)
	f.uploader.On("Validate").Return(nil)
	f.builder.On("Build", mock.AnythingOfType("*domain.Order")).Return(invoiceHTML, nil)
	f.renderer.On("Render", mock.Anything, invoiceHTML).Return(invoicePDF, nil)
	f.uploader.On("Upload", mock.Anything, "invoice-ORD-1001", invoicePDF).
		WaitUntil(release).
		Return(invoiceURL, nil)

	s := f.service(Options{UploadTimeout: 20 * time.Millisecond})

	start := time.Now()
	got, err := s.Generate(context.Background(), goldChainOrder())

	assert.ErrorIs(t, err, domain.ErrUploadTimeout)
	assert.Equal(t, domain.KindUpload, domain.KindOf(err))
	assert.Empty(t, got)
	assert.Less(t, time.Since(start), 5*time.Second)

	// the upload resolving afterwards does not change the result
	close(release)
}

func TestInvoiceService_GenerateUploadRespectsDeadlineError(t *testing.T) {
	f := newFields()

	f.uploader.On("Target").Return(uploadTarget)
	f.uploader.On("Validate").Return(nil)
	f.builder.On("Build", mock.AnythingOfType("*domain.Order")).Return(invoiceHTML, nil)
	f.renderer.On("Render", mock.Anything, invoiceHTML).Return(invoicePDF, nil)
	f.uploader.On("Upload", mock.Anything, "invoice-ORD-1001", invoicePDF).
		Return(func(ctx context.Context, _ string, _ []byte) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

	_, err := f.service(Options{UploadTimeout: 10 * time.Millisecond}).Generate(context.Background(), goldChainOrder())

	assert.ErrorIs(t, err, domain.ErrUploadTimeout)
}

func TestInvoiceService_GenerateCanceled(t *testing.T) {
	f := newFields()

	ctx, cancel := context.WithCancel(context.Background())

	f.uploader.On("Target").Return(uploadTarget)
	f.uploader.On("Validate").Return(nil)
	f.builder.On("Build", mock.AnythingOfType("*domain.Order")).Return(invoiceHTML, nil)
	f.renderer.On("Render", mock.Anything, invoiceHTML).Return(invoicePDF, nil)
	f.uploader.On("Upload", mock.Anything, "invoice-ORD-1001", invoicePDF).
		Run(func(mock.Arguments) { cancel() }).
		Return(func(ctx context.Context, _ string, _ []byte) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})

	_, err := f.service(Options{}).Generate(ctx, goldChainOrder())

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrUploadTimeout)
}

func TestInvoiceService_GenerateUsesStableName(t *testing.T) {
	f := newFields()

	f.uploader.On("Target").Return(uploadTarget)
	f.uploader.On("Validate").Return(nil)
	f.builder.On("Build", mock.AnythingOfType("*domain.Order")).Return(invoiceHTML, nil)
	f.renderer.On("Render", mock.Anything, invoiceHTML).Return(invoicePDF, nil)
	f.uploader.On("Upload", mock.Anything, "invoice-ORD-1001", invoicePDF).Return(invoiceURL, nil).Times(3)
	f.uploader.On("Upload", mock.Anything, "invoice-507f1f77bcf86cd799439011", invoicePDF).Return(invoiceURL, nil).Once()

	s := f.service(Options{})

	for i := 0; i < 3; i++ {
		_, err := s.Generate(context.Background(), goldChainOrder())
		require.NoError(t, err)
	}

	withoutNumber := goldChainOrder()
	withoutNumber.OrderNumber = ""

	_, err := s.Generate(context.Background(), withoutNumber)
	require.NoError(t, err)

	f.uploader.AssertExpectations(t)
}

func TestInvoiceService_GenerateLimitsConcurrentRenders(t *testing.T) {
	f := newFields()

	var running, peak int32

	f.uploader.On("Target").Return(uploadTarget)
	f.uploader.On("Validate").Return(nil)
	f.builder.On("Build", mock.AnythingOfType("*domain.Order")).Return(invoiceHTML, nil)
	f.renderer.On("Render", mock.Anything, invoiceHTML).
		Run(func(mock.Arguments) {
			n := atomic.AddInt32(&running, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}

			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&running, -1)
		}).
		Return(invoicePDF, nil)
	f.uploader.On("Upload", mock.Anything, "invoice-ORD-1001", invoicePDF).Return(invoiceURL, nil)

	s := f.service(Options{MaxConcurrentRenders: 2})

	var wg sync.WaitGroup

	for i := 0; i < 6; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := s.Generate(context.Background(), goldChainOrder())
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
	f.renderer.AssertNumberOfCalls(t, "Render", 6)
}

func TestInvoiceService_GenerateRenderSlotCanceled(t *testing.T) {
	f := newFields()

	f.uploader.On("Target").Return(uploadTarget)
	f.uploader.On("Validate").Return(nil)
	f.builder.On("Build", mock.AnythingOfType("*domain.Order")).Return(invoiceHTML, nil)

	s := f.service(Options{MaxConcurrentRenders: 1})
	require.True(t, s.renderSlots.TryAcquire(1))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := s.Generate(ctx, goldChainOrder())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	f.renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

func TestInvoiceService_GenerateForOrder(t *testing.T) {
	t.Run("loads the order", func(t *testing.T) {
		f := newFields()

		f.ordersDAL.On("GetOrder", mock.Anything, "ORD-1001").Return(goldChainOrder(), nil).Once()
		f.uploader.On("Target").Return(uploadTarget).Once()
		f.uploader.On("Validate").Return(nil).Once()
		f.builder.On("Build", mock.AnythingOfType("*domain.Order")).Return(invoiceHTML, nil).Once()
		f.renderer.On("Render", mock.Anything, invoiceHTML).Return(invoicePDF, nil).Once()
		f.uploader.On("Upload", mock.Anything, "invoice-ORD-1001", invoicePDF).Return(invoiceURL, nil).Once()

		got, err := f.service(Options{}).GenerateForOrder(context.Background(), "ORD-1001")
		require.NoError(t, err)

		assert.Equal(t, invoiceURL, got)
		f.assertExpectations(t)
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newFields()

		f.ordersDAL.On("GetOrder", mock.Anything, "ORD-404").Return(nil, dal.ErrOrderNotFound).Once()

		_, err := f.service(Options{}).GenerateForOrder(context.Background(), "ORD-404")

		assert.ErrorIs(t, err, dal.ErrOrderNotFound)
		f.renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})
}

func TestNewInvoiceServiceDefaults(t *testing.T) {
	s := NewInvoiceService(logger.FromContext, nil, nil, nil, nil, Options{UploadTimeout: -1})

	assert.Equal(t, DefaultUploadTimeout, s.uploadTimeout)
	assert.Nil(t, s.renderSlots)
}
