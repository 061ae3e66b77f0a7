package template

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"time"

	"golang.org/x/text/number"

	"github.com/goldleaf/storefront/invoices/invoice/domain"
)

const dateLayout = "02 Jan 2006"

//go:embed invoice.html.tmpl
var invoiceTemplate string

var invoicePage = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(invoiceTemplate))

// Builder assembles the invoice HTML of an order. Order and customer strings are
// escaped by html/template before they reach the browser.
type Builder struct {
	storeName string
}

func NewBuilder(storeName string) *Builder {
	return &Builder{storeName: storeName}
}

type itemView struct {
	Name      string
	Quantity  string
	UnitPrice string
	Total     string
}

type pageView struct {
	StoreName      string
	InvoiceNumber  string
	OrderDate      string
	PaidDate       string
	OrderStatus    string
	PaymentStatus  string
	Address        domain.ShippingAddress
	Items          []itemView
	Subtotal       string
	Tax            string
	Shipping       string
	HasDiscount    bool
	Discount       string
	PaymentCharges string
	Total          string
}

// Build renders the invoice page. It is pure: same order, same output.
func (b *Builder) Build(order *domain.Order) (string, error) {
	var buf bytes.Buffer

	if err := invoicePage.Execute(&buf, b.view(order)); err != nil {
		return "", fmt.Errorf("failed to assemble invoice html for order %s: %w", order.ID, err)
	}

	return buf.String(), nil
}

func (b *Builder) view(order *domain.Order) pageView {
	items := make([]itemView, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, itemView{
			Name:      item.Name,
			Quantity:  printer.Sprint(number.Decimal(item.Quantity)),
			UnitPrice: FormatCurrency(item.Price),
			Total:     FormatCurrency(item.LineTotal()),
		})
	}

	v := pageView{
		StoreName:      b.storeName,
		InvoiceNumber:  order.DisplayNumber(),
		OrderDate:      formatDate(order.CreatedAt),
		OrderStatus:    order.OrderStatus,
		PaymentStatus:  order.PaymentStatus,
		Address:        order.ShippingAddress,
		Items:          items,
		Subtotal:       FormatCurrency(order.SubtotalAmount),
		Tax:            FormatCurrency(order.TaxAmount),
		Shipping:       FormatCurrency(order.ShippingAmount),
		HasDiscount:    order.DiscountAmount > 0,
		Discount:       FormatCurrency(order.DiscountAmount),
		PaymentCharges: FormatCurrency(order.PaymentChargesAmount),
		Total:          FormatCurrency(order.TotalAmount),
	}

	if order.PaidAt != nil {
		v.PaidDate = formatDate(*order.PaidAt)
	}

	return v
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(dateLayout)
}
