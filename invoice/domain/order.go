package domain

import (
	"strings"
	"time"
)

// Order is the snapshot of a placed order as written by the checkout flow.
// It is read-only for invoicing.
type Order struct {
	ID                   string          `json:"_id" firestore:"-" bson:"_id"`
	OrderNumber          string          `json:"orderNumber,omitempty" firestore:"orderNumber" bson:"orderNumber,omitempty"`
	Items                []Item          `json:"items" firestore:"items" bson:"items"`
	SubtotalAmount       float64         `json:"subtotalAmount" firestore:"subtotalAmount" bson:"subtotalAmount"`
	TaxAmount            float64         `json:"taxAmount" firestore:"taxAmount" bson:"taxAmount"`
	ShippingAmount       float64         `json:"shippingAmount" firestore:"shippingAmount" bson:"shippingAmount"`
	DiscountAmount       float64         `json:"discountAmount" firestore:"discountAmount" bson:"discountAmount"`
	PaymentChargesAmount float64         `json:"paymentChargesAmount" firestore:"paymentChargesAmount" bson:"paymentChargesAmount"`
	TotalAmount          float64         `json:"totalAmount" firestore:"totalAmount" bson:"totalAmount"`
	OrderStatus          string          `json:"orderStatus" firestore:"orderStatus" bson:"orderStatus"`
	PaymentStatus        string          `json:"paymentStatus" firestore:"paymentStatus" bson:"paymentStatus"`
	ShippingAddress      ShippingAddress `json:"shippingAddress" firestore:"shippingAddress" bson:"shippingAddress"`
	CreatedAt            time.Time       `json:"createdAt" firestore:"createdAt" bson:"createdAt"`
	PaidAt               *time.Time      `json:"paidAt,omitempty" firestore:"paidAt" bson:"paidAt,omitempty"`
	CourierName          string          `json:"courierName,omitempty" firestore:"courierName" bson:"courierName,omitempty"`
	TrackingNumber       string          `json:"trackingNumber,omitempty" firestore:"trackingNumber" bson:"trackingNumber,omitempty"`
}

type Item struct {
	Name     string  `json:"name" firestore:"name" bson:"name"`
	Price    float64 `json:"price" firestore:"price" bson:"price" validate:"gte=0"`
	Quantity float64 `json:"quantity" firestore:"quantity" bson:"quantity" validate:"gte=0"`
}

// LineTotal is the price of the item times its quantity.
func (i Item) LineTotal() float64 {
	return i.Price * i.Quantity
}

type ShippingAddress struct {
	Name         string `json:"name,omitempty" firestore:"name" bson:"name,omitempty"`
	Phone        string `json:"phone,omitempty" firestore:"phone" bson:"phone,omitempty"`
	AddressLine1 string `json:"addressLine1,omitempty" firestore:"addressLine1" bson:"addressLine1,omitempty"`
	AddressLine2 string `json:"addressLine2,omitempty" firestore:"addressLine2" bson:"addressLine2,omitempty"`
	City         string `json:"city,omitempty" firestore:"city" bson:"city,omitempty"`
	State        string `json:"state,omitempty" firestore:"state" bson:"state,omitempty"`
	PostalCode   string `json:"postalCode,omitempty" firestore:"postalCode" bson:"postalCode,omitempty"`
	Country      string `json:"country,omitempty" firestore:"country" bson:"country,omitempty"`
}

// DisplayNumber is the human readable order number, falling back to the id.
func (o *Order) DisplayNumber() string {
	if n := strings.TrimSpace(o.OrderNumber); n != "" {
		return n
	}

	return o.ID
}

// InvoiceName is the storage object name of the order invoice. It only depends on the
// order number (or id) so that regenerating an invoice overwrites the previous object.
func InvoiceName(o *Order) string {
	return invoiceNamePrefix + o.DisplayNumber()
}

const invoiceNamePrefix = "invoice-"
