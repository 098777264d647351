package order

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mopt "go.mongodb.org/mongo-driver/mongo/options"
)

var _ OrdersModel = (*defaultOrdersModel)(nil)

type (
	// OrdersModel reads the storefront's order collection. Read-only.
	OrdersModel interface {
		Search(ctx context.Context, q Query, limit int64) ([]*Order, error)
		FindAll(ctx context.Context, limit int64) ([]*Order, error)
	}

	defaultOrdersModel struct {
		conn *mon.Model
	}
)

// NewOrdersModel returns a model for the orders collection.
func NewOrdersModel(uri, db, collection string) OrdersModel {
	return &defaultOrdersModel{
		conn: mon.MustNewModel(uri, db, collection),
	}
}

// Search resolves orders for the query, capped at limit in store order.
// An under-specified query yields an empty result without touching the
// store, so a vague tool call can never leak unrelated orders.
func (m *defaultOrdersModel) Search(ctx context.Context, q Query, limit int64) ([]*Order, error) {
	filter, ok := BuildFilter(q)
	if !ok {
		return nil, nil
	}

	opts := mopt.Find().SetLimit(limit)

	var orders []*Order
	if err := m.conn.Find(ctx, &orders, filter, opts); err != nil {
		return nil, err
	}
	return orders, nil
}

func (m *defaultOrdersModel) FindAll(ctx context.Context, limit int64) ([]*Order, error) {
	opts := mopt.Find().SetLimit(limit)

	var orders []*Order
	if err := m.conn.Find(ctx, &orders, bson.M{}, opts); err != nil {
		return nil, err
	}
	return orders, nil
}

type Address struct {
	AddressType string `bson:"addressType,omitempty" json:"addressType,omitempty"`
	FullName    string `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`
	Pincode     string `bson:"pincode,omitempty" json:"pincode,omitempty"`
	City        string `bson:"city,omitempty" json:"city,omitempty"`
	State       string `bson:"state,omitempty" json:"state,omitempty"`
	Country     string `bson:"country,omitempty" json:"country,omitempty"`
	Street      string `bson:"street,omitempty" json:"street,omitempty"`
}

type ShippingMethod struct {
	Provider          string  `bson:"provider,omitempty" json:"provider,omitempty"`
	ServiceName       string  `bson:"serviceName,omitempty" json:"serviceName,omitempty"`
	Cost              float64 `bson:"cost,omitempty" json:"cost,omitempty"`
	EstimatedDelivery string  `bson:"estimatedDelivery,omitempty" json:"estimatedDelivery,omitempty"`
	TrackingNumber    string  `bson:"trackingNumber,omitempty" json:"trackingNumber,omitempty"`
	TrackingUrl       string  `bson:"trackingUrl,omitempty" json:"trackingUrl,omitempty"`
}

type PaymentDetails struct {
	Method     string  `bson:"method,omitempty" json:"method,omitempty"`
	Status     string  `bson:"status,omitempty" json:"status,omitempty"`
	Provider   string  `bson:"provider,omitempty" json:"provider,omitempty"`
	MethodType string  `bson:"methodType,omitempty" json:"methodType,omitempty"`
	PaymentId  string  `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	AmountPaid float64 `bson:"amountPaid,omitempty" json:"amountPaid,omitempty"`
	Currency   string  `bson:"currency,omitempty" json:"currency,omitempty"`
}

type Totals struct {
	ItemsSubtotal          float64 `bson:"itemsSubtotal,omitempty" json:"itemsSubtotal,omitempty"`
	CartDiscountAmount     float64 `bson:"cartDiscountAmount,omitempty" json:"cartDiscountAmount,omitempty"`
	ShippingCost           float64 `bson:"shippingCost,omitempty" json:"shippingCost,omitempty"`
	AdditionalFees         float64 `bson:"additionalFees,omitempty" json:"additionalFees,omitempty"`
	CheckoutDiscountAmount float64 `bson:"checkoutDiscountAmount,omitempty" json:"checkoutDiscountAmount,omitempty"`
	GrandTotal             float64 `bson:"grandTotal,omitempty" json:"grandTotal,omitempty"`
}

// Item is a line item carrying a product-name snapshot taken at checkout
// time; the name is what order tracking matches against.
type Item struct {
	Product  primitive.ObjectID `bson:"product,omitempty" json:"product,omitempty"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Quantity int32              `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Price    float64            `bson:"price,omitempty" json:"price,omitempty"`
}

type Order struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User                    primitive.ObjectID `bson:"user,omitempty" json:"-"`
	CheckoutId              string             `bson:"checkoutId,omitempty" json:"checkoutId,omitempty"`
	Items                   []Item             `bson:"items,omitempty" json:"items,omitempty"`
	ShippingAddress         *Address           `bson:"shippingAddress,omitempty" json:"shippingAddress,omitempty"`
	BillingAddress          *Address           `bson:"billingAddress,omitempty" json:"billingAddress,omitempty"`
	IsBillingSameAsShipping bool               `bson:"isBillingSameAsShipping,omitempty" json:"isBillingSameAsShipping,omitempty"`
	ShippingMethod          *ShippingMethod    `bson:"shippingMethod,omitempty" json:"shippingMethod,omitempty"`
	PaymentDetails          *PaymentDetails    `bson:"paymentDetails,omitempty" json:"paymentDetails,omitempty"`
	Totals                  *Totals            `bson:"totals,omitempty" json:"totals,omitempty"`
	Status                  string             `bson:"status,omitempty" json:"status,omitempty"`
	OrderNumber             string             `bson:"orderNumber,omitempty" json:"orderNumber,omitempty"`
	CreatedAt               time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt               time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// CustomerName returns the shipping fullName, falling back to billing.
func (o *Order) CustomerName() string {
	if o == nil {
		return ""
	}
	if o.ShippingAddress != nil && o.ShippingAddress.FullName != "" {
		return o.ShippingAddress.FullName
	}
	if o.BillingAddress != nil {
		return o.BillingAddress.FullName
	}
	return ""
}
