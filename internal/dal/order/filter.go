package order

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Query carries the identifying fields a track_order tool call may supply.
// Resolution priority: an order number alone wins; otherwise customer name
// and product name must both be present.
type Query struct {
	OrderID      string
	ProductName  string
	CustomerName string
}

// Resolvable reports whether the query carries enough to form a filter.
func (q Query) Resolvable() bool {
	if strings.TrimSpace(q.OrderID) != "" {
		return true
	}
	return strings.TrimSpace(q.ProductName) != "" && strings.TrimSpace(q.CustomerName) != ""
}

// BuildFilter maps a query to a Mongo filter. The second return value is
// false when no filter can be formed; callers must then return an empty
// result instead of querying the whole collection.
func BuildFilter(q Query) (bson.M, bool) {
	if orderID := strings.TrimSpace(q.OrderID); orderID != "" {
		return bson.M{"orderNumber": orderID}, true
	}

	productName := strings.TrimSpace(q.ProductName)
	customerName := strings.TrimSpace(q.CustomerName)
	if productName == "" || customerName == "" {
		return nil, false
	}

	customerPat := containsPattern(customerName)
	return bson.M{
		"$and": []bson.M{
			{"$or": []bson.M{
				{"shippingAddress.fullName": customerPat},
				{"billingAddress.fullName": customerPat},
			}},
			{"items.name": containsPattern(productName)},
		},
	}, true
}

// containsPattern builds a case-insensitive substring match.
func containsPattern(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}
