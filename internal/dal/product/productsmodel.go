package product

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/stores/mon"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mopt "go.mongodb.org/mongo-driver/mongo/options"
)

var _ ProductsModel = (*defaultProductsModel)(nil)

type (
	// ProductsModel reads the storefront's product collection. All
	// operations are read-only; catalog writes happen in the admin system.
	ProductsModel interface {
		FindByMaxPrice(ctx context.Context, maxPrice float64, limit int64) ([]*Product, error)
		FindAll(ctx context.Context, limit int64) ([]*Product, error)
	}

	defaultProductsModel struct {
		conn *mon.Model
	}
)

// NewProductsModel returns a model for the products collection.
func NewProductsModel(uri, db, collection string) ProductsModel {
	return &defaultProductsModel{
		conn: mon.MustNewModel(uri, db, collection),
	}
}

// FindByMaxPrice returns products priced at or under maxPrice, in store
// order, capped at limit. The cap is a hard bound, not a page boundary.
func (m *defaultProductsModel) FindByMaxPrice(ctx context.Context, maxPrice float64, limit int64) ([]*Product, error) {
	filter := bson.M{"basePrice": bson.M{"$lte": maxPrice}}
	opts := mopt.Find().SetLimit(limit)

	var products []*Product
	if err := m.conn.Find(ctx, &products, filter, opts); err != nil {
		return nil, err
	}
	return products, nil
}

func (m *defaultProductsModel) FindAll(ctx context.Context, limit int64) ([]*Product, error) {
	opts := mopt.Find().SetLimit(limit)

	var products []*Product
	if err := m.conn.Find(ctx, &products, bson.M{}, opts); err != nil {
		return nil, err
	}
	return products, nil
}

type CategoryInfo struct {
	Parent string `bson:"parent,omitempty" json:"parent,omitempty"`
	Sub    string `bson:"sub,omitempty" json:"sub,omitempty"`
}

type MediaItem struct {
	URL string `bson:"url,omitempty" json:"url,omitempty"`
	Alt string `bson:"alt,omitempty" json:"alt,omitempty"`
}

// Product mirrors the storefront's product documents. Fields beyond name,
// basePrice and categoryInfo.sub are pass-through data for the clients.
type Product struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	Sku                string             `bson:"sku,omitempty" json:"sku,omitempty"`
	Description        string             `bson:"description,omitempty" json:"description,omitempty"`
	BasePrice          float64            `bson:"basePrice" json:"basePrice"`
	Stock              int32              `bson:"stock,omitempty" json:"stock"`
	Category           primitive.ObjectID `bson:"category,omitempty" json:"-"`
	CategoryInfo       *CategoryInfo      `bson:"categoryInfo,omitempty" json:"categoryInfo,omitempty"`
	Media              []MediaItem        `bson:"media,omitempty" json:"media,omitempty"`
	Tags               []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	IsActive           bool               `bson:"isActive,omitempty" json:"isActive"`
	Sizes              []string           `bson:"sizes,omitempty" json:"sizes,omitempty"`
	DiscountPercentage float64            `bson:"discountPercentage,omitempty" json:"discountPercentage,omitempty"`
	IsFeatured         bool               `bson:"isFeatured,omitempty" json:"isFeatured,omitempty"`
	Attributes         []bson.M           `bson:"attributes,omitempty" json:"attributes,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt          time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// CategorySub returns the category subtype or "" when absent.
func (p *Product) CategorySub() string {
	if p == nil || p.CategoryInfo == nil {
		return ""
	}
	return p.CategoryInfo.Sub
}
