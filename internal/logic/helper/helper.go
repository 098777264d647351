package helper

import (
	"time"

	"milaparfum/internal/agent/chat"
	"milaparfum/internal/dal/order"
	"milaparfum/internal/dal/product"
	"milaparfum/internal/types"
)

// ToChatResponse converts a turn outcome into the wire shape. The slices
// are always non-nil so clients see [] rather than null.
func ToChatResponse(reply *chat.Reply) *types.ChatResponse {
	resp := &types.ChatResponse{
		ProductData:        []types.Product{},
		RecommendationData: []types.Recommendation{},
	}
	if reply == nil {
		return resp
	}

	resp.Msg = reply.Msg
	for _, p := range reply.Products {
		resp.ProductData = append(resp.ProductData, ToProduct(p))
	}
	for _, rec := range reply.Recommendations {
		resp.RecommendationData = append(resp.RecommendationData, types.Recommendation{
			ProductId:   rec.ProductID,
			ProductName: rec.ProductName,
			Reason:      rec.Reason,
		})
	}
	return resp
}

func ToProduct(src *product.Product) types.Product {
	if src == nil {
		return types.Product{}
	}

	dst := types.Product{
		ProductId:          src.ID.Hex(),
		Name:               src.Name,
		Sku:                src.Sku,
		Description:        src.Description,
		BasePrice:          src.BasePrice,
		Stock:              src.Stock,
		IsActive:           src.IsActive,
		DiscountPercentage: src.DiscountPercentage,
		IsFeatured:         src.IsFeatured,
		CreatedAt:          formatTime(src.CreatedAt),
		UpdatedAt:          formatTime(src.UpdatedAt),
	}

	if src.CategoryInfo != nil {
		dst.CategoryInfo = &types.CategoryInfo{
			Parent: src.CategoryInfo.Parent,
			Sub:    src.CategoryInfo.Sub,
		}
	}
	for _, m := range src.Media {
		dst.Media = append(dst.Media, types.MediaItem{Url: m.URL, Alt: m.Alt})
	}
	if len(src.Tags) > 0 {
		dst.Tags = append([]string(nil), src.Tags...)
	}
	if len(src.Sizes) > 0 {
		dst.Sizes = append([]string(nil), src.Sizes...)
	}

	return dst
}

func ToOrder(src *order.Order) types.Order {
	if src == nil {
		return types.Order{}
	}

	dst := types.Order{
		OrderId:      src.ID.Hex(),
		OrderNumber:  src.OrderNumber,
		Status:       src.Status,
		CustomerName: src.CustomerName(),
		Items:        make([]types.OrderItem, 0, len(src.Items)),
		CreatedAt:    formatTime(src.CreatedAt),
	}
	if src.Totals != nil {
		dst.GrandTotal = src.Totals.GrandTotal
	}
	for _, it := range src.Items {
		item := types.OrderItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
		}
		if !it.Product.IsZero() {
			item.ProductId = it.Product.Hex()
		}
		dst.Items = append(dst.Items, item)
	}

	return dst
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
