package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"milaparfum/internal/agent/search"
	"milaparfum/internal/agent/tools"
	"milaparfum/internal/dal/order"
	"milaparfum/internal/dal/product"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

// handleGetProduct resolves the scent/price filter and answers with a fixed
// line; no second model pass runs on this branch.
func (a *Assistant) handleGetProduct(ctx context.Context, log logx.Logger, call schema.ToolCall, reply *Reply) {
	matched, err := a.filterFromCall(ctx, call)
	if err != nil {
		log.Errorf("get_product failed: %v", err)
		return
	}
	reply.Products = matched
	reply.Msg = getProductReply
}

// handleTrackOrder looks up the order and lets the model phrase the result.
// A failed follow-up pass leaves the message empty.
func (a *Assistant) handleTrackOrder(ctx context.Context, log logx.Logger, toolModel model.ToolCallingChatModel, messages []*schema.Message, call schema.ToolCall, reply *Reply) {
	args, err := tools.ParseArgs(call.Function.Arguments)
	if err != nil {
		log.Errorf("track_order failed: %v", err)
		return
	}
	q := order.Query{
		OrderID:      args.String("order_id"),
		ProductName:  args.String("product_name"),
		CustomerName: args.String("name"),
	}

	orders, err := a.orders.Search(ctx, q, orderSearchLimit)
	if err != nil {
		log.Errorf("track_order failed: %v", err)
		return
	}

	payload, err := json.Marshal(orderPayloadFrom(orders))
	if err != nil {
		log.Errorf("track_order failed: %v", err)
		return
	}
	messages = append(messages, schema.ToolMessage(string(payload), toolCallID(call), schema.WithToolName(tools.ToolTrackOrder)))

	second, err := a.generate(ctx, toolModel, messages)
	if err != nil {
		log.Errorf("track_order follow-up failed: %v", err)
		return
	}
	if second != nil {
		reply.Msg = strings.TrimSpace(second.Content)
	}
}

// handleRecommend runs the filter, then a second pass over the shortlist on
// a model bound to the submission tool. Entries come from the tool call
// arguments, or failing that from JSON scraped out of the reply text, and
// only entries resolvable against the shortlist survive.
func (a *Assistant) handleRecommend(ctx context.Context, log logx.Logger, messages []*schema.Message, call schema.ToolCall, reply *Reply) {
	matched, err := a.filterFromCall(ctx, call)
	if err != nil {
		log.Errorf("recommend_product failed: %v", err)
		return
	}

	payload, err := json.Marshal(productPayloadFrom(matched))
	if err != nil {
		log.Errorf("recommend_product failed: %v", err)
		return
	}
	messages = append(messages,
		schema.ToolMessage(string(payload), toolCallID(call), schema.WithToolName(tools.ToolRecommendProduct)),
		schema.UserMessage(recommendInstruction),
	)

	recModel, err := a.ensureRecommendModel()
	if err != nil {
		log.Errorf("recommend model unavailable: %v", err)
		return
	}
	second, err := a.generate(ctx, recModel, messages, model.WithToolChoice(schema.ToolChoiceForced))
	if err != nil {
		log.Errorf("recommend follow-up failed: %v", err)
		return
	}
	if second == nil {
		return
	}

	entries := submittedRecommendations(second)
	if len(entries) == 0 {
		entries = ExtractRecommendations(second.Content)
	}

	reply.Products, reply.Recommendations = matchRecommendations(matched, entries)
	reply.Msg = strings.TrimSpace(second.Content)
	if reply.Msg == "" && len(reply.Recommendations) > 0 {
		reply.Msg = recommendReply
	}
}

// filterFromCall parses the shared scent_type/max_price arguments and runs
// the price query plus the scent filter.
func (a *Assistant) filterFromCall(ctx context.Context, call schema.ToolCall) ([]*product.Product, error) {
	args, err := tools.ParseArgs(call.Function.Arguments)
	if err != nil {
		return nil, err
	}
	maxPrice, ok := args.Float("max_price")
	if !ok {
		return nil, fmt.Errorf("max_price missing in %s arguments", call.Function.Name)
	}

	candidates, err := a.products.FindByMaxPrice(ctx, maxPrice, productFetchLimit)
	if err != nil {
		return nil, fmt.Errorf("load products failed: %w", err)
	}
	return search.FilterByScent(candidates, args.String("scent_type")), nil
}

// matchRecommendations joins the model's picks back onto the shortlist, by
// product id first and exact name second, dropping picks that resolve to
// nothing and deduplicating products.
func matchRecommendations(shortlist []*product.Product, entries []Recommendation) ([]*product.Product, []Recommendation) {
	byID := make(map[string]*product.Product, len(shortlist))
	byName := make(map[string]*product.Product, len(shortlist))
	for _, p := range shortlist {
		byID[p.ID.Hex()] = p
		byName[p.Name] = p
	}

	seen := make(map[*product.Product]bool, len(entries))
	var products []*product.Product
	var kept []Recommendation
	for _, e := range entries {
		var p *product.Product
		if e.ProductID != "" {
			p = byID[e.ProductID]
		}
		if p == nil {
			p = byName[e.ProductName]
		}
		if p == nil || seen[p] {
			continue
		}
		seen[p] = true
		products = append(products, p)
		kept = append(kept, e)
	}
	return products, kept
}

// Slim shapes fed back to the model; full documents would blow the context
// for no gain.

type productSummary struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	BasePrice float64 `json:"base_price"`
	Category  string  `json:"category,omitempty"`
}

type productToolResult struct {
	Products []productSummary `json:"products"`
}

func productPayloadFrom(products []*product.Product) productToolResult {
	out := productToolResult{Products: make([]productSummary, 0, len(products))}
	for _, p := range products {
		out.Products = append(out.Products, productSummary{
			ProductID: p.ID.Hex(),
			Name:      p.Name,
			BasePrice: p.BasePrice,
			Category:  p.CategorySub(),
		})
	}
	return out
}

type orderLineSummary struct {
	Name     string  `json:"name"`
	Quantity int32   `json:"quantity,omitempty"`
	Price    float64 `json:"price,omitempty"`
}

type orderSummary struct {
	OrderNumber string             `json:"order_number"`
	Status      string             `json:"status"`
	Customer    string             `json:"customer,omitempty"`
	Items       []orderLineSummary `json:"items"`
	GrandTotal  float64            `json:"grand_total,omitempty"`
}

type orderToolResult struct {
	Orders []orderSummary `json:"orders"`
}

func orderPayloadFrom(orders []*order.Order) orderToolResult {
	out := orderToolResult{Orders: make([]orderSummary, 0, len(orders))}
	for _, o := range orders {
		s := orderSummary{
			OrderNumber: o.OrderNumber,
			Status:      o.Status,
			Customer:    o.CustomerName(),
			Items:       make([]orderLineSummary, 0, len(o.Items)),
		}
		if o.Totals != nil {
			s.GrandTotal = o.Totals.GrandTotal
		}
		for _, it := range o.Items {
			s.Items = append(s.Items, orderLineSummary{Name: it.Name, Quantity: it.Quantity, Price: it.Price})
		}
		out.Orders = append(out.Orders, s)
	}
	return out
}

// toolCallID keeps tool messages joinable even when the provider omitted
// the call id.
func toolCallID(call schema.ToolCall) string {
	if call.ID != "" {
		return call.ID
	}
	return fmt.Sprintf("call-%d", time.Now().UnixNano())
}
