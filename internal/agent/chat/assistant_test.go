package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"milaparfum/internal/agent/tools"
	"milaparfum/internal/dal/order"
	"milaparfum/internal/dal/product"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// scriptedModel replays canned replies in order; call i gets replies[i] or
// errs[i]. It records the message lists it was invoked with.
type scriptedModel struct {
	replies []*schema.Message
	errs    []error
	calls   [][]*schema.Message
	idx     int
}

func (m *scriptedModel) Generate(_ context.Context, msgs []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	i := m.idx
	m.idx++
	m.calls = append(m.calls, msgs)
	if i < len(m.errs) && m.errs[i] != nil {
		return nil, m.errs[i]
	}
	if i < len(m.replies) {
		return m.replies[i], nil
	}
	return nil, fmt.Errorf("unexpected model call %d", i)
}

func (m *scriptedModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not scripted")
}

func (m *scriptedModel) WithTools(_ []*schema.ToolInfo) (model.ToolCallingChatModel, error) {
	return m, nil
}

type fakeProducts struct {
	products  []*product.Product
	err       error
	lastLimit int64
}

func (f *fakeProducts) FindByMaxPrice(_ context.Context, maxPrice float64, limit int64) ([]*product.Product, error) {
	f.lastLimit = limit
	if f.err != nil {
		return nil, f.err
	}
	var out []*product.Product
	for _, p := range f.products {
		if p.BasePrice <= maxPrice {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeOrders struct {
	orders    []*order.Order
	err       error
	lastQuery order.Query
	searched  bool
}

func (f *fakeOrders) Search(_ context.Context, q order.Query, _ int64) ([]*order.Order, error) {
	f.lastQuery = q
	f.searched = true
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := order.BuildFilter(q); !ok {
		return nil, nil
	}
	return f.orders, nil
}

func mkProduct(name, sub string, price float64) *product.Product {
	return &product.Product{
		ID:           primitive.NewObjectID(),
		Name:         name,
		BasePrice:    price,
		CategoryInfo: &product.CategoryInfo{Parent: "Perfume", Sub: sub},
	}
}

func toolCallMsg(name, args string) *schema.Message {
	return schema.AssistantMessage("", []schema.ToolCall{{
		ID:       "call-1",
		Function: schema.FunctionCall{Name: name, Arguments: args},
	}})
}

func newTestAssistant(m model.ToolCallingChatModel, products *fakeProducts, orders *fakeOrders) *Assistant {
	return NewAssistant(m, products, orders, time.Second)
}

func TestRespondFreeTextKeepsHistory(t *testing.T) {
	m := &scriptedModel{replies: []*schema.Message{
		schema.AssistantMessage("What budget do you have in mind?", nil),
	}}
	a := newTestAssistant(m, &fakeProducts{}, &fakeOrders{})

	reply := a.Respond(context.Background(), "s1", "I want men's perfume")

	require.NotNil(t, reply)
	assert.Equal(t, "What budget do you have in mind?", reply.Msg)
	assert.Empty(t, reply.Products)
	assert.Empty(t, reply.Recommendations)
	assert.Equal(t, 2, a.Session("s1").Len())
}

func TestRespondSessionsAreIndependent(t *testing.T) {
	m := &scriptedModel{replies: []*schema.Message{
		schema.AssistantMessage("For men, women, or unisex?", nil),
		schema.AssistantMessage("For men, women, or unisex?", nil),
	}}
	a := newTestAssistant(m, &fakeProducts{}, &fakeOrders{})

	a.Respond(context.Background(), "s1", "hello")
	a.Respond(context.Background(), "s2", "hi there")

	assert.Equal(t, 2, a.Session("s1").Len())
	assert.Equal(t, 2, a.Session("s2").Len())

	// The second session's model call must not see the first session's turns.
	require.Len(t, m.calls, 2)
	for _, msg := range m.calls[1] {
		assert.NotContains(t, msg.Content, "hello")
	}
}

func TestRespondGetProduct(t *testing.T) {
	cheap := mkProduct("Noir Homme", "Aromatique Gentlemen", 1200)
	wrongScent := mkProduct("Rose Petale", "Essencia Femme", 900)
	tooDear := mkProduct("Oud Royal", "Aromatique Gentlemen", 2400)

	m := &scriptedModel{replies: []*schema.Message{
		toolCallMsg(tools.ToolGetProduct, `{"scent_type":"men","max_price":1500}`),
	}}
	products := &fakeProducts{products: []*product.Product{cheap, wrongScent, tooDear}}
	a := newTestAssistant(m, products, &fakeOrders{})

	reply := a.Respond(context.Background(), "s1", "1500")

	require.Len(t, reply.Products, 1)
	assert.Equal(t, "Noir Homme", reply.Products[0].Name)
	assert.Equal(t, "Here are the asked perfumes", reply.Msg)
	assert.Empty(t, reply.Recommendations)
	assert.Equal(t, int64(productFetchLimit), products.lastLimit)
	assert.Equal(t, 0, a.Session("s1").Len(), "tool branch must clear the session")
	assert.Len(t, m.calls, 1, "no follow-up model pass on this branch")
}

func TestRespondGetProductStoreFailure(t *testing.T) {
	m := &scriptedModel{replies: []*schema.Message{
		toolCallMsg(tools.ToolGetProduct, `{"scent_type":"men","max_price":1500}`),
	}}
	a := newTestAssistant(m, &fakeProducts{err: errors.New("mongo down")}, &fakeOrders{})

	reply := a.Respond(context.Background(), "s1", "1500")

	assert.Empty(t, reply.Msg)
	assert.Empty(t, reply.Products)
	assert.Equal(t, 0, a.Session("s1").Len())
}

func TestRespondGetProductCoercesStringPrice(t *testing.T) {
	p := mkProduct("Noir Homme", "Aromatique Gentlemen", 1200)
	m := &scriptedModel{replies: []*schema.Message{
		toolCallMsg(tools.ToolGetProduct, `{"scent_type":"men","max_price":"1500"}`),
	}}
	a := newTestAssistant(m, &fakeProducts{products: []*product.Product{p}}, &fakeOrders{})

	reply := a.Respond(context.Background(), "s1", "1500")

	require.Len(t, reply.Products, 1)
	assert.Equal(t, "Noir Homme", reply.Products[0].Name)
}

func TestRespondTrackOrder(t *testing.T) {
	ord := &order.Order{
		OrderNumber:     "ORD-100",
		Status:          "shipped",
		ShippingAddress: &order.Address{FullName: "Asha Nair"},
		Items:           []order.Item{{Name: "Noir Homme", Quantity: 1, Price: 1200}},
	}
	m := &scriptedModel{replies: []*schema.Message{
		toolCallMsg(tools.ToolTrackOrder, `{"order_id":"ORD-100"}`),
		schema.AssistantMessage("Your order ORD-100 with Noir Homme has shipped.", nil),
	}}
	orders := &fakeOrders{orders: []*order.Order{ord}}
	a := newTestAssistant(m, &fakeProducts{}, orders)

	reply := a.Respond(context.Background(), "s1", "where is ORD-100?")

	assert.Equal(t, "Your order ORD-100 with Noir Homme has shipped.", reply.Msg)
	assert.Empty(t, reply.Products)
	assert.Equal(t, order.Query{OrderID: "ORD-100"}, orders.lastQuery)
	assert.Equal(t, 0, a.Session("s1").Len())

	// The follow-up pass must see the lookup result as a tool message.
	require.Len(t, m.calls, 2)
	last := m.calls[1][len(m.calls[1])-1]
	assert.Equal(t, schema.Tool, last.Role)
	assert.Contains(t, last.Content, "ORD-100")
}

func TestRespondTrackOrderUnresolvable(t *testing.T) {
	m := &scriptedModel{replies: []*schema.Message{
		toolCallMsg(tools.ToolTrackOrder, `{"name":"Asha Nair"}`),
		schema.AssistantMessage("I could not find that order.", nil),
	}}
	orders := &fakeOrders{orders: []*order.Order{{OrderNumber: "ORD-100"}}}
	a := newTestAssistant(m, &fakeProducts{}, orders)

	reply := a.Respond(context.Background(), "s1", "track my order")

	assert.Equal(t, "I could not find that order.", reply.Msg)
	require.Len(t, m.calls, 2)
	last := m.calls[1][len(m.calls[1])-1]
	assert.NotContains(t, last.Content, "ORD-100", "unresolvable query must not surface orders")
}

func TestRespondTrackOrderFollowUpFailure(t *testing.T) {
	m := &scriptedModel{
		replies: []*schema.Message{
			toolCallMsg(tools.ToolTrackOrder, `{"order_id":"ORD-100"}`),
			nil,
		},
		errs: []error{nil, errors.New("timeout")},
	}
	a := newTestAssistant(m, &fakeProducts{}, &fakeOrders{})

	reply := a.Respond(context.Background(), "s1", "where is my order?")

	assert.Empty(t, reply.Msg)
	assert.Equal(t, 0, a.Session("s1").Len(), "session clears even when the branch fails")
}

func TestRespondRecommendViaSubmitTool(t *testing.T) {
	prodA := mkProduct("Amber Homme", "Aromatique Gentlemen", 900)
	prodB := mkProduct("Noir Homme", "Aromatique Gentlemen", 1200)

	submitArgs, err := json.Marshal(map[string]any{
		"recommendations": []map[string]string{
			{"product_id": prodB.ID.Hex(), "product_name": "Noir Homme", "reason": "bold evening scent"},
			{"product_name": "Zephyr", "reason": "no such product"},
		},
	})
	require.NoError(t, err)

	m := &scriptedModel{replies: []*schema.Message{
		toolCallMsg(tools.ToolRecommendProduct, `{"scent_type":"men","max_price":1500}`),
		toolCallMsg(tools.ToolSubmitRecommendations, string(submitArgs)),
	}}
	a := newTestAssistant(m, &fakeProducts{products: []*product.Product{prodA, prodB}}, &fakeOrders{})

	reply := a.Respond(context.Background(), "s1", "suggest something for men under 1500")

	require.Len(t, reply.Products, 1)
	assert.Equal(t, "Noir Homme", reply.Products[0].Name)
	require.Len(t, reply.Recommendations, 1)
	assert.Equal(t, "bold evening scent", reply.Recommendations[0].Reason)
	assert.Equal(t, "Here are my picks for you", reply.Msg)
	assert.Equal(t, 0, a.Session("s1").Len())
}

func TestRespondRecommendFreeTextFallback(t *testing.T) {
	prodB := mkProduct("Noir Homme", "Aromatique Gentlemen", 1200)

	content := `Noir Homme suits you best.
{"recommendations": [{"product_name": "Noir Homme", "reason": "bold evening scent"}]}`
	m := &scriptedModel{replies: []*schema.Message{
		toolCallMsg(tools.ToolRecommendProduct, `{"scent_type":"men","max_price":1500}`),
		schema.AssistantMessage(content, nil),
	}}
	a := newTestAssistant(m, &fakeProducts{products: []*product.Product{prodB}}, &fakeOrders{})

	reply := a.Respond(context.Background(), "s1", "any picks?")

	require.Len(t, reply.Products, 1)
	assert.Equal(t, "Noir Homme", reply.Products[0].Name)
	require.Len(t, reply.Recommendations, 1)
	assert.Contains(t, reply.Msg, "Noir Homme suits you best.")
}

func TestRespondRecommendNoParseableOutput(t *testing.T) {
	prodB := mkProduct("Noir Homme", "Aromatique Gentlemen", 1200)

	m := &scriptedModel{replies: []*schema.Message{
		toolCallMsg(tools.ToolRecommendProduct, `{"scent_type":"men","max_price":1500}`),
		schema.AssistantMessage("I would go with Noir Homme.", nil),
	}}
	a := newTestAssistant(m, &fakeProducts{products: []*product.Product{prodB}}, &fakeOrders{})

	reply := a.Respond(context.Background(), "s1", "any picks?")

	assert.Empty(t, reply.Products)
	assert.Empty(t, reply.Recommendations)
	assert.Equal(t, "I would go with Noir Homme.", reply.Msg)
}

func TestRespondModelFailure(t *testing.T) {
	m := &scriptedModel{errs: []error{errors.New("connection refused")}}
	a := newTestAssistant(m, &fakeProducts{}, &fakeOrders{})

	reply := a.Respond(context.Background(), "s1", "hello")

	assert.Empty(t, reply.Msg)
	assert.Empty(t, reply.Products)
	assert.Empty(t, reply.Recommendations)
	assert.Equal(t, 1, a.Session("s1").Len(), "failed turn keeps the user message")
}

func TestRespondEmptyModelOutput(t *testing.T) {
	m := &scriptedModel{replies: []*schema.Message{schema.AssistantMessage("   ", nil)}}
	a := newTestAssistant(m, &fakeProducts{}, &fakeOrders{})

	reply := a.Respond(context.Background(), "s1", "hello")

	assert.Empty(t, reply.Msg)
	assert.Equal(t, 1, a.Session("s1").Len())
}

func TestRespondUnregisteredTool(t *testing.T) {
	m := &scriptedModel{replies: []*schema.Message{
		toolCallMsg("drop_tables", `{}`),
	}}
	a := newTestAssistant(m, &fakeProducts{}, &fakeOrders{})

	reply := a.Respond(context.Background(), "s1", "hello")

	assert.Empty(t, reply.Msg)
	assert.Equal(t, 1, a.Session("s1").Len(), "unknown tool is a no-op, not a reset")
}

func TestRespondNilModel(t *testing.T) {
	a := newTestAssistant(nil, &fakeProducts{}, &fakeOrders{})

	reply := a.Respond(context.Background(), "s1", "hello")

	assert.Empty(t, reply.Msg)
	assert.Empty(t, reply.Products)
	assert.Empty(t, reply.Recommendations)
}

func TestMatchRecommendationsDedupes(t *testing.T) {
	p := mkProduct("Noir Homme", "Aromatique Gentlemen", 1200)
	entries := []Recommendation{
		{ProductID: p.ID.Hex(), ProductName: "Noir Homme", Reason: "first"},
		{ProductName: "Noir Homme", Reason: "again"},
	}

	products, kept := matchRecommendations([]*product.Product{p}, entries)

	require.Len(t, products, 1)
	require.Len(t, kept, 1)
	assert.Equal(t, "first", kept[0].Reason)
}
