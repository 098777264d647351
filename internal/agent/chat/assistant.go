package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"milaparfum/internal/agent/tools"
	"milaparfum/internal/dal/order"
	"milaparfum/internal/dal/product"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	productFetchLimit = 200
	orderSearchLimit  = 100

	getProductReply = "Here are the asked perfumes"
	recommendReply  = "Here are my picks for you"

	defaultCallTimeout = 30 * time.Second
)

// ProductStore is the bounded read the product tools need.
type ProductStore interface {
	FindByMaxPrice(ctx context.Context, maxPrice float64, limit int64) ([]*product.Product, error)
}

// OrderStore is the filtered read the tracking tool needs.
type OrderStore interface {
	Search(ctx context.Context, q order.Query, limit int64) ([]*order.Order, error)
}

// Assistant drives one chat turn: it sends the session history to the
// model, executes at most one tool call, optionally runs a follow-up model
// pass over the tool result, and resets the session once a tool fired.
type Assistant struct {
	model    model.ToolCallingChatModel
	products ProductStore
	orders   OrderStore
	sessions *SessionStore
	timeout  time.Duration

	toolInfos []*schema.ToolInfo

	toolMu    sync.RWMutex
	toolModel model.ToolCallingChatModel
	recModel  model.ToolCallingChatModel
}

func NewAssistant(cm model.ToolCallingChatModel, products ProductStore, orders OrderStore, timeout time.Duration) *Assistant {
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}
	return &Assistant{
		model:     cm,
		products:  products,
		orders:    orders,
		sessions:  NewSessionStore(),
		timeout:   timeout,
		toolInfos: tools.BuildToolInfos(),
	}
}

// Reply is the structured outcome of a turn. Every turn produces one, even
// on failure; the fields are simply empty then.
type Reply struct {
	Msg             string
	Products        []*product.Product
	Recommendations []Recommendation
}

// Respond runs one turn for the session. It never returns an error: model,
// store and parsing failures degrade to an empty reply and are logged.
func (a *Assistant) Respond(ctx context.Context, sessionID, userInput string) *Reply {
	log := logx.WithContext(ctx)
	reply := &Reply{}

	sess := a.sessions.Get(sessionID)
	sess.Append(schema.UserMessage(userInput))

	toolModel, err := a.ensureToolModel()
	if err != nil {
		log.Errorf("chat model unavailable: %v", err)
		return reply
	}

	messages := append([]*schema.Message{schema.SystemMessage(personaInstruction)}, sess.History()...)

	first, err := a.generate(ctx, toolModel, messages)
	if err != nil {
		log.Errorf("model call failed: %v", err)
		return reply
	}
	if first == nil || (len(first.ToolCalls) == 0 && strings.TrimSpace(first.Content) == "") {
		// Neither text nor a tool call: a no-op turn, not free text.
		log.Errorf("model returned neither text nor tool call")
		return reply
	}

	if len(first.ToolCalls) == 0 {
		// Free text: relay it and keep the history so slot-filling
		// continues next turn.
		sess.Append(first)
		reply.Msg = strings.TrimSpace(first.Content)
		return reply
	}

	call := first.ToolCalls[0]
	if !tools.IsRegistered(call.Function.Name) {
		log.Errorf("model requested unregistered tool %q", call.Function.Name)
		return reply
	}

	// The session is cleared after a tool branch regardless of outcome.
	defer sess.Reset()
	messages = append(messages, first)

	switch call.Function.Name {
	case tools.ToolGetProduct:
		a.handleGetProduct(ctx, log, call, reply)
	case tools.ToolTrackOrder:
		a.handleTrackOrder(ctx, log, toolModel, messages, call, reply)
	case tools.ToolRecommendProduct:
		a.handleRecommend(ctx, log, messages, call, reply)
	}
	return reply
}

// generate runs one model round-trip under the call deadline.
func (a *Assistant) generate(ctx context.Context, m model.BaseChatModel, msgs []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	cctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()
	return m.Generate(cctx, msgs, opts...)
}

func (a *Assistant) ensureToolModel() (model.ToolCallingChatModel, error) {
	return a.ensureBound(&a.toolModel, a.toolInfos)
}

// ensureRecommendModel binds only the structured submission tool, used on
// the recommendation follow-up pass.
func (a *Assistant) ensureRecommendModel() (model.ToolCallingChatModel, error) {
	return a.ensureBound(&a.recModel, []*schema.ToolInfo{tools.SubmitRecommendationsTool()})
}

func (a *Assistant) ensureBound(slot *model.ToolCallingChatModel, infos []*schema.ToolInfo) (model.ToolCallingChatModel, error) {
	if a.model == nil {
		return nil, fmt.Errorf("chat model unavailable")
	}

	a.toolMu.RLock()
	if *slot != nil {
		defer a.toolMu.RUnlock()
		return *slot, nil
	}
	a.toolMu.RUnlock()

	a.toolMu.Lock()
	defer a.toolMu.Unlock()

	if *slot != nil {
		return *slot, nil
	}

	bound, err := a.model.WithTools(infos)
	if err != nil {
		return nil, err
	}
	*slot = bound
	return bound, nil
}

// Session exposes the session store for the HTTP layer's bookkeeping.
func (a *Assistant) Session(id string) *Session {
	return a.sessions.Get(id)
}
