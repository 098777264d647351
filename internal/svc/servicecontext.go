package svc

import (
	"context"
	"time"

	"milaparfum/internal/agent/chat"
	"milaparfum/internal/config"
	"milaparfum/internal/dal/order"
	"milaparfum/internal/dal/product"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
	"github.com/zeromicro/go-zero/core/logx"
)

type ServiceContext struct {
	Config config.Config

	ProductsModel product.ProductsModel
	OrdersModel   order.OrdersModel
	Assistant     *chat.Assistant
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	sc := &ServiceContext{
		Config:        c,
		ProductsModel: product.NewProductsModel(c.Mongo.Uri, c.Mongo.Database, "products"),
		OrdersModel:   order.NewOrdersModel(c.Mongo.Uri, c.Mongo.Database, "orders"),
	}

	// A failed model init leaves the catalog endpoints up; chat degrades to
	// empty replies until a restart with working credentials.
	var cm model.ToolCallingChatModel
	arkModel, err := ark.NewChatModel(context.Background(), &ark.ChatModelConfig{
		BaseURL: c.ChatModel.BaseUrl,
		APIKey:  c.ChatModel.APIKey,
		Model:   c.ChatModel.Model,
	})
	if err != nil {
		logx.Errorw("init ark chat model failed", logx.Field("err", err))
	} else {
		cm = arkModel
		logx.Infow("ark chat model initialized")
	}

	sc.Assistant = chat.NewAssistant(cm, sc.ProductsModel, sc.OrdersModel,
		time.Duration(c.ChatModel.TimeoutSec)*time.Second)

	return sc
}
