package handler

import (
	"net/http"

	"milaparfum/internal/handler/catalog"
	"milaparfum/internal/handler/chat"
	"milaparfum/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/",
				Handler: PingHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/chat",
				Handler: chat.ChatHandler(serverCtx),
			},
		},
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/product",
				Handler: catalog.ListProductsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/orders",
				Handler: catalog.ListOrdersHandler(serverCtx),
			},
		},
	)
}
