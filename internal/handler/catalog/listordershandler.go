package catalog

import (
	"net/http"

	"milaparfum/internal/logic/catalog"
	"milaparfum/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListOrdersHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := catalog.NewListOrdersLogic(r.Context(), svcCtx)
		resp, err := l.ListOrders()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
