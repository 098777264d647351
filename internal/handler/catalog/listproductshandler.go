package catalog

import (
	"net/http"

	"milaparfum/internal/logic/catalog"
	"milaparfum/internal/svc"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListProductsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := catalog.NewListProductsLogic(r.Context(), svcCtx)
		resp, err := l.ListProducts()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
