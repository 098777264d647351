package handler

import (
	"net/http"

	"milaparfum/internal/svc"
	"milaparfum/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

func PingHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.OkJsonCtx(r.Context(), w, &types.PingResponse{
			Message: "E-commerce API running",
		})
	}
}
