package chat

import (
	"net/http"
	"strings"

	logic "milaparfum/internal/logic/chat"
	"milaparfum/internal/snowflake"
	"milaparfum/internal/svc"
	"milaparfum/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

// HeaderSessionID carries the conversation key. A client without one gets a
// freshly minted id echoed back on the response.
const HeaderSessionID = "X-Session-Id"

func ChatHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ChatRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		sessionID := strings.TrimSpace(r.Header.Get(HeaderSessionID))
		if sessionID == "" {
			sessionID = snowflake.NextString()
		}
		w.Header().Set(HeaderSessionID, sessionID)

		l := logic.NewChatLogic(r.Context(), svcCtx)
		resp, err := l.Chat(&req, sessionID)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
