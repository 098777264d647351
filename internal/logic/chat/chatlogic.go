package chat

import (
	"context"
	"strings"

	"milaparfum/internal/consts/errno"
	"milaparfum/internal/logic/helper"
	"milaparfum/internal/svc"
	"milaparfum/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type ChatLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewChatLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ChatLogic {
	return &ChatLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Chat runs one conversation turn. Model and store failures never surface
// as errors here; the assistant degrades them to an empty reply.
func (l *ChatLogic) Chat(req *types.ChatRequest, sessionID string) (*types.ChatResponse, error) {
	if req == nil || strings.TrimSpace(req.UserInput) == "" {
		return nil, errors.New(int(errno.InvalidParam), "empty user_input")
	}

	reply := l.svcCtx.Assistant.Respond(l.ctx, sessionID, strings.TrimSpace(req.UserInput))

	return helper.ToChatResponse(reply), nil
}
