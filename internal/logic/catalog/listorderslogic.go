package catalog

import (
	"context"

	"milaparfum/internal/consts/errno"
	"milaparfum/internal/logic/helper"
	"milaparfum/internal/svc"
	"milaparfum/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type ListOrdersLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListOrdersLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListOrdersLogic {
	return &ListOrdersLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListOrdersLogic) ListOrders() ([]types.Order, error) {
	orders, err := l.svcCtx.OrdersModel.FindAll(l.ctx, listingLimit)
	if err != nil {
		l.Logger.Error("logic: list orders failed: ", err)
		return nil, errors.New(int(errno.InternalError), "list orders failed")
	}

	resp := make([]types.Order, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, helper.ToOrder(o))
	}
	return resp, nil
}
