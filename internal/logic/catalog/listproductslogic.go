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

// listingLimit caps the unfiltered catalog reads for non-chat clients.
const listingLimit = 100

type ListProductsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListProductsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListProductsLogic {
	return &ListProductsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListProductsLogic) ListProducts() ([]types.Product, error) {
	products, err := l.svcCtx.ProductsModel.FindAll(l.ctx, listingLimit)
	if err != nil {
		l.Logger.Error("logic: list products failed: ", err)
		return nil, errors.New(int(errno.InternalError), "list products failed")
	}

	resp := make([]types.Product, 0, len(products))
	for _, p := range products {
		resp = append(resp, helper.ToProduct(p))
	}
	return resp, nil
}
