package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"coindash-api/internal/svc"
	"coindash-api/internal/types"
	"coindash-api/pkg/market"
)

type AssetsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewAssetsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *AssetsLogic {
	return &AssetsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *AssetsLogic) Assets() (*types.AssetsResponse, error) {
	assets := make([]types.AssetView, 0, len(market.SupportedAssets))
	for _, asset := range market.SupportedAssets {
		assets = append(assets, types.AssetView{Name: asset.Name, Symbol: asset.Symbol})
	}
	intervals := make([]string, 0, len(market.SupportedIntervals))
	for _, interval := range market.SupportedIntervals {
		intervals = append(intervals, string(interval))
	}
	return &types.AssetsResponse{Assets: assets, Intervals: intervals}, nil
}
