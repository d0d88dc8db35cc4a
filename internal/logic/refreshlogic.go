package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"coindash-api/internal/svc"
	"coindash-api/internal/types"
	"coindash-api/pkg/market"
)

type RefreshLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRefreshLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RefreshLogic {
	return &RefreshLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Refresh is the dashboard's manual refresh button. With a symbol it
// invalidates and re-fetches that one series; without, it drops every
// cached series and lets the next page load re-fetch lazily.
func (l *RefreshLogic) Refresh(req *types.RefreshRequest) (*types.RefreshResponse, error) {
	if req.Symbol == "" {
		l.svcCtx.Store.InvalidateAll(l.ctx)
		return &types.RefreshResponse{Refreshed: true}, nil
	}

	interval, err := market.ParseInterval(req.Interval)
	if err != nil {
		return nil, err
	}

	l.svcCtx.Store.Invalidate(l.ctx, req.Symbol, interval)
	result := l.svcCtx.Fetcher.FetchFresh(l.ctx, req.Symbol, interval)
	return &types.RefreshResponse{
		Refreshed: true,
		Symbol:    req.Symbol,
		Interval:  string(interval),
		Source:    result.Source,
		Live:      result.Live,
	}, nil
}

// Reset is the Clear All control: every cached series is dropped.
func (l *RefreshLogic) Reset() (*types.ResetResponse, error) {
	l.svcCtx.Store.InvalidateAll(l.ctx)
	return &types.ResetResponse{Cleared: true}, nil
}
