package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"coindash-api/internal/svc"
	"coindash-api/internal/types"
	"coindash-api/pkg/market"
)

type MetricsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewMetricsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MetricsLogic {
	return &MetricsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *MetricsLogic) Metrics(req *types.MetricsRequest) (*types.MetricsResponse, error) {
	interval, err := market.ParseInterval(req.Interval)
	if err != nil {
		return nil, err
	}

	result := l.svcCtx.Fetcher.Fetch(l.ctx, req.Symbol, interval)
	resp := metricsResponse(req.Symbol, interval, result)
	return &resp, nil
}

func metricsResponse(symbol string, interval market.Interval, result market.FetchResult) types.MetricsResponse {
	m := market.ComputeMetrics(result.Series)
	return types.MetricsResponse{
		Symbol:        symbol,
		Interval:      string(interval),
		Source:        result.Source,
		Live:          result.Live,
		CurrentPrice:  m.CurrentPrice,
		PreviousPrice: m.PreviousPrice,
		ChangeAbs:     m.ChangeAbs,
		ChangePct:     m.ChangePct,
		High24:        m.High24,
		Low24:         m.Low24,
	}
}
