package logic

import (
	"context"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"coindash-api/internal/svc"
	"coindash-api/internal/types"
	"coindash-api/pkg/market"
)

type DashboardLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDashboardLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DashboardLogic {
	return &DashboardLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Dashboard assembles the full page payload in one round-trip: candles,
// KPI metrics derived from the same series, and a fresh sentiment
// reading.
func (l *DashboardLogic) Dashboard(req *types.DashboardRequest) (*types.DashboardResponse, error) {
	interval, err := market.ParseInterval(req.Interval)
	if err != nil {
		return nil, err
	}

	result := l.svcCtx.Fetcher.Fetch(l.ctx, req.Symbol, interval)
	sentiment := l.svcCtx.Sentiment.Score()

	return &types.DashboardResponse{
		Symbol:    req.Symbol,
		Interval:  string(interval),
		Source:    result.Source,
		Live:      result.Live,
		FetchedAt: time.Now().Unix(),
		Candles:   candleViews(result.Series),
		Metrics:   metricsResponse(req.Symbol, interval, result),
		Sentiment: types.SentimentResponse{
			Score:     sentiment.Score,
			Label:     string(sentiment.Label),
			Headlines: sentiment.Headlines,
		},
	}, nil
}
