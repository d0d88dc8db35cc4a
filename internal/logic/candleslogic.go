package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"coindash-api/internal/svc"
	"coindash-api/internal/types"
	"coindash-api/pkg/market"
)

type CandlesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewCandlesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CandlesLogic {
	return &CandlesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CandlesLogic) Candles(req *types.CandlesRequest) (*types.CandlesResponse, error) {
	interval, err := market.ParseInterval(req.Interval)
	if err != nil {
		return nil, err
	}

	result := l.svcCtx.Fetcher.Fetch(l.ctx, req.Symbol, interval)
	return &types.CandlesResponse{
		Symbol:   req.Symbol,
		Interval: string(interval),
		Source:   result.Source,
		Live:     result.Live,
		Candles:  candleViews(result.Series),
	}, nil
}

func candleViews(series market.Series) []types.CandleView {
	views := make([]types.CandleView, 0, len(series))
	for _, candle := range series {
		views = append(views, types.CandleView{
			Time:   candle.Time.Unix(),
			Open:   candle.Open,
			High:   candle.High,
			Low:    candle.Low,
			Close:  candle.Close,
			Volume: candle.Volume,
		})
	}
	return views
}
