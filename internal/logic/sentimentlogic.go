package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"coindash-api/internal/svc"
	"coindash-api/internal/types"
)

type SentimentLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSentimentLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SentimentLogic {
	return &SentimentLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Sentiment returns a fresh reading on every call; nothing is cached.
func (l *SentimentLogic) Sentiment() (*types.SentimentResponse, error) {
	result := l.svcCtx.Sentiment.Score()
	return &types.SentimentResponse{
		Score:     result.Score,
		Label:     string(result.Label),
		Headlines: result.Headlines,
	}, nil
}
