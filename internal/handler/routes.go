package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"coindash-api/internal/svc"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/assets",
				Handler: AssetsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/candles/:symbol",
				Handler: CandlesHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/metrics/:symbol",
				Handler: MetricsHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/sentiment",
				Handler: SentimentHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/dashboard/:symbol",
				Handler: DashboardHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/refresh",
				Handler: RefreshHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/reset",
				Handler: ResetHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api/v1"),
	)
}
