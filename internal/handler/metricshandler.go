package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"coindash-api/internal/logic"
	"coindash-api/internal/svc"
	"coindash-api/internal/types"
)

func MetricsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.MetricsRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewMetricsLogic(r.Context(), svcCtx)
		resp, err := l.Metrics(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
