package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"coindash-api/internal/logic"
	"coindash-api/internal/svc"
)

func AssetsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewAssetsLogic(r.Context(), svcCtx)
		resp, err := l.Assets()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
