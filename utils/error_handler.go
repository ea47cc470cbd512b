package utils

import (
	"net/http"

	"educator_ai/logger"
)

// RecoverJSON 捕获处理函数中的panic，返回JSON格式的500响应
func RecoverJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Error("Error in request handler", "path", r.URL.Path, "panic", rec)
				WriteServerError(w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
