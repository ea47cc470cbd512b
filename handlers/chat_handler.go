package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"educator_ai/config"
	_ "educator_ai/docs" // 导入 swagger 文档
	"educator_ai/logger"
	"educator_ai/models"
	"educator_ai/services"
	"educator_ai/utils"
)

// ChatHandler godoc
// @Summary 获取教学建议和资源推荐
// @Description 将用户问题发送给大模型，返回一段教学建议和3-5个资源推荐。模型调用或解析失败时返回兜底内容，状态仍为success
// @Tags 聊天
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "用户消息"
// @Success 200 {object} models.ChatResponse "成功"
// @Failure 400 {object} models.ErrorResponse "参数错误"
// @Failure 500 {object} models.ErrorResponse "服务器错误"
// @Router /chat [post]
func ChatHandler(w http.ResponseWriter, r *http.Request, recommender services.Recommender) {
	req, err := utils.DecodeChatRequest(r)
	if err != nil {
		logger.Warn("解析请求体失败", "error", err)
		utils.WriteValidationError(w, models.MsgInvalidBody)
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		utils.WriteValidationError(w, models.MsgNoMessage)
		return
	}

	result := recommender.GetRecommendations(r.Context(), message)
	utils.WriteChatResponse(w, result)
}

// HealthHandler godoc
// @Summary 健康检查
// @Description 服务存活检查
// @Tags 系统
// @Produce json
// @Success 200 {object} models.HealthResponse "成功"
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteFormattedJSON(w, http.StatusOK, models.HealthResponse{
		Status:  models.StatusHealthy,
		Message: models.MsgHealthy,
	})
}

// NewRouter 创建带中间件的路由
func NewRouter(cfg *config.Config, recommender services.Recommender) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(utils.RecoverJSON)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	RegisterRoutes(r, cfg, recommender)
	return r
}

// RegisterRoutes 注册聊天、健康检查、Swagger和前端静态文件路由
func RegisterRoutes(r *chi.Mux, cfg *config.Config, recommender services.Recommender) {
	// Swagger 文档
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // Swagger JSON 的 URL
	))

	r.Post("/chat", func(w http.ResponseWriter, r *http.Request) {
		ChatHandler(w, r, recommender)
	})

	r.Get("/health", HealthHandler)

	// 前端静态文件
	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))
}
