package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"educator_ai/config"
	"educator_ai/handlers"
	"educator_ai/logger"
	"educator_ai/repository"
	"educator_ai/services"
)

func main() {
	cfg := config.Load()

	// 缺少API Key时直接退出
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// 初始化日志系统
	if err := logger.Init(cfg); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer logger.Close()
	logger.Info("日志系统初始化成功", "level", cfg.Log.Level, "format", cfg.Log.Format, "output", cfg.Log.Output)

	llm := services.NewGeminiClient(cfg)
	assembler := services.NewRecommendationAssembler(llm, repository.ListResources())
	logger.Info("推荐服务初始化成功", "model", llm.Model(), "resources", len(repository.ListResources()))

	r := handlers.NewRouter(cfg, assembler)

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("服务器启动", "address", cfg.Server.Addr, "production", cfg.Production)
	logger.Info("Swagger文档可访问", "url", "http://"+cfg.Server.Addr+"/swagger/index.html")
	if err := server.ListenAndServe(); err != nil {
		logger.Error("服务器异常退出", "error", err)
		_ = logger.Close()
		os.Exit(1)
	}
}
