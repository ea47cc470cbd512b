package services

import (
	"context"

	"educator_ai/models"
)

// LLMClient 远程大模型调用接口：输入提示词，返回模型生成的文本
type LLMClient interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Recommender 教学推荐服务接口，供HTTP层调用
type Recommender interface {
	// 为用户问题生成教学建议和资源推荐，失败时返回兜底结果而不是错误
	GetRecommendations(ctx context.Context, userInput string) models.RecommendationResult
}
