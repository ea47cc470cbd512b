package services

import (
	"bytes"
	"context"
	"educator_ai/logger"
	"educator_ai/models"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	fallbackInsight    = "I've analyzed your request and have some recommendations for you."
	unavailableInsight = "I'm having trouble processing your request right now. Please try again later."

	jsonFenceOpen  = "```json"
	jsonFenceClose = "```"
)

// errNullReply 模型返回的JSON为null
var errNullReply = errors.New("model reply is JSON null")

// RecommendationAssembler 组装提示词、调用模型并解析模型回复
type RecommendationAssembler struct {
	llm       LLMClient
	resources string // 预先格式化的资源列表，目录只读，每次调用都相同
}

// NewRecommendationAssembler 创建推荐组装器，resources为推荐候选的资源目录
func NewRecommendationAssembler(llm LLMClient, resources []models.Resource) *RecommendationAssembler {
	return &RecommendationAssembler{
		llm:       llm,
		resources: formatResources(resources),
	}
}

// GetRecommendations 为用户问题生成建议和资源推荐。
// 不返回错误：模型调用失败或回复无法解析时返回固定的兜底结果。
func (a *RecommendationAssembler) GetRecommendations(ctx context.Context, userInput string) (result models.RecommendationResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Error getting recommendations", "panic", r)
			result = unavailableResult()
		}
	}()

	prompt := buildRecommendationPrompt(userInput, a.resources)

	reply, err := a.llm.Generate(ctx, prompt)
	if err != nil {
		logger.Error("Error getting recommendations", "error", err)
		return unavailableResult()
	}

	result, err = parseRecommendationReply(reply)
	if err != nil {
		logger.Error("Error parsing JSON response", "error", err, "response", logger.Preview(reply, 500))
		return fallbackResult()
	}

	logger.Info("成功解析推荐结果", "recommendations_count", len(result.Recommendations))
	return result
}

// parseRecommendationReply 从模型回复中提取并解析JSON。
// 只要求顶层是对象；insight和recommendations按原样透传，不校验单个资源的字段。
func parseRecommendationReply(reply string) (models.RecommendationResult, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(extractJSONFromText(reply)), &fields); err != nil {
		return models.RecommendationResult{}, err
	}
	if fields == nil {
		return models.RecommendationResult{}, errNullReply
	}

	result := models.RecommendationResult{
		Insight:         rawInsight(fields["insight"]),
		Recommendations: []models.Recommendation{},
	}

	if raw, ok := fields["recommendations"]; ok {
		decoder := json.NewDecoder(bytes.NewReader(raw))
		decoder.UseNumber() // 数字保持原始字面量
		var recommendations []models.Recommendation
		if err := decoder.Decode(&recommendations); err != nil {
			return models.RecommendationResult{}, fmt.Errorf("recommendations: %w", err)
		}
		if recommendations != nil {
			result.Recommendations = recommendations
		}
	}

	return result, nil
}

// rawInsight 字符串直接使用；缺失或null为空串；其他类型保留其JSON文本
func rawInsight(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var insight *string
	if err := json.Unmarshal(raw, &insight); err == nil {
		if insight == nil {
			return ""
		}
		return *insight
	}
	return string(raw)
}

// extractJSONFromText 从文本中提取JSON部分。
// 优先取第一个```json代码块的内容，否则取第一个'{'到最后一个'}'之间的文本（不做括号配对）。
// 找不到合法区间时返回空串，由JSON解析报错。
func extractJSONFromText(text string) string {
	text = strings.TrimSpace(text)

	if startIdx := strings.Index(text, jsonFenceOpen); startIdx >= 0 {
		block := text[startIdx+len(jsonFenceOpen):]
		if endIdx := strings.Index(block, jsonFenceClose); endIdx >= 0 {
			block = block[:endIdx]
		}
		return strings.TrimSpace(block)
	}

	startIdx := strings.Index(text, "{")
	endIdx := strings.LastIndex(text, "}")
	if startIdx < 0 || endIdx < startIdx {
		return ""
	}
	return text[startIdx : endIdx+1]
}

// fallbackResources 回复无法解析时固定推荐的资源
var fallbackResources = []models.Resource{
	{
		Title:       "Workshop: Digital Pedagogy for Modern Classrooms",
		Type:        "Workshop",
		Description: "Learn how to effectively integrate technology into your teaching practice.",
		Link:        "https://example.com/digital-pedagogy",
	},
	{
		Title:       "Tool: Nearpod",
		Type:        "EdTech Tool",
		Description: "Interactive lessons, videos, and activities to engage students in any setting.",
		Link:        "https://nearpod.com",
	},
}

// fallbackResult 回复无法解析时的固定推荐
func fallbackResult() models.RecommendationResult {
	recommendations := make([]models.Recommendation, 0, len(fallbackResources))
	for _, r := range fallbackResources {
		recommendations = append(recommendations, r.ToRecommendation())
	}
	return models.RecommendationResult{
		Insight:         fallbackInsight,
		Recommendations: recommendations,
	}
}

// unavailableResult 模型调用失败时的结果
func unavailableResult() models.RecommendationResult {
	return models.RecommendationResult{
		Insight:         unavailableInsight,
		Recommendations: []models.Recommendation{},
	}
}
