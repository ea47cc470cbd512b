package services

import (
	"bytes"
	"context"
	"educator_ai/config"
	"educator_ai/logger"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// 定义Gemini API请求和响应结构
type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

type geminiModelList struct {
	Models []struct {
		Name        string `json:"name"`
		DisplayName string `json:"displayName"`
	} `json:"models"`
	NextPageToken string `json:"nextPageToken"`
}

// ErrEmptyCandidates 模型没有返回任何候选内容
var ErrEmptyCandidates = errors.New("gemini: API响应中没有内容")

// GeminiClient Gemini generateContent REST客户端
type GeminiClient struct {
	apiKey        string
	model         string
	fallbackModel string
	baseURL       string
	httpClient    *http.Client
}

// NewGeminiClient 根据配置创建Gemini客户端
func NewGeminiClient(cfg *config.Config) *GeminiClient {
	timeout := time.Duration(cfg.Gemini.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = config.DefaultTimeoutSec * time.Second
	}
	return &GeminiClient{
		apiKey:        cfg.Gemini.APIKey,
		model:         cfg.Gemini.Model,
		fallbackModel: cfg.Gemini.FallbackModel,
		baseURL:       strings.TrimRight(cfg.Gemini.BaseURL, "/"),
		httpClient:    &http.Client{Timeout: timeout},
	}
}

// Model 返回当前使用的模型名称
func (c *GeminiClient) Model() string {
	return c.model
}

// Generate 使用配置的模型生成内容
func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	return c.GenerateWithModel(ctx, c.model, prompt)
}

// GenerateWithFallback 先使用配置的模型，失败后改用备用模型再试一次
func (c *GeminiClient) GenerateWithFallback(ctx context.Context, prompt string) (string, string, error) {
	text, err := c.GenerateWithModel(ctx, c.model, prompt)
	if err == nil {
		return text, c.model, nil
	}
	if c.fallbackModel == "" || c.fallbackModel == c.model {
		return "", c.model, err
	}

	logger.Warn("模型调用失败，尝试备用模型", "model", c.model, "fallback_model", c.fallbackModel, "error", err)
	text, fbErr := c.GenerateWithModel(ctx, c.fallbackModel, prompt)
	if fbErr != nil {
		return "", c.fallbackModel, fmt.Errorf("model %s: %v; fallback model %s: %w", c.model, err, c.fallbackModel, fbErr)
	}
	return text, c.fallbackModel, nil
}

// GenerateWithModel 调用指定模型的generateContent接口
func (c *GeminiClient) GenerateWithModel(ctx context.Context, model, prompt string) (string, error) {
	logger.Info("调用Gemini API", "model", model)
	logger.Debug("LLM请求提示词预览", "prompt_preview", logger.Preview(prompt, 100))

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: prompt}},
			},
		},
	}

	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("序列化请求体失败: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, url.PathEscape(strings.TrimPrefix(model, "models/")))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqJSON))
	if err != nil {
		return "", fmt.Errorf("创建HTTP请求失败: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	startTime := time.Now()
	body, err := c.do(req)
	requestDuration := time.Since(startTime)
	logger.Info("LLM请求耗时", "model", model, "duration_ms", requestDuration.Milliseconds())
	if err != nil {
		return "", err
	}

	var gResp geminiResponse
	if err := json.Unmarshal(body, &gResp); err != nil {
		logger.Error("解析响应失败", "error", err, "response_body_preview", logger.Preview(string(body), 200))
		return "", fmt.Errorf("解析Gemini响应失败: %w", err)
	}

	if len(gResp.Candidates) == 0 {
		if gResp.PromptFeedback.BlockReason != "" {
			return "", fmt.Errorf("%w: blocked (%s)", ErrEmptyCandidates, gResp.PromptFeedback.BlockReason)
		}
		return "", ErrEmptyCandidates
	}

	// 多个part时按顺序拼接
	var sb strings.Builder
	for _, part := range gResp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}
	content := sb.String()
	if content == "" {
		return "", fmt.Errorf("%w: finish_reason=%s", ErrEmptyCandidates, gResp.Candidates[0].FinishReason)
	}

	logger.Info("成功获取LLM响应",
		"tokens_prompt", gResp.UsageMetadata.PromptTokenCount,
		"tokens_completion", gResp.UsageMetadata.CandidatesTokenCount,
		"tokens_total", gResp.UsageMetadata.TotalTokenCount,
		"finish_reason", gResp.Candidates[0].FinishReason)
	logger.Debug("LLM响应内容预览", "content_preview", logger.Preview(content, 200))

	return content, nil
}

// ListModels 列出当前API Key可用的模型名称
func (c *GeminiClient) ListModels(ctx context.Context) ([]string, error) {
	var names []string
	pageToken := ""
	for {
		endpoint := c.baseURL + "/v1beta/models"
		if pageToken != "" {
			endpoint += "?pageToken=" + url.QueryEscape(pageToken)
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("创建HTTP请求失败: %w", err)
		}
		req.Header.Set("x-goog-api-key", c.apiKey)

		body, err := c.do(req)
		if err != nil {
			return nil, err
		}

		var list geminiModelList
		if err := json.Unmarshal(body, &list); err != nil {
			return nil, fmt.Errorf("解析模型列表失败: %w", err)
		}
		for _, m := range list.Models {
			names = append(names, m.Name)
		}

		if list.NextPageToken == "" {
			return names, nil
		}
		pageToken = list.NextPageToken
	}
}

// do 发送请求并读取响应体，非200状态码视为错误
func (c *GeminiClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("发送请求失败", "url", req.URL.Path, "error", err)
		return nil, fmt.Errorf("发送请求失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}

	logger.Debug("LLM响应状态", "status_code", resp.StatusCode, "response_size", len(body))

	if resp.StatusCode != http.StatusOK {
		var apiErr geminiErrorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			logger.Error("API请求失败", "status", resp.StatusCode, "api_status", apiErr.Error.Status, "message", apiErr.Error.Message)
			return nil, fmt.Errorf("API请求失败: %d %s - %s", resp.StatusCode, apiErr.Error.Status, apiErr.Error.Message)
		}
		logger.Error("API请求失败", "status", resp.StatusCode, "response", logger.Preview(string(body), 500))
		return nil, fmt.Errorf("API请求失败: %d - %s", resp.StatusCode, logger.Preview(string(body), 500))
	}

	return body, nil
}
