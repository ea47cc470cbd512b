package models

// ChatRequest 聊天请求体
type ChatRequest struct {
	Message string `json:"message" example:"How can I make my online classes more engaging?"`
}

// ChatResponse 聊天成功响应
type ChatResponse struct {
	Status          string     `json:"status" example:"success"`
	Insight         string     `json:"insight" example:"Try gamified quizzes."`
	Recommendations []Recommendation `json:"recommendations"`
}

// ErrorResponse 错误响应
type ErrorResponse struct {
	Status  string `json:"status" example:"error"`
	Error   string `json:"error,omitempty" example:"No message provided"`
	Message string `json:"message,omitempty"`
}

// HealthResponse 健康检查响应
type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Message string `json:"message" example:"Educator AI API is running"`
}
