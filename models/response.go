package models

// 响应状态定义
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusHealthy = "healthy"
)

// 响应消息定义
const (
	MsgNoMessage      = "No message provided"
	MsgInvalidBody    = "Invalid request body"
	MsgServerError    = "An error occurred while processing your request."
	MsgHealthy        = "Educator AI API is running"
	MsgDefaultInsight = "Here are some recommendations for you."
)

// NewChatResponse 根据推荐结果创建成功响应，模型未给出insight时使用默认文案
func NewChatResponse(result RecommendationResult) ChatResponse {
	insight := result.Insight
	if insight == "" {
		insight = MsgDefaultInsight
	}
	recommendations := result.Recommendations
	if recommendations == nil {
		recommendations = []Recommendation{}
	}
	return ChatResponse{
		Status:          StatusSuccess,
		Insight:         insight,
		Recommendations: recommendations,
	}
}

// NewValidationErrorResponse 创建参数校验失败的响应
func NewValidationErrorResponse(message string) ErrorResponse {
	return ErrorResponse{
		Status: StatusError,
		Error:  message,
	}
}

// NewServerErrorResponse 创建服务器错误响应
func NewServerErrorResponse(message string) ErrorResponse {
	return ErrorResponse{
		Status:  StatusError,
		Message: message,
	}
}
