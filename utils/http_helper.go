package utils

import (
	"encoding/json"
	"net/http"

	"educator_ai/models"
)

// WriteFormattedJSON 格式化JSON输出，使其更易读
func WriteFormattedJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ") // 使用4个空格缩进
	encoder.Encode(data)
}

// WriteChatResponse 写入推荐成功响应
func WriteChatResponse(w http.ResponseWriter, result models.RecommendationResult) {
	WriteFormattedJSON(w, http.StatusOK, models.NewChatResponse(result))
}

// WriteValidationError 写入参数错误响应（400）
func WriteValidationError(w http.ResponseWriter, message string) {
	WriteFormattedJSON(w, http.StatusBadRequest, models.NewValidationErrorResponse(message))
}

// WriteServerError 写入服务器错误响应（500）
func WriteServerError(w http.ResponseWriter) {
	WriteFormattedJSON(w, http.StatusInternalServerError, models.NewServerErrorResponse(models.MsgServerError))
}

// DecodeChatRequest 解析聊天请求体
func DecodeChatRequest(r *http.Request) (models.ChatRequest, error) {
	var req models.ChatRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	return req, err
}
