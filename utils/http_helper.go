package utils

import (
	"encoding/json"
	"net/http"

	"careermate/models"
)

// WriteFormattedJSON 格式化JSON输出，使其更易读
func WriteFormattedJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ") // 使用4个空格缩进
	encoder.Encode(data)
}

// WriteSuccessResponse 写入成功响应
func WriteSuccessResponse(w http.ResponseWriter, data interface{}) {
	WriteFormattedJSON(w, http.StatusOK, data)
}

// WriteClientError 写入客户端错误响应（4xx）
func WriteClientError(w http.ResponseWriter, message string) {
	WriteFormattedJSON(w, http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// WriteServerError 写入服务端错误响应（5xx）
func WriteServerError(w http.ResponseWriter, err error) {
	WriteFormattedJSON(w, http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Error:   err.Error(),
	})
}
