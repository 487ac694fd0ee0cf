package models

import "time"

// ChatRequest 聊天请求体
type ChatRequest struct {
	Message  string `json:"message" example:"software engineer salary"`
	Language string `json:"language" example:"en"` // en / hi / pa / kn
}

// ChatResponse 聊天成功响应
type ChatResponse struct {
	Success     bool     `json:"success" example:"true"`
	Response    string   `json:"response"`
	Suggestions []string `json:"suggestions"`
	Language    string   `json:"language" example:"en"`
	Timestamp   string   `json:"timestamp" example:"2025-08-25T10:30:00+05:30"`
}

// ErrorResponse 错误响应，客户端错误和服务端错误共用
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Empty message received"`
}

// SpeakRequest 语音合成请求体
type SpeakRequest struct {
	Text     string `json:"text"`
	Language string `json:"language" example:"en"`
}

// ChatExchange 一次聊天交互的持久化记录，只写入一次，不更新不删除
type ChatExchange struct {
	ID          int64     `json:"id"`
	UserMessage string    `json:"user_message"`
	BotResponse string    `json:"bot_response"`
	CreatedAt   time.Time `json:"timestamp"`
}

// HistoryResponse 聊天历史响应
type HistoryResponse struct {
	Success bool           `json:"success" example:"true"`
	Count   int            `json:"count" example:"20"`
	History []ChatExchange `json:"history"`
}

// UploadResponse 简历上传响应，包含固定的模拟分析结果
type UploadResponse struct {
	Success  bool           `json:"success" example:"true"`
	Message  string         `json:"message"`
	Analysis ResumeAnalysis `json:"analysis"`
}

// ResumeAnalysis 简历的模拟分析结果，不做真实解析
type ResumeAnalysis struct {
	SkillsFound    []string        `json:"skills_found"`
	JobSuggestions []JobSuggestion `json:"job_suggestions"`
}

// JobSuggestion 根据简历推荐的职位
type JobSuggestion struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	MatchScore  int    `json:"match_score"`
	LinkedInURL string `json:"linkedin_url"`
}
