package services

import (
	"careermate/config"
	"careermate/logger"
)

// ChatService 聊天响应装配服务
// 每次请求单次同步处理：意图识别 → 取话术和建议 → 按需翻译话术，
// 建议列表永远不翻译
type ChatService struct {
	translator *TranslateService
}

// NewChatService 创建聊天响应装配服务
func NewChatService(translator *TranslateService) *ChatService {
	return &ChatService{translator: translator}
}

// NewChatServiceFromConfig 根据配置创建聊天响应装配服务
func NewChatServiceFromConfig(cfg *config.Config) *ChatService {
	return NewChatService(NewTranslateServiceFromConfig(cfg))
}

// BuildReply 为用户消息生成回复文本和后续建议
// 翻译失败时回退到英文话术，整体永远不返回错误
func (s *ChatService) BuildReply(message, language string) (string, []string) {
	intent := DetectIntent(message)
	logger.Info("识别到用户意图", "intent", intent, "language", language)

	response := ResponseText(intent, message)
	suggestions := SuggestionsFor(intent)

	if language != templateLanguage {
		response = s.translator.Translate(response, language)
	}

	return response, suggestions
}
