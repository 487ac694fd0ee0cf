package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"careermate/config"
	"careermate/logger"
)

// templateLanguage 话术模板的规范语言
const templateLanguage = "en"

// translationTargets 翻译服务支持的目标语言代码
var translationTargets = map[string]string{
	"en": "en",
	"hi": "hi",
	"pa": "pa",
	"kn": "kn",
}

// ResolveTargetLang 把界面语言映射为翻译目标语言，不支持的代码回退到英语
func ResolveTargetLang(language string) string {
	if target, ok := translationTargets[language]; ok {
		return target
	}
	return templateLanguage
}

// myMemoryResponse MyMemory翻译API的响应结构
type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus any `json:"responseStatus"` // 可能是数字也可能是字符串
}

// MyMemoryClient MyMemory翻译API客户端，实现ChunkTranslator
type MyMemoryClient struct {
	baseURL string
	client  *http.Client
}

// NewMyMemoryClient 创建MyMemory翻译客户端
func NewMyMemoryClient(cfg *config.Config) *MyMemoryClient {
	timeout := cfg.Translation.TimeoutSec
	if timeout <= 0 {
		timeout = 10
	}
	return &MyMemoryClient{
		baseURL: strings.TrimRight(cfg.Translation.BaseURL, "/"),
		client:  &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// TranslateChunk 调用MyMemory API翻译单块文本
// 非200状态、响应解析失败或译文为空都视为失败，由调用方决定降级
func (c *MyMemoryClient) TranslateChunk(text, target string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return text, nil
	}

	reqURL := fmt.Sprintf("%s/get?q=%s&langpair=%s",
		c.baseURL,
		url.QueryEscape(trimmed),
		url.QueryEscape(templateLanguage+"|"+target))

	resp, err := c.client.Get(reqURL)
	if err != nil {
		logger.Error("翻译请求发送失败", "target", target, "error", err)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("翻译请求返回非200状态码", "status_code", resp.StatusCode, "target", target)
		return "", fmt.Errorf("translation API status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("读取翻译响应失败", "error", err)
		return "", err
	}

	var mmResp myMemoryResponse
	if err := json.Unmarshal(body, &mmResp); err != nil {
		logger.Error("解析翻译响应失败", "error", err)
		return "", err
	}

	translated := mmResp.ResponseData.TranslatedText
	if strings.TrimSpace(translated) == "" {
		logger.Error("翻译响应中没有译文", "target", target)
		return "", errors.New("translation API returned empty result")
	}

	return translated, nil
}

// TranslateService 分块翻译服务
// 长文本按段落、项目符号、句子三个层级拆成不超过长度限制的块，
// 逐块独立翻译后用空行重新拼接
type TranslateService struct {
	client        ChunkTranslator
	maxChunkChars int
}

// NewTranslateService 创建分块翻译服务，client为nil时视所有块翻译失败
func NewTranslateService(client ChunkTranslator, maxChunkChars int) *TranslateService {
	if maxChunkChars <= 0 {
		maxChunkChars = 250
	}
	return &TranslateService{
		client:        client,
		maxChunkChars: maxChunkChars,
	}
}

// NewTranslateServiceFromConfig 根据配置创建使用MyMemory的分块翻译服务
func NewTranslateServiceFromConfig(cfg *config.Config) *TranslateService {
	return NewTranslateService(NewMyMemoryClient(cfg), cfg.Translation.MaxChunkChars)
}

// Translate 把英文文本翻译为目标语言
// 目标语言是英语或文本为空白时原样返回，不发起网络调用；
// 任何块翻译失败都回退到该块的英文原文，整体永远不返回错误
func (s *TranslateService) Translate(text, targetLanguage string) string {
	target := ResolveTargetLang(targetLanguage)
	if target == templateLanguage || strings.TrimSpace(text) == "" {
		return text
	}

	// 短文本直接整体翻译
	if utf8.RuneCountInString(text) <= s.maxChunkChars {
		if out, err := s.translateChunk(text, target); err == nil {
			return out
		}
		return text
	}

	// 长文本分块翻译
	chunks := SplitIntoChunks(text, s.maxChunkChars)
	logger.Debug("长文本分块翻译", "target", target, "chunks", len(chunks))

	translatedParts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		out, err := s.translateChunk(chunk, target)
		if err != nil {
			// 单块失败只降级该块，不影响其他块
			out = chunk
		}
		translatedParts = append(translatedParts, out)
	}

	// 统一用空行重新拼接，即使块来自句子拆分也一样
	return strings.Join(translatedParts, "\n\n")
}

func (s *TranslateService) translateChunk(text, target string) (string, error) {
	if s.client == nil {
		return "", errors.New("chunk translator is not configured")
	}
	out, err := s.client.TranslateChunk(text, target)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "", errors.New("empty translation result")
	}
	return out, nil
}

// SplitIntoChunks 把长文本拆成不超过maxChars个字符的块
// 拆分是确定性的分层规则：
//  1. 先按空行拆段落，不超限的段落整段保留；
//  2. 超限段落如果含有项目符号'•'，按符号贪心累积，装满即切块；
//  3. 否则按句号加空格的句子边界做同样的贪心累积。
// 单个不可再分的句子或条目即使超限也保持完整，不做硬切
func SplitIntoChunks(text string, maxChars int) []string {
	var chunks []string

	paragraphs := strings.Split(text, "\n\n")
	for _, paragraph := range paragraphs {
		if utf8.RuneCountInString(paragraph) <= maxChars {
			chunks = append(chunks, paragraph)
			continue
		}

		if strings.Contains(paragraph, "•") {
			chunks = append(chunks, splitByBullets(paragraph, maxChars)...)
		} else {
			chunks = append(chunks, splitBySentences(paragraph, maxChars)...)
		}
	}

	return chunks
}

// splitByBullets 按项目符号贪心累积拆块
func splitByBullets(paragraph string, maxChars int) []string {
	var chunks []string

	parts := strings.Split(paragraph, "•")
	current := parts[0]
	for _, part := range parts[1:] {
		candidate := current + "•" + part
		if utf8.RuneCountInString(candidate) <= maxChars {
			current = candidate
			continue
		}
		if strings.TrimSpace(current) != "" {
			chunks = append(chunks, current)
		}
		current = "•" + part
	}
	if strings.TrimSpace(current) != "" {
		chunks = append(chunks, current)
	}

	return chunks
}

// splitBySentences 按句子边界（句号加空格）贪心累积拆块
func splitBySentences(paragraph string, maxChars int) []string {
	var chunks []string

	sentences := strings.Split(strings.ReplaceAll(paragraph, ". ", ".|"), "|")
	current := ""
	for _, sentence := range sentences {
		if utf8.RuneCountInString(current+sentence) <= maxChars {
			current += sentence
			continue
		}
		if strings.TrimSpace(current) != "" {
			chunks = append(chunks, current)
		}
		current = sentence
	}
	if strings.TrimSpace(current) != "" {
		chunks = append(chunks, current)
	}

	return chunks
}
