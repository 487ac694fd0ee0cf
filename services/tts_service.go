package services

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"careermate/config"
	"careermate/logger"
	"careermate/models"
)

// SpeechService 语音合成服务，调用外部TTS接口生成MP3音频，实现SpeechSynthesizer
type SpeechService struct {
	baseURL string
	client  *http.Client
}

// NewSpeechService 根据配置创建语音合成服务
func NewSpeechService(cfg *config.Config) *SpeechService {
	timeout := cfg.TTS.TimeoutSec
	if timeout <= 0 {
		timeout = 15
	}
	return &SpeechService{
		baseURL: strings.TrimRight(cfg.TTS.BaseURL, "/"),
		client:  &http.Client{Timeout: time.Duration(timeout) * time.Second},
	}
}

// Synthesize 把文本合成为指定语言的MP3音频
// 界面语言先通过固定映射表换成语音代码，不支持的语言使用英语语音
func (s *SpeechService) Synthesize(text, language string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("empty text for speech synthesis")
	}

	voice := models.VoiceFor(language)
	reqURL := fmt.Sprintf("%s/translate_tts?ie=UTF-8&client=tw-ob&tl=%s&q=%s",
		s.baseURL, voice, url.QueryEscape(text))

	start := time.Now()
	resp, err := s.client.Get(reqURL)
	if err != nil {
		logger.Error("语音合成请求发送失败", "voice", voice, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Error("语音合成请求返回非200状态码", "status_code", resp.StatusCode, "voice", voice)
		return nil, fmt.Errorf("tts API status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Error("读取语音合成响应失败", "error", err)
		return nil, err
	}
	if len(audio) == 0 {
		return nil, errors.New("tts API returned empty audio")
	}

	logger.Info("语音合成完成",
		"voice", voice,
		"text_len", len(text),
		"audio_bytes", len(audio),
		"cost", time.Since(start).String())
	return audio, nil
}
