package services

// ChunkTranslator 单块文本翻译能力
// 每次调用都是独立无状态的，块与块之间不共享上下文，
// 测试可以注入确定性失败的实现来验证降级行为
type ChunkTranslator interface {
	// TranslateChunk 把一段不超过长度限制的英文文本翻译为目标语言
	TranslateChunk(text, target string) (string, error)
}

// SpeechSynthesizer 语音合成能力
type SpeechSynthesizer interface {
	// Synthesize 把文本合成为指定语言的MP3音频
	Synthesize(text, language string) ([]byte, error)
}
