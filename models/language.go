package models

// Language 界面语言配置
type Language struct {
	Name    string // 语言的本地名称
	TTSLang string // 语音合成使用的语音代码
}

// Languages 支持的界面语言，pa和kn暂时没有专用语音，使用hi代替
var Languages = map[string]Language{
	"en": {Name: "English", TTSLang: "en"},
	"hi": {Name: "हिन्दी", TTSLang: "hi"},
	"pa": {Name: "ਪੰਜਾਬੀ", TTSLang: "hi"},
	"kn": {Name: "ಕನ್ನಡ", TTSLang: "hi"},
}

// VoiceFor 返回指定界面语言对应的语音代码，不支持的语言回退到英语
func VoiceFor(language string) string {
	if lang, ok := Languages[language]; ok {
		return lang.TTSLang
	}
	return Languages["en"].TTSLang
}

// IsTranslatable 判断语言代码是否是可翻译的目标语言
func IsTranslatable(language string) bool {
	_, ok := Languages[language]
	return ok && language != "en"
}
