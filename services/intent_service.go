package services

import "strings"

// Intent 用户消息的意图分类
type Intent string

const (
	IntentGreeting  Intent = "greeting"
	IntentSalary    Intent = "salary"
	IntentSkills    Intent = "skills"
	IntentInterview Intent = "interview"
	IntentJob       Intent = "job"
	IntentResume    Intent = "resume"
	IntentDefault   Intent = "default"
)

// intentPriority 意图匹配的固定优先级，顺序决定结果，不能调整
var intentPriority = []Intent{
	IntentGreeting,
	IntentSalary,
	IntentSkills,
	IntentInterview,
	IntentJob,
	IntentResume,
}

// intentKeywords 每个意图的多语言关键词表，覆盖英语、印地语、旁遮普语、卡纳达语等
var intentKeywords = map[Intent][]string{
	IntentGreeting: {
		"hi", "hello", "hey", "start", "namaste", "namaskar", "hola", "bonjour",
		"नमस्ते", "नमस्कार", "ਸਤ ਸ੍ਰੀ ਅਕਾਲ", "ਨਮਸਕਾਰ",
		"ನಮಸ್ಕಾರ", "ನಮಸ್ತೆ", "vanakkam", "adaab",
	},
	IntentSalary: {
		"salary", "pay", "compensation", "money", "earning", "income", "wage",
		"वेतन", "तनख्वाह", "पैसा", "कमाई", "ਤਨਖਾਹ", "ਪੈਸਾ", "ਕਮਾਈ",
		"ಸಂಬಳ", "ದುಡ್ಡು", "ಕಮಾಯಿ", "पगार", "रुपया",
	},
	IntentSkills: {
		"skills", "learn", "study", "course", "training", "education", "skill",
		"कौशल", "सीखना", "अध्ययन", "पढ़ना", "ਸਿੱਖਣਾ", "ਹੁਨਰ", "ਸਿੱਖਿਆ",
		"ಕೌಶಲ್ಯ", "ಕಲಿಕೆ", "ಅಧ್ಯಯನ", "शिकणे", "कौशल्य",
	},
	IntentInterview: {
		"interview", "preparation", "questions", "tips", "prep", "question",
		"साक्षात्कार", "इंटरव्यू", "प्रश्न", "ਇੰਟਰਵਿਊ", "ਸਵਾਲ",
		"ಸಂದರ್ಶನ", "ಪ್ರಶ್ನೆ", "मुलाखत",
	},
	IntentJob: {
		"job", "career", "work", "employment", "position", "role", "jobs",
		"नौकरी", "काम", "कैरियर", "रोजगार", "ਨੌਕਰੀ", "ਕੰਮ", "ਕਰੀਅਰ",
		"ಕೆಲಸ", "ನೌಕರಿ", "ಕ್ಯಾರಿಯರ್", "नोकरी",
	},
	IntentResume: {
		"resume", "cv", "biodata", "profile", "bio",
		"बायोडाटा", "रिज्यूमे", "ਬਾਇਓਡਾਟਾ", "ರೆಸ್ಯೂಮೆ", "ಬಯೋಡಾಟಾ",
	},
}

// DetectIntent 检测用户消息的意图
// 匹配规则：消息转小写后，按固定优先级逐个意图做关键词子串匹配，
// 命中即返回，全部未命中返回default。只做子串包含，不做分词和词干化，
// 因此关键词出现在无关单词内部也会命中，这是有意保留的行为。
func DetectIntent(message string) Intent {
	messageLower := strings.ToLower(message)

	for _, intent := range intentPriority {
		for _, keyword := range intentKeywords[intent] {
			if strings.Contains(messageLower, keyword) {
				return intent
			}
		}
	}
	return IntentDefault
}
