package services

import "fmt"

// responseTemplates 每个意图的固定英文话术，英文是模板的规范语言，
// 其他语言在返回前由翻译服务处理
var responseTemplates = map[Intent]string{
	IntentGreeting: `👋 **Hello! I'm CareerMate!**

I help with:
• Job search & salaries
• Tech skills & learning
• Interview preparation
• Resume optimization

Ask me about salaries, skills, or jobs!

What can I help you with?`,

	IntentSalary: `💰 **Tech Salaries 2024-2025**

**Software Engineer:**
Entry: $75k-$120k | Mid: $110k-$180k | Senior: $160k-$350k

**AI/ML Engineer:**
Entry: $95k-$130k | Mid: $140k-$200k | Senior: $200k-$400k

**Data Scientist:**
Entry: $85k-$120k | Mid: $120k-$180k | Senior: $180k-$300k

**Location boost:** SF +35%, NYC +25%, Remote -15%

Get multiple offers and negotiate!`,

	IntentSkills: `🎓 **Hottest Tech Skills 2024-2025**

**Programming:** Python (AI/ML) • JavaScript (Web) • SQL (Essential)

**AI/ML:** ChatGPT integration • PyTorch • Vector databases

**Cloud:** AWS • Docker • Kubernetes

**Learning plan:** Pick Python → Choose AI/Web/Cloud → Build 3 projects

**Free resources:** freeCodeCamp.org, Fast.ai, AWS Educate

Which area interests you?`,

	IntentInterview: `🎤 **Interview Prep Essentials**

**Top 3 questions:**
1. "Tell me about yourself" → Present + Impact + Future
2. "Why this job?" → Research company + Show excitement
3. "Biggest weakness?" → Real weakness + Improvement + Results

**Technical prep:** LeetCode Easy (50) → Medium (100)

**Tips:** Apply Mon-Wed, research interviewer, prepare 5 questions

Need company-specific help?`,

	IntentJob: `🔍 **Job Search Links**

**AI/ML Jobs:**
[AI Engineer Jobs](https://linkedin.com/jobs/search/?keywords=AI%20engineer)
[Data Scientist Jobs](https://linkedin.com/jobs/search/?keywords=data%20scientist)

**Software Jobs:**
[Software Engineer Jobs](https://linkedin.com/jobs/search/?keywords=software%20engineer)
[Full Stack Developer Jobs](https://linkedin.com/jobs/search/?keywords=full%20stack%20developer)

**Remote Jobs:**
[Remote Software Jobs](https://linkedin.com/jobs/search/?keywords=software%20engineer&location=Remote)

Apply within 24hrs, follow up in 1 week!`,

	IntentResume: `📄 **Resume Optimization**

**Structure:** Header → Summary → Experience → Skills

**Writing:** Action verbs + Quantified results + Job keywords

**ATS-friendly:** PDF format, simple layout, standard fonts

**Test:** Upload to Jobscan.co for ATS score

Want help with specific sections?`,
}

// defaultTemplate default意图的话术，会把用户原始消息原样带回
const defaultTemplate = `🤖 **Got it: "%s"**

I help with:
💼 Job search & career strategy
💰 Salary data & negotiation
🎓 Tech skills & learning
🎯 Interview preparation

**Quick examples:**
"Software engineer salary"
"Skills for AI jobs"
"Google interview prep"

What do you need help with?`

// intentSuggestions 每个意图固定的4条后续建议，与用户消息内容无关，不参与翻译
var intentSuggestions = map[Intent][]string{
	IntentGreeting:  {"💼 Find me a job", "💰 Software engineer salary", "🎓 Skills to learn", "🎤 Interview preparation"},
	IntentSalary:    {"💼 Entry-level tech salaries", "🏢 Big tech compensation", "📍 Location-based pay", "💰 Salary negotiation tips"},
	IntentSkills:    {"🐍 Python learning roadmap", "🤖 AI/ML fundamentals", "☁️ Cloud platforms guide", "💻 Full-stack development"},
	IntentInterview: {"❓ Common tech questions", "💡 STAR method examples", "🎯 System design basics", "👔 Behavioral interview prep"},
	IntentJob:       {"🔍 Remote job search", "🤖 AI/ML job openings", "📄 Resume optimization", "💰 Salary negotiation tips"},
	IntentResume:    {"📄 Upload my resume now", "✨ Resume formatting tips", "🎯 ATS optimization guide", "💼 Cover letter tips"},
	IntentDefault:   {"💼 Career guidance", "📈 Skill development", "💰 Salary information", "🎤 Interview preparation"},
}

// ResponseText 返回指定意图的英文话术
// default意图（以及枚举之外的意图兜底）会把用户消息原样嵌入话术中
func ResponseText(intent Intent, userMessage string) string {
	if template, ok := responseTemplates[intent]; ok {
		return template
	}
	return fmt.Sprintf(defaultTemplate, userMessage)
}

// SuggestionsFor 返回指定意图的4条后续建议，返回副本避免调用方修改内部表
func SuggestionsFor(intent Intent) []string {
	suggestions, ok := intentSuggestions[intent]
	if !ok {
		suggestions = intentSuggestions[IntentDefault]
	}
	out := make([]string, len(suggestions))
	copy(out, suggestions)
	return out
}
