package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildReply_GreetingEnglish(t *testing.T) {
	fake := &fakeTranslator{}
	svc := NewChatService(NewTranslateService(fake, 250))

	response, suggestions := svc.BuildReply("hi", "en")

	require.Equal(t, ResponseText(IntentGreeting, ""), response)
	require.Equal(t, SuggestionsFor(IntentGreeting), suggestions)
	require.Len(t, suggestions, 4)
	require.Zero(t, fake.calls, "英语请求不应触发翻译")
}

func TestBuildReply_SalaryEnglish(t *testing.T) {
	svc := NewChatService(NewTranslateService(failingTranslator(), 250))

	response, suggestions := svc.BuildReply("software engineer salary", "en")

	require.Contains(t, response, "Tech Salaries 2024-2025")
	require.Equal(t, SuggestionsFor(IntentSalary), suggestions)
}

func TestBuildReply_TranslationFailureFallsBackToEnglish(t *testing.T) {
	// 非英语脚本中的简历关键词 + 翻译服务完全不可用：
	// 回复必须是英文简历话术原文，建议是简历意图的4条
	svc := NewChatService(NewTranslateService(failingTranslator(), 250))

	response, suggestions := svc.BuildReply("मेरा बायोडाटा", "hi")

	require.Equal(t, ResponseText(IntentResume, ""), response)
	require.Equal(t, SuggestionsFor(IntentResume), suggestions)
}

func TestBuildReply_TranslatesResponseOnly(t *testing.T) {
	fake := &fakeTranslator{fn: func(text, target string) (string, error) {
		return "अनुवादित", nil
	}}
	svc := NewChatService(NewTranslateService(fake, 250))

	response, suggestions := svc.BuildReply("hello", "hi")

	require.Contains(t, response, "अनुवादित")
	require.Positive(t, fake.calls)
	// 建议列表永远保持英文原文
	require.Equal(t, SuggestionsFor(IntentGreeting), suggestions)
}

func TestBuildReply_DefaultEchoesUserMessage(t *testing.T) {
	svc := NewChatService(NewTranslateService(&fakeTranslator{}, 250))

	response, suggestions := svc.BuildReply("quantum computing", "en")

	require.Contains(t, response, `"quantum computing"`)
	require.Equal(t, SuggestionsFor(IntentDefault), suggestions)
}
