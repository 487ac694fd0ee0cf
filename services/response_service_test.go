package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var allIntents = []Intent{
	IntentGreeting, IntentSalary, IntentSkills,
	IntentInterview, IntentJob, IntentResume, IntentDefault,
}

func TestResponseText_NonEmptyForAllIntents(t *testing.T) {
	for _, intent := range allIntents {
		text := ResponseText(intent, "anything")
		require.NotEmpty(t, text, "intent=%s", intent)
	}
}

func TestResponseText_StaticForKnownIntents(t *testing.T) {
	// default以外的意图话术与用户消息无关
	for _, intent := range allIntents {
		if intent == IntentDefault {
			continue
		}
		require.Equal(t,
			ResponseText(intent, "first message"),
			ResponseText(intent, "second message"),
			"intent=%s", intent)
	}
}

func TestResponseText_DefaultEchoesMessage(t *testing.T) {
	text := ResponseText(IntentDefault, "quantum computing courses")
	require.Contains(t, text, `"quantum computing courses"`)
}

func TestResponseText_UnknownIntentFallsBackToDefault(t *testing.T) {
	text := ResponseText(Intent("bogus"), "my question")
	require.Contains(t, text, `"my question"`)
	require.Contains(t, text, "Got it")
}

func TestResponseText_JobTemplateHasLinks(t *testing.T) {
	text := ResponseText(IntentJob, "")
	require.Contains(t, text, "https://linkedin.com/jobs/search/")
}

func TestSuggestionsFor_ExactlyFourPerIntent(t *testing.T) {
	for _, intent := range allIntents {
		suggestions := SuggestionsFor(intent)
		require.Len(t, suggestions, 4, "intent=%s", intent)
		for _, s := range suggestions {
			require.NotEmpty(t, strings.TrimSpace(s), "intent=%s", intent)
		}
	}
}

func TestSuggestionsFor_UnknownIntentFallsBackToDefault(t *testing.T) {
	require.Equal(t, SuggestionsFor(IntentDefault), SuggestionsFor(Intent("bogus")))
}

func TestSuggestionsFor_ReturnsCopy(t *testing.T) {
	first := SuggestionsFor(IntentSkills)
	first[0] = "mutated"
	require.NotEqual(t, "mutated", SuggestionsFor(IntentSkills)[0])
}
