package services

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"careermate/config"
)

// fakeTranslator 可编程的ChunkTranslator测试替身
type fakeTranslator struct {
	calls  int
	chunks []string
	fn     func(text, target string) (string, error)
}

func (f *fakeTranslator) TranslateChunk(text, target string) (string, error) {
	f.calls++
	f.chunks = append(f.chunks, text)
	if f.fn != nil {
		return f.fn(text, target)
	}
	return "[" + target + "]" + text, nil
}

func failingTranslator() *fakeTranslator {
	return &fakeTranslator{fn: func(string, string) (string, error) {
		return "", errors.New("translation service unavailable")
	}}
}

func TestResolveTargetLang(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"en", "en"},
		{"hi", "hi"},
		{"pa", "pa"},
		{"kn", "kn"},
		{"fr", "en"},
		{"", "en"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, ResolveTargetLang(tc.in), "lang=%q", tc.in)
	}
}

func TestTranslate_IdentityForEnglish(t *testing.T) {
	fake := &fakeTranslator{}
	svc := NewTranslateService(fake, 250)

	text := "Any text at all, even long enough to be chunked. " + strings.Repeat("More. ", 100)
	require.Equal(t, text, svc.Translate(text, "en"))
	require.Zero(t, fake.calls, "英语目标语言不应发起任何翻译调用")
}

func TestTranslate_IdentityForUnsupportedLanguage(t *testing.T) {
	fake := &fakeTranslator{}
	svc := NewTranslateService(fake, 250)

	require.Equal(t, "hello", svc.Translate("hello", "fr"))
	require.Zero(t, fake.calls)
}

func TestTranslate_IdentityForBlankText(t *testing.T) {
	fake := &fakeTranslator{}
	svc := NewTranslateService(fake, 250)

	for _, text := range []string{"", "   ", "\n\n\t"} {
		require.Equal(t, text, svc.Translate(text, "hi"))
	}
	require.Zero(t, fake.calls)
}

func TestTranslate_ShortTextSingleCall(t *testing.T) {
	fake := &fakeTranslator{}
	svc := NewTranslateService(fake, 250)

	out := svc.Translate("short text", "hi")
	require.Equal(t, "[hi]short text", out)
	require.Equal(t, 1, fake.calls)
}

func TestTranslate_ShortTextFailureReturnsOriginal(t *testing.T) {
	svc := NewTranslateService(failingTranslator(), 250)
	require.Equal(t, "short text", svc.Translate("short text", "hi"))
}

func TestTranslate_NilClientReturnsOriginal(t *testing.T) {
	svc := NewTranslateService(nil, 250)
	require.Equal(t, "short text", svc.Translate("short text", "hi"))
}

func TestTranslate_AllChunksFailingReturnsTemplateUnchanged(t *testing.T) {
	// 段落都不超限的模板在全部块翻译失败时必须原样返回
	template := ResponseText(IntentResume, "")
	require.Greater(t, utf8.RuneCountInString(template), 250, "模板需要走分块路径")

	svc := NewTranslateService(failingTranslator(), 250)
	require.Equal(t, template, svc.Translate(template, "hi"))
}

func TestTranslate_PerChunkFallback(t *testing.T) {
	// 只有部分块失败时，失败的块降级为英文原文，其余块正常翻译
	fake := &fakeTranslator{fn: func(text, target string) (string, error) {
		if strings.Contains(text, "beta") {
			return "", errors.New("boom")
		}
		return "T:" + text, nil
	}}
	svc := NewTranslateService(fake, 250)

	text := "alpha paragraph\n\nbeta paragraph\n\ngamma paragraph\n\n" +
		strings.Repeat("padding sentence. ", 20)
	out := svc.Translate(text, "hi")

	require.Contains(t, out, "T:alpha paragraph")
	require.Contains(t, out, "beta paragraph")
	require.NotContains(t, out, "T:beta paragraph")
	require.Contains(t, out, "T:gamma paragraph")
}

func TestTranslate_ReassemblesWithBlankLines(t *testing.T) {
	fake := &fakeTranslator{fn: func(text, target string) (string, error) {
		return "X", nil
	}}
	svc := NewTranslateService(fake, 250)

	text := "first paragraph\n\nsecond paragraph\n\n" + strings.Repeat("filler sentence. ", 30)
	out := svc.Translate(text, "kn")
	require.True(t, strings.HasPrefix(out, "X\n\nX"), "翻译结果必须用空行拼接: %q", out)
}

func TestSplitIntoChunks_ShortParagraphsKeptWhole(t *testing.T) {
	text := "para one\n\npara two\n\npara three"
	chunks := SplitIntoChunks(text, 250)
	require.Equal(t, []string{"para one", "para two", "para three"}, chunks)
}

func TestSplitIntoChunks_BulletGreedyAccumulation(t *testing.T) {
	chunks := SplitIntoChunks("Intro• aa• bb• cc", 10)
	require.Equal(t, []string{"Intro• aa", "• bb• cc"}, chunks)
}

func TestSplitIntoChunks_SentenceGreedyAccumulation(t *testing.T) {
	chunks := SplitIntoChunks(strings.Repeat("x", 20)+". One. Two. Three.", 25)
	require.Equal(t, []string{strings.Repeat("x", 20) + ".One.", "Two.Three."}, chunks)
}

func TestSplitIntoChunks_MaxLengthInvariant(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		sb.WriteString(fmt.Sprintf("• bullet item number %d with some detail ", i))
	}
	sb.WriteString("\n\n")
	for i := 0; i < 40; i++ {
		sb.WriteString(fmt.Sprintf("Sentence number %d carries on for a while. ", i))
	}

	chunks := SplitIntoChunks(sb.String(), 250)
	require.NotEmpty(t, chunks)
	for _, chunk := range chunks {
		require.LessOrEqual(t, utf8.RuneCountInString(chunk), 250, "chunk=%q", chunk)
	}
}

func TestSplitIntoChunks_IndivisibleUnitKeptWhole(t *testing.T) {
	// 单个超限句子不做硬切，保持完整
	giant := strings.Repeat("w", 300) + ". Short one."
	chunks := SplitIntoChunks(giant, 250)

	found := false
	for _, chunk := range chunks {
		if utf8.RuneCountInString(chunk) > 250 {
			require.Contains(t, chunk, strings.Repeat("w", 300))
			found = true
		}
	}
	require.True(t, found, "超长的不可分句子必须整体保留")
}

func TestSplitIntoChunks_RuneCounting(t *testing.T) {
	// 长度按字符数而不是字节数计算
	devanagari := strings.Repeat("न", 200) // 600字节，200字符
	chunks := SplitIntoChunks(devanagari+"\n\n"+devanagari, 250)
	require.Equal(t, []string{devanagari, devanagari}, chunks)
}

func newTestTranslationConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Translation.BaseURL = baseURL
	cfg.Translation.MaxChunkChars = 250
	cfg.Translation.TimeoutSec = 2
	return cfg
}

func TestMyMemoryClient_Success(t *testing.T) {
	var gotQuery, gotLangpair string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotLangpair = r.URL.Query().Get("langpair")
		fmt.Fprint(w, `{"responseData":{"translatedText":"नमस्ते"},"responseStatus":200}`)
	}))
	defer server.Close()

	client := NewMyMemoryClient(newTestTranslationConfig(server.URL))
	out, err := client.TranslateChunk("hello", "hi")
	require.NoError(t, err)
	require.Equal(t, "नमस्ते", out)
	require.Equal(t, "hello", gotQuery)
	require.Equal(t, "en|hi", gotLangpair)
}

func TestMyMemoryClient_Non200Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewMyMemoryClient(newTestTranslationConfig(server.URL))
	_, err := client.TranslateChunk("hello", "hi")
	require.Error(t, err)
}

func TestMyMemoryClient_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"responseData":`)
	}))
	defer server.Close()

	client := NewMyMemoryClient(newTestTranslationConfig(server.URL))
	_, err := client.TranslateChunk("hello", "hi")
	require.Error(t, err)
}

func TestMyMemoryClient_EmptyTranslation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"responseData":{"translatedText":""}}`)
	}))
	defer server.Close()

	client := NewMyMemoryClient(newTestTranslationConfig(server.URL))
	_, err := client.TranslateChunk("hello", "hi")
	require.Error(t, err)
}

func TestMyMemoryClient_BlankInputSkipsCall(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewMyMemoryClient(newTestTranslationConfig(server.URL))
	out, err := client.TranslateChunk("   ", "hi")
	require.NoError(t, err)
	require.Equal(t, "   ", out)
	require.False(t, called)
}
