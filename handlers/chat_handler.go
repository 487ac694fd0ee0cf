package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"careermate/config"
	_ "careermate/docs" // 导入 swagger 文档
	"careermate/logger"
	"careermate/models"
	"careermate/repository"
	"careermate/services"
	"careermate/utils"
)

// HomeHandler godoc
// @Summary 服务状态
// @Description 返回服务运行状态信息
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]interface{} "成功"
// @Router / [get]
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"message": "🚀 CareerMate AI Job Assistant - Backend Running!",
	})
}

// WebHandler 返回内置的网页界面
func WebHandler(w http.ResponseWriter, r *http.Request) {
	page, err := os.ReadFile("templates/index.html")
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "Error loading web interface: %v", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// ChatHandler godoc
// @Summary 聊天
// @Description 识别用户消息的意图并返回对应话术，非英语时翻译话术，同时追加保存聊天记录
// @Tags 聊天
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "聊天请求"
// @Success 200 {object} models.ChatResponse "成功"
// @Failure 400 {object} models.ErrorResponse "消息为空"
// @Failure 500 {object} models.ErrorResponse "服务器错误"
// @Router /api/chat [post]
func ChatHandler(w http.ResponseWriter, r *http.Request, chatSvc *services.ChatService) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteClientError(w, "Invalid request body")
		return
	}

	// 压缩消息内部的连续空白，空消息直接拒绝
	userMessage := utils.CollapseWhitespace(req.Message)
	if userMessage == "" {
		utils.WriteClientError(w, "Empty message received")
		return
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	logger.Info("收到聊天请求",
		"message_preview", utils.Truncate(userMessage, 100),
		"message_len", len(userMessage),
		"language", language)

	botResponse, suggestions := chatSvc.BuildReply(userMessage, language)

	// 聊天记录保存失败只记录日志，不影响响应
	if err := repository.SaveChatExchange(userMessage, botResponse, time.Now()); err != nil {
		logger.Error("聊天记录保存失败", "error", err)
	}

	utils.WriteSuccessResponse(w, models.ChatResponse{
		Success:     true,
		Response:    botResponse,
		Suggestions: suggestions,
		Language:    language,
		Timestamp:   time.Now().Format(time.RFC3339),
	})
}

// SpeakHandler godoc
// @Summary 语音合成
// @Description 把文本合成为指定语言的MP3音频并作为附件返回
// @Tags 语音
// @Accept json
// @Produce audio/mpeg
// @Param request body models.SpeakRequest true "语音合成请求"
// @Success 200 {file} binary "MP3音频"
// @Failure 400 {object} models.ErrorResponse "文本为空"
// @Failure 500 {object} models.ErrorResponse "合成失败"
// @Router /api/speak [post]
func SpeakHandler(w http.ResponseWriter, r *http.Request, speech services.SpeechSynthesizer) {
	var req models.SpeakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteClientError(w, "Invalid request body")
		return
	}

	if utils.CollapseWhitespace(req.Text) == "" {
		utils.WriteClientError(w, "No text provided")
		return
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	audio, err := speech.Synthesize(req.Text, language)
	if err != nil {
		utils.WriteServerError(w, err)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="speech_%s.mp3"`, language))
	w.Write(audio)
}

// UploadResumeHandler godoc
// @Summary 简历上传
// @Description 接收multipart简历文件，返回固定确认信息和模拟分析结果，不做真实解析
// @Tags 简历
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "简历文件"
// @Success 200 {object} models.UploadResponse "成功"
// @Failure 400 {object} models.ErrorResponse "缺少文件"
// @Router /api/upload-resume [post]
func UploadResumeHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.WriteClientError(w, "No file uploaded")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		utils.WriteClientError(w, "No file uploaded")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		utils.WriteClientError(w, "No file selected")
		return
	}

	logger.Info("收到简历上传", "filename", header.Filename, "size", header.Size)

	utils.WriteSuccessResponse(w, models.UploadResponse{
		Success: true,
		Message: fmt.Sprintf("📄 Resume %q uploaded successfully! I can help you optimize it and find matching job opportunities.", header.Filename),
		Analysis: models.ResumeAnalysis{
			SkillsFound: []string{"Python", "Machine Learning", "Data Analysis"},
			JobSuggestions: []models.JobSuggestion{
				{
					Title:       "Data Scientist",
					Company:     "Tech Corp",
					MatchScore:  85,
					LinkedInURL: "https://linkedin.com/jobs/search/?keywords=data%20scientist",
				},
			},
		},
	})
}

// HistoryHandler godoc
// @Summary 聊天历史
// @Description 按时间倒序返回最近的聊天记录
// @Tags 聊天
// @Produce json
// @Param limit query int false "返回条数，默认20"
// @Success 200 {object} models.HistoryResponse "成功"
// @Failure 500 {object} models.ErrorResponse "服务器错误"
// @Router /api/history [get]
func HistoryHandler(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	history, err := repository.RecentExchanges(limit)
	if err != nil {
		utils.WriteServerError(w, err)
		return
	}

	utils.WriteSuccessResponse(w, models.HistoryResponse{
		Success: true,
		Count:   len(history),
		History: history,
	})
}

func RegisterRoutes(r *chi.Mux, cfg *config.Config) {
	chatSvc := services.NewChatServiceFromConfig(cfg)
	speechSvc := services.NewSpeechService(cfg)

	// Swagger 文档
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // Swagger JSON 的 URL
	))

	r.Get("/", HomeHandler)
	r.Get("/web", WebHandler)

	r.Post("/api/chat", func(w http.ResponseWriter, r *http.Request) {
		ChatHandler(w, r, chatSvc)
	})

	r.Post("/api/speak", func(w http.ResponseWriter, r *http.Request) {
		SpeakHandler(w, r, speechSvc)
	})

	r.Post("/api/upload-resume", UploadResumeHandler)

	r.Get("/api/history", HistoryHandler)
}
