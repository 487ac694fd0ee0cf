package docs

// @title CareerMate 求职助手 API
// @version 1.0
// @description 多语言求职聊天机器人后端，提供意图识别、固定话术回复、分块翻译、语音合成和简历上传
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:5000
// @BasePath /
// @schemes http https
