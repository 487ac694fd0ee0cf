package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // 不从配置文件读取，而是在加载后计算
	} `yaml:"server"`
	Translation struct {
		BaseURL       string `yaml:"base_url"`        // MyMemory API地址
		MaxChunkChars int    `yaml:"max_chunk_chars"` // 单次翻译的最大字符数
		TimeoutSec    int    `yaml:"timeout_sec"`     // 单块翻译请求超时时间，单位：秒
	} `yaml:"translation"`
	TTS struct {
		BaseURL    string `yaml:"base_url"`    // 语音合成服务地址
		TimeoutSec int    `yaml:"timeout_sec"` // 语音合成请求超时时间，单位：秒
	} `yaml:"tts"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`

	DB struct {
		Host            string `yaml:"host"`
		Port            int    `yaml:"port"`
		Username        string `yaml:"username"`
		Password        string `yaml:"password"`
		Database        string `yaml:"database"`
		Charset         string `yaml:"charset"`
		ParseTime       bool   `yaml:"parse_time"`
		DSN             string `yaml:"-"`                 // 不从配置文件读取，而是在加载后计算
		MaxOpenConns    int    `yaml:"max_open_conns"`    // 最大打开连接数
		MaxIdleConns    int    `yaml:"max_idle_conns"`    // 最大空闲连接数
		ConnMaxLifetime int    `yaml:"conn_max_lifetime"` // 连接最大生命周期（分钟）
	} `yaml:"database"`
	Scheduler struct {
		CheckIntervalSec int `yaml:"check_interval_sec"` // 调度器检查间隔（秒）
		StatsHour        int `yaml:"stats_hour"`         // 每天输出聊天统计的小时（0-23）
		StatsMin         int `yaml:"stats_min"`          // 每天输出聊天统计的分钟（0-59）
	} `yaml:"scheduler"`
	Debug struct {
		Enabled          bool `yaml:"enabled"`            // 是否启用debug模式
		StatsIntervalSec int  `yaml:"stats_interval_sec"` // debug模式下统计任务的间隔，单位：秒
	} `yaml:"debug"`
}

// 翻译和语音合成服务的默认配置
const (
	defaultTranslationBaseURL = "https://api.mymemory.translated.net"
	defaultMaxChunkChars      = 250
	defaultTranslationTimeout = 10
	defaultTTSBaseURL         = "https://translate.google.com"
	defaultTTSTimeout         = 15
)

func Load() *Config {
	// 首先尝试加载.env文件中的环境变量
	_ = godotenv.Load() // 忽略错误，如果.env文件不存在，继续使用系统环境变量

	var cfg Config

	// 尝试从config.yaml文件加载配置
	if data, err := os.ReadFile("config.yaml"); err == nil {
		err = yaml.Unmarshal(data, &cfg)
		if err != nil {
			log.Printf("Error loading config.yaml: %v, falling back to environment variables", err)
			return loadFromEnv()
		}
		log.Println("Loading configuration from config.yaml")

		// 计算 Server.Addr 字段
		cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

		// 从环境变量中加载数据库用户名和密码
		if envUsername := os.Getenv("DATABASE_USERNAME"); envUsername != "" {
			cfg.DB.Username = envUsername
		}
		if envPassword := os.Getenv("DATABASE_PASSWORD"); envPassword != "" {
			cfg.DB.Password = envPassword
		}

		// 计算 DB.DSN 字段
		if cfg.DB.DSN == "" {
			cfg.DB.DSN = buildDSN(&cfg)
		}

		applyDefaults(&cfg)
		return &cfg
	}

	// 如果config.yaml不存在，则完全从环境变量加载配置
	return loadFromEnv()
}

func loadFromEnv() *Config {
	// 当config.yaml加载失败时，创建一个最小配置
	var cfg Config

	// 设置服务器地址
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	cfg.Server.Addr = fmt.Sprintf(":%d", cfg.Server.Port)

	// 只从环境变量中加载敏感信息
	if username := os.Getenv("DATABASE_USERNAME"); username != "" {
		cfg.DB.Username = username
	}
	if password := os.Getenv("DATABASE_PASSWORD"); password != "" {
		cfg.DB.Password = password
	}
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		cfg.DB.DSN = dsn
	} else if cfg.DB.Host != "" {
		cfg.DB.DSN = buildDSN(&cfg)
	}

	// 外部服务地址允许通过环境变量覆盖
	if baseURL := os.Getenv("TRANSLATION_BASE_URL"); baseURL != "" {
		cfg.Translation.BaseURL = baseURL
	}
	if baseURL := os.Getenv("TTS_BASE_URL"); baseURL != "" {
		cfg.TTS.BaseURL = baseURL
	}

	applyDefaults(&cfg)
	log.Println("配置从环境变量加载，部分配置可能缺失")
	return &cfg
}

// buildDSN 根据数据库配置构建DSN
func buildDSN(cfg *Config) string {
	if cfg.DB.Charset == "" {
		cfg.DB.Charset = "utf8mb4"
	}

	parseTime := ""
	if cfg.DB.ParseTime {
		parseTime = "&parseTime=true"
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s%s",
		cfg.DB.Username,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Database,
		cfg.DB.Charset,
		parseTime)
}

// applyDefaults 为外部翻译和语音合成服务设置默认配置
func applyDefaults(cfg *Config) {
	if cfg.Translation.BaseURL == "" {
		cfg.Translation.BaseURL = defaultTranslationBaseURL
	}
	if cfg.Translation.MaxChunkChars <= 0 {
		cfg.Translation.MaxChunkChars = defaultMaxChunkChars
	}
	if cfg.Translation.TimeoutSec <= 0 {
		cfg.Translation.TimeoutSec = defaultTranslationTimeout
	}
	if cfg.TTS.BaseURL == "" {
		cfg.TTS.BaseURL = defaultTTSBaseURL
	}
	if cfg.TTS.TimeoutSec <= 0 {
		cfg.TTS.TimeoutSec = defaultTTSTimeout
	}
}
