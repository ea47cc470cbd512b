package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPort          = 5000
	DefaultModel         = "gemini-2.5-flash"
	DefaultFallbackModel = "gemini-pro"
	DefaultBaseURL       = "https://generativelanguage.googleapis.com"
	DefaultTimeoutSec    = 60
	DefaultStaticDir     = "frontend"
)

// ErrMissingAPIKey 未配置Gemini API Key
var ErrMissingAPIKey = errors.New("GOOGLE_API_KEY not found in environment variables. Please check your .env file")

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Addr string `yaml:"-"` // 不从配置文件读取，而是在加载后计算
	} `yaml:"server"`
	Gemini struct {
		APIKey        string `yaml:"api_key"`
		Model         string `yaml:"model"`
		FallbackModel string `yaml:"fallback_model"`
		BaseURL       string `yaml:"base_url"`
		TimeoutSec    int    `yaml:"timeout_sec"` // 请求超时，单位：秒
	} `yaml:"gemini"`
	Log struct {
		Level    string `yaml:"level"`
		Format   string `yaml:"format"`
		Output   string `yaml:"output"`
		FilePath string `yaml:"file_path"`
	} `yaml:"log"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
	StaticDir  string `yaml:"static_dir"` // 前端静态文件目录
	Production bool   `yaml:"production"`
}

// Load 从默认位置加载配置：.env -> config.yaml -> 环境变量
func Load() *Config {
	// 首先尝试加载.env文件中的环境变量
	_ = godotenv.Load() // 忽略错误，如果.env文件不存在，继续使用系统环境变量
	return LoadFile("config.yaml")
}

// LoadFile 从指定的yaml文件加载配置，文件不存在时只使用环境变量
func LoadFile(path string) *Config {
	var cfg Config

	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Printf("Error loading %s: %v, falling back to environment variables", path, err)
			cfg = Config{}
		} else {
			log.Printf("Loading configuration from %s", path)
		}
	} else {
		log.Println("配置从环境变量加载")
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)
	return &cfg
}

// applyEnv 环境变量覆盖配置文件中的值
func applyEnv(cfg *Config) {
	if apiKey := os.Getenv("GOOGLE_API_KEY"); apiKey != "" {
		cfg.Gemini.APIKey = apiKey
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.Gemini.Model = model
	}
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		} else {
			log.Printf("invalid PORT %q: %v", port, err)
		}
	}
	// APP_ENV优先，未设置时兼容FLASK_ENV
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = os.Getenv("FLASK_ENV")
	}
	if env != "" {
		cfg.Production = strings.EqualFold(env, "production")
	}
	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		cfg.StaticDir = dir
	}

	// 配置中的API Key可以是环境变量引用，如 ${GOOGLE_API_KEY}
	if strings.HasPrefix(cfg.Gemini.APIKey, "${") && strings.HasSuffix(cfg.Gemini.APIKey, "}") {
		cfg.Gemini.APIKey = os.Getenv(cfg.Gemini.APIKey[2 : len(cfg.Gemini.APIKey)-1])
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	cfg.Server.Addr = fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = DefaultModel
	}
	if cfg.Gemini.FallbackModel == "" {
		cfg.Gemini.FallbackModel = DefaultFallbackModel
	}
	if cfg.Gemini.BaseURL == "" {
		cfg.Gemini.BaseURL = DefaultBaseURL
	}
	cfg.Gemini.BaseURL = strings.TrimRight(cfg.Gemini.BaseURL, "/")
	if cfg.Gemini.TimeoutSec <= 0 {
		cfg.Gemini.TimeoutSec = DefaultTimeoutSec
	}

	if cfg.Log.Level == "" {
		if cfg.Production {
			cfg.Log.Level = "info"
		} else {
			cfg.Log.Level = "debug"
		}
	}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		cfg.CORS.AllowedOrigins = []string{"*"}
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = DefaultStaticDir
	}
}

// Validate 检查启动所必需的配置，缺失时应终止进程
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		return ErrMissingAPIKey
	}
	return nil
}
