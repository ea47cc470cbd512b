package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"educator_ai/config"
)

// Logger 全局日志记录器，Init之前使用slog默认logger
var Logger = slog.Default()

var (
	logFile   *os.File // file/both输出时打开的日志文件
	logFileMu sync.Mutex
)

// parseLevel 解析日志级别，无法识别时使用info
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// openWriter 根据输出目标打开writer，file/both时返回打开的文件
func openWriter(output, filePath string) (io.Writer, *os.File, error) {
	output = strings.ToLower(output)
	if output != "file" && output != "both" {
		return os.Stdout, nil, nil
	}

	// 创建日志目录
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, err
	}
	if output == "both" {
		return io.MultiWriter(os.Stdout, file), file, nil
	}
	return file, file, nil
}

// Init 使用配置初始化slog日志系统；重复调用时关闭之前打开的日志文件
func Init(cfg *config.Config) error {
	writer, file, err := openWriter(cfg.Log.Output, cfg.Log.FilePath)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Log.Level)}
	var handler slog.Handler
	if strings.EqualFold(cfg.Log.Format, "json") {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	logFileMu.Lock()
	prev := logFile
	logFile = file
	logFileMu.Unlock()

	// 设置默认logger和全局Logger变量
	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	if prev != nil {
		return prev.Close()
	}
	return nil
}

// Close 关闭日志文件，之后的日志输出到标准输出
func Close() error {
	logFileMu.Lock()
	file := logFile
	logFile = nil
	logFileMu.Unlock()

	if file == nil {
		return nil
	}
	Logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(Logger)
	return file.Close()
}

// Preview 截断过长的文本，用于日志输出
func Preview(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}

func Debug(msg string, args ...any) {
	Logger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Logger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Logger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Logger.Error(msg, args...)
}
