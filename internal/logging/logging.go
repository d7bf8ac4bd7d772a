package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Zacy-Sokach/Sitee/internal/config"
	"github.com/Zacy-Sokach/Sitee/internal/utils"
	"github.com/sirupsen/logrus"
)

// Init 根据配置初始化 logrus
// TUI 占用了终端，所以默认输出到配置目录下的日志文件而不是 stdout
func Init(cfg config.LoggingConfig) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	var output io.Writer
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	case "":
		output = defaultLogFile()
	default:
		file, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			output = defaultLogFile()
		} else {
			output = file
		}
	}
	logrus.SetOutput(output)
}

// defaultLogFile 打开配置目录下的 sitee.log，失败时丢弃日志（不能写坏终端界面）
func defaultLogFile() io.Writer {
	configDir, err := utils.GetConfigDir()
	if err != nil {
		return io.Discard
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return io.Discard
	}
	file, err := os.OpenFile(filepath.Join(configDir, "sitee.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return io.Discard
	}
	return file
}
