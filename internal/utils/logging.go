package utils

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogging 配置标准库日志输出，设置了日志文件时同时写入滚动文件
// 返回的 io.Writer 供 gin 的默认输出复用
func SetupLogging(logFile string) io.Writer {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	if logFile == "" {
		log.SetOutput(os.Stdout)
		return os.Stdout
	}

	w := io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    50, // MB
		MaxBackups: 5,
		MaxAge:     14, // 天
		Compress:   true,
	})
	log.SetOutput(w)
	return w
}
