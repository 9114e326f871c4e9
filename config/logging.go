package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rifflock/lfshook"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ConfigureLogging sets up colored console output and, when a file path is
// configured, a rotated plain-text file sink for every level.
func ConfigureLogging(cfg *Config) error {
	log.SetLevel(logLevel(cfg.LogLevel))
	log.SetFormatter(&log.TextFormatter{ForceColors: true, FullTimestamp: false})
	log.SetOutput(os.Stdout)

	if cfg.LogFilePath == "" {
		return nil
	}

	logDir := filepath.Dir(cfg.LogFilePath)
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	writer := &lumberjack.Logger{
		Filename:   cfg.LogFilePath,
		MaxSize:    100,
		MaxBackups: 30,
		MaxAge:     cfg.LogMaxAgeDays,
		Compress:   true,
	}

	fileFmt := &log.TextFormatter{DisableColors: true, FullTimestamp: true}
	log.AddHook(lfshook.NewHook(lfshook.WriterMap{
		log.PanicLevel: writer,
		log.FatalLevel: writer,
		log.ErrorLevel: writer,
		log.WarnLevel:  writer,
		log.InfoLevel:  writer,
		log.DebugLevel: writer,
		log.TraceLevel: writer,
	}, fileFmt))

	return nil
}

func logLevel(s string) log.Level {
	switch s {
	case "DEBUG":
		return log.DebugLevel
	case "INFO":
		return log.InfoLevel
	case "WARN":
		return log.WarnLevel
	case "ERROR":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
