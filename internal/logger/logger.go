// Package logger Глобальный логгер приложения на базе zap.
package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
)

// Переменная окружения выбора режима логирования ("production" или "development").
const logModeEnv = "LOG_MODE"

// Глобальная переменная логгера.
var logger *zap.Logger

// init Инициализация логгера один раз на всё приложение.
func init() {
	var (
		localLogger *zap.Logger
		err         error
	)
	if os.Getenv(logModeEnv) == "production" {
		localLogger, err = zap.NewProduction()
	} else {
		localLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatal("Ошибка инициализации логгера zap", err)
	}

	logger = localLogger
}

// Sync Сброс буферов логгера (вызывается при завершении приложения).
func Sync() {
	_ = logger.Sync()
}

// Fatal - запись в лог, уровень Fatal.
func Fatal(msg string, keysAndValues ...interface{}) {
	logger.Sugar().Fatalw(msg, keysAndValues...)
}

// Error - запись в лог, уровень Error.
func Error(msg string, keysAndValues ...interface{}) {
	logger.Sugar().Errorw(msg, keysAndValues...)
}

// Warn - запись в лог, уровень Warn.
func Warn(msg string, keysAndValues ...interface{}) {
	logger.Sugar().Warnw(msg, keysAndValues...)
}

// Info - запись в лог, уровень Info.
func Info(msg string, keysAndValues ...interface{}) {
	logger.Sugar().Infow(msg, keysAndValues...)
}

// Debug - запись в лог, уровень Debug.
func Debug(msg string, keysAndValues ...interface{}) {
	logger.Sugar().Debugw(msg, keysAndValues...)
}

// DebugZap - запись в лог типизированных полей, уровень Debug.
func DebugZap(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
}
