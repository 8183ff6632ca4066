// Package dbutils Хелпер-обёртка для выполнения запросов на базе sqlx и для функций подключения к БД (pgx).
package dbutils

// Подключение к БД (pgx через database/sql).

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/ellavs/tg-finance-assistant/internal/logger"
)

// Имя приложения в pg_stat_activity.
const applicationName = "tg-finance-assistant"

// Ограничение времени первого подключения.
const connectTimeout = 10 * time.Second

// pgxLogger Логгер для pgx, реализующий интерфейс Logger пакета pgx.
type pgxLogger struct{}

// Log Функция реализации интерфейса Logger пакета pgx.
func (pl *pgxLogger) Log(ctx context.Context, level pgx.LogLevel, msg string, data map[string]any) {
	var buffer bytes.Buffer
	buffer.WriteString(msg)
	for k, v := range data {
		buffer.WriteString(fmt.Sprintf(" %s=%+v", k, v))
	}
	switch level {
	case pgx.LogLevelInfo:
		logger.Info(buffer.String())
	case pgx.LogLevelWarn:
		logger.Warn(buffer.String())
	case pgx.LogLevelError:
		logger.Error(buffer.String())
	default:
		logger.Debug(buffer.String())
	}
}

// NewDBConnect Инициализация подключения к базе данных по заданным параметрам.
func NewDBConnect(ctx context.Context, connString string) (*sqlx.DB, error) {
	connConfig, err := pgx.ParseConfig(connString)
	if err != nil {
		logger.Error("Ошибка парсинга строки подключения", "err", err)
		return nil, err
	}
	connConfig.RuntimeParams["application_name"] = applicationName
	connConfig.Logger = &pgxLogger{}
	connConfig.LogLevel = pgx.LogLevelWarn
	connStr := stdlib.RegisterConnConfig(connConfig)

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	dbh, err := sqlx.ConnectContext(ctx, "pgx", connStr)
	if err != nil {
		logger.Error("Ошибка соединения с БД", "err", err)
		return nil, fmt.Errorf("prepare db connection: %w", err)
	}
	return dbh, nil
}
