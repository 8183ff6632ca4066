// Сервис истории расходов: читает события о сохранении расходов из кафки и пишет их в finance_history.
package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"github.com/ellavs/tg-finance-assistant/internal/config"
	"github.com/ellavs/tg-finance-assistant/internal/helpers/dbutils"
	"github.com/ellavs/tg-finance-assistant/internal/helpers/kafka"
	"github.com/ellavs/tg-finance-assistant/internal/logger"
	"github.com/ellavs/tg-finance-assistant/internal/model/db"
	"github.com/ellavs/tg-finance-assistant/internal/tasks/healthserver"
	"github.com/ellavs/tg-finance-assistant/internal/tasks/historywriter"
	"github.com/ellavs/tg-finance-assistant/internal/tracing"
	"github.com/ellavs/tg-finance-assistant/migrations"
)

const (
	serviceName         = "tg-finance-history"
	healthCheckInterval = 15 * time.Second
)

func main() {
	configPath := flag.String("config", config.DefaultConfigFile, "путь к файлу конфигурации")
	flag.Parse()

	logger.Info("[History service] Старт приложения")
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	defer cancel()

	configService, err := config.New(*configPath)
	if err != nil {
		logger.Fatal("[History service] Ошибка получения файла конфигурации:", "err", err)
	}
	cfg := configService.GetConfig()
	if len(cfg.BrokersList) == 0 {
		logger.Fatal("[History service] Не задан список брокеров кафки.")
	}

	tracingCloser, err := tracing.Init(serviceName, cfg.TracingEnabled)
	if err != nil {
		logger.Fatal("[History service] Ошибка инициализации трейсинга:", "err", err)
	}
	defer tracingCloser.Close()

	// Инициализация хранилищ (подключение к базе данных и миграции).
	dbconn, err := dbutils.NewDBConnect(ctx, cfg.ConnectionStringDB)
	if err != nil {
		logger.Fatal("[History service] Ошибка подключения к базе данных:", "err", err)
	}
	defer dbconn.Close()
	if err := dbutils.RunMigrations(dbconn, migrations.FS); err != nil {
		logger.Fatal("[History service] Ошибка применения миграций:", "err", err)
	}
	historyStorage := db.NewHistoryStorage(dbconn)

	health := healthserver.New(db.NewUserStorage(dbconn), serviceName, healthCheckInterval)
	if err := healthserver.StartHealthServer(ctx, cfg.HealthAddr, health); err != nil {
		logger.Fatal("[History service] Ошибка запуска сервера проверки состояния:", "err", err)
	}

	// Инициализация кафки для получения сообщений из очереди.
	kafkaConsumer, err := kafka.NewConsumer(cfg.BrokersList, cfg.KafkaTopic, cfg.HistoryConsumerName)
	if err != nil {
		logger.Fatal("[History service] Ошибка инициализации кафки:", "err", err)
	}
	defer kafkaConsumer.Close()

	// Чтение сообщений из очереди до сигнала завершения.
	writer := historywriter.New(historyStorage)
	if err := kafkaConsumer.RunConsume(ctx, writer.HandleMessage); err != nil {
		logger.Error("[History service] Ошибка чтения кафки:", "err", err)
	}

	logger.Info("[History service] Завершение приложения")
}
