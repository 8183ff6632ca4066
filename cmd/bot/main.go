package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"
	"time"

	"github.com/ellavs/tg-finance-assistant/internal/cache"
	"github.com/ellavs/tg-finance-assistant/internal/clients/exchangeapi"
	"github.com/ellavs/tg-finance-assistant/internal/clients/tg"
	"github.com/ellavs/tg-finance-assistant/internal/config"
	"github.com/ellavs/tg-finance-assistant/internal/helpers/dbutils"
	"github.com/ellavs/tg-finance-assistant/internal/helpers/kafka"
	"github.com/ellavs/tg-finance-assistant/internal/helpers/net_http"
	"github.com/ellavs/tg-finance-assistant/internal/logger"
	"github.com/ellavs/tg-finance-assistant/internal/metrics"
	"github.com/ellavs/tg-finance-assistant/internal/model/db"
	"github.com/ellavs/tg-finance-assistant/internal/model/dialog"
	"github.com/ellavs/tg-finance-assistant/internal/model/events"
	rates "github.com/ellavs/tg-finance-assistant/internal/model/exchangerates"
	"github.com/ellavs/tg-finance-assistant/internal/model/messages"
	uploader "github.com/ellavs/tg-finance-assistant/internal/tasks/exchangeuploader"
	"github.com/ellavs/tg-finance-assistant/internal/tasks/healthserver"
	"github.com/ellavs/tg-finance-assistant/internal/tracing"
	"github.com/ellavs/tg-finance-assistant/migrations"
)

const (
	serviceName         = "tg-finance-assistant"
	healthCheckInterval = 15 * time.Second
	ratesCacheSize      = 5
)

func main() {
	configPath := flag.String("config", config.DefaultConfigFile, "путь к файлу конфигурации")
	flag.Parse()

	logger.Info("Старт приложения")
	defer logger.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	defer cancel()

	configService, err := config.New(*configPath)
	if err != nil {
		logger.Fatal("Ошибка получения файла конфигурации:", "err", err)
	}
	cfg := configService.GetConfig()
	if err := cfg.RequireToken(); err != nil {
		logger.Fatal("Ошибка конфигурации:", "err", err)
	}

	// Трейсинг.
	tracingCloser, err := tracing.Init(serviceName, cfg.TracingEnabled)
	if err != nil {
		logger.Fatal("Ошибка инициализации трейсинга:", "err", err)
	}
	defer tracingCloser.Close()

	// Оборачивание в Middleware функции обработки сообщения для метрик и трейсинга.
	tgProcessingFuncHandler := tg.HandlerFunc(tg.ProcessingMessages)
	tgProcessingFuncHandler = metrics.MetricsMiddleware(tgProcessingFuncHandler)
	tgProcessingFuncHandler = tracing.TracingMiddleware(tgProcessingFuncHandler)

	// Инициализация телеграм клиента.
	tgClient, err := tg.New(configService, tgProcessingFuncHandler, cfg.Workers)
	if err != nil {
		logger.Fatal("Ошибка инициализации ТГ-клиента:", "err", err)
	}

	// Инициализация хранилищ (подключение к базе данных и миграции).
	dbconn, err := dbutils.NewDBConnect(ctx, cfg.ConnectionStringDB)
	if err != nil {
		logger.Fatal("Ошибка подключения к базе данных:", "err", err)
	}
	defer dbconn.Close()
	if err := dbutils.RunMigrations(dbconn, migrations.FS); err != nil {
		logger.Fatal("Ошибка применения миграций:", "err", err)
	}
	userStorage := db.NewUserStorage(dbconn)

	// Курсы валют: клиент внешнего источника и кэш последней таблицы.
	ratesClient := exchangeapi.New(cfg.RatesURL, cfg.RatesAPIKey, net_http.New[exchangeapi.ExchangeRatesJson]())
	exchangeRates := rates.New(ratesClient, cache.NewLRU(ratesCacheSize), cfg.RatesTimeoutDuration(), cfg.RatesCacheDuration())

	// Отправка событий о сохранении расходов (если заданы брокеры).
	var publisher dialog.EventPublisher = events.NopPublisher{}
	if len(cfg.BrokersList) > 0 {
		kafkaProducer, err := kafka.NewSyncProducer(cfg.BrokersList, cfg.KafkaTopic)
		if err != nil {
			logger.Fatal("Ошибка инициализации кафки для отправки сообщений:", "err", err)
		}
		defer kafkaProducer.Close()
		publisher = events.NewPublisher(kafkaProducer)
	} else {
		logger.Warn("Список брокеров кафки пуст, события о сохранении расходов не отправляются.")
	}

	// Диалог ввода расходов и основная модель.
	engine := dialog.NewEngine(dialog.NewMemorySessionStore(), userStorage, publisher)
	msgModel := messages.New(tgClient, userStorage, exchangeRates, engine, messages.NewTips(messages.DefaultTips, nil))

	// Запуск периодического обновления курсов валют.
	uploader.ExchangeRatesUpdater(ctx, exchangeRates, cfg.RatesUpdateDuration())

	// Сервер метрик.
	metricsServer := metrics.StartServer(cfg.MetricsAddr)
	defer metricsServer.Close()

	// Сервер проверки состояния.
	health := healthserver.New(userStorage, serviceName, healthCheckInterval)
	if err := healthserver.StartHealthServer(ctx, cfg.HealthAddr, health); err != nil {
		logger.Fatal("Ошибка запуска сервера проверки состояния:", "err", err)
	}

	// Запуск ТГ-клиента (до сигнала завершения).
	tgClient.ListenUpdates(ctx, msgModel)

	logger.Info("Завершение приложения")
}
