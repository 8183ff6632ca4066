// Package config Загрузка настроек приложения (YAML-файл, .env и переменные окружения).
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ellavs/tg-finance-assistant/internal/logger"
)

// DefaultConfigFile Путь к файлу конфигурации по умолчанию.
const DefaultConfigFile = "data/config.yaml"

// Префикс переменных окружения, например FINBOT_TOKEN.
const envPrefix = "FINBOT"

// Значения по умолчанию.
const (
	defaultRatesURL            = "https://v6.exchangerate-api.com/v6"
	defaultRatesTimeout        = 5  // секунд
	defaultRatesCachePeriod    = 30 // минут
	defaultRatesUpdatePeriod   = 30 // минут
	defaultKafkaTopic          = "tgfinance"
	defaultMetricsAddr         = "0.0.0.0:8080"
	defaultHealthAddr          = ":50051"
	defaultWorkers             = 8
	defaultHistoryConsumerName = "history"
)

type Config struct {
	Token               string   `yaml:"token" envconfig:"TOKEN"`                           // Токен бота в телеграме.
	ConnectionStringDB  string   `yaml:"ConnectionStringDB" envconfig:"DB"`                 // Строка подключения к базе данных.
	RatesURL            string   `yaml:"RatesURL" envconfig:"RATES_URL"`                    // Адрес сервиса курсов валют.
	RatesAPIKey         string   `yaml:"RatesAPIKey" envconfig:"RATES_API_KEY"`             // Ключ доступа к сервису курсов валют.
	RatesTimeout        int64    `yaml:"RatesTimeout" envconfig:"RATES_TIMEOUT"`            // Ограничение времени запроса курсов (в секундах).
	RatesCachePeriod    int64    `yaml:"RatesCachePeriod" envconfig:"RATES_CACHE_PERIOD"`   // Время жизни курсов в кэше (в минутах).
	RatesUpdatePeriod   int64    `yaml:"RatesUpdatePeriod" envconfig:"RATES_UPDATE_PERIOD"` // Периодичность обновления курсов (в минутах).
	KafkaTopic          string   `yaml:"KafkaTopic" envconfig:"KAFKA_TOPIC"`                // Наименование топика Kafka.
	BrokersList         []string `yaml:"BrokersList" envconfig:"KAFKA_BROKERS"`             // Список адресов брокеров (пустой - события не отправляются).
	HistoryConsumerName string   `yaml:"HistoryConsumerName" envconfig:"HISTORY_CONSUMER"`  // Имя группы потребителей сервиса истории.
	MetricsAddr         string   `yaml:"MetricsAddr" envconfig:"METRICS_ADDR"`              // Адрес сервера метрик.
	HealthAddr          string   `yaml:"HealthAddr" envconfig:"HEALTH_ADDR"`                // Адрес gRPC сервера проверки состояния.
	Workers             int      `yaml:"Workers" envconfig:"WORKERS"`                       // Количество обработчиков входящих сообщений.
	TracingEnabled      bool     `yaml:"TracingEnabled" envconfig:"TRACING_ENABLED"`        // Включение трейсинга (jaeger).
}

type Service struct {
	config Config
}

// New Загрузка конфигурации из файла path (пустой - файл по умолчанию),
// затем из .env и переменных окружения (они имеют приоритет над файлом).
func New(path string) (*Service, error) {
	if path == "" {
		path = DefaultConfigFile
	}
	s := &Service{}

	rawYAML, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(rawYAML, &s.config); err != nil {
			logger.Error("Ошибка parsing yaml", "err", err)
			return nil, errors.Wrap(err, "parsing yaml")
		}
	case os.IsNotExist(err):
		logger.Warn("Файл конфигурации не найден, используются переменные окружения", "path", path)
	default:
		logger.Error("Ошибка reading config file", "err", err)
		return nil, errors.Wrap(err, "reading config file")
	}

	// .env не обязателен.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("Ошибка чтения .env", "err", err)
	}
	if err := envconfig.Process(envPrefix, &s.config); err != nil {
		logger.Error("Ошибка чтения переменных окружения", "err", err)
		return nil, errors.Wrap(err, "processing env")
	}

	if err := Normalize(&s.config); err != nil {
		return nil, err
	}
	return s, nil
}

// Normalize Проверка обязательных параметров и заполнение значений по умолчанию.
func Normalize(cfg *Config) error {
	if cfg == nil {
		return errors.New("nil config")
	}
	cfg.Token = strings.TrimSpace(cfg.Token)
	if strings.TrimSpace(cfg.ConnectionStringDB) == "" {
		return errors.New("ConnectionStringDB is required")
	}
	if cfg.RatesTimeout < 0 || cfg.RatesCachePeriod < 0 || cfg.RatesUpdatePeriod < 0 || cfg.Workers < 0 {
		return errors.New("periods, timeouts and workers must be >= 0")
	}
	cfg.RatesURL = strings.TrimRight(cfg.RatesURL, "/")
	if cfg.RatesURL == "" {
		cfg.RatesURL = defaultRatesURL
	}
	if cfg.RatesTimeout == 0 {
		cfg.RatesTimeout = defaultRatesTimeout
	}
	if cfg.RatesCachePeriod == 0 {
		cfg.RatesCachePeriod = defaultRatesCachePeriod
	}
	if cfg.RatesUpdatePeriod == 0 {
		cfg.RatesUpdatePeriod = defaultRatesUpdatePeriod
	}
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = defaultKafkaTopic
	}
	if cfg.HistoryConsumerName == "" {
		cfg.HistoryConsumerName = defaultHistoryConsumerName
	}
	if cfg.MetricsAddr == "" {
		cfg.MetricsAddr = defaultMetricsAddr
	}
	if cfg.HealthAddr == "" {
		cfg.HealthAddr = defaultHealthAddr
	}
	if cfg.Workers == 0 {
		cfg.Workers = defaultWorkers
	}
	return nil
}

// ErrNoToken Не задан токен бота (нужен только боту, сервису истории - нет).
var ErrNoToken = errors.New("token is required")

// RequireToken Проверка наличия токена бота.
func (c Config) RequireToken() error {
	if c.Token == "" {
		return ErrNoToken
	}
	return nil
}

func (s *Service) Token() string {
	return s.config.Token
}

func (s *Service) GetConfig() Config {
	return s.config
}

// RatesTimeoutDuration Ограничение времени запроса курсов валют.
func (c Config) RatesTimeoutDuration() time.Duration {
	return time.Duration(c.RatesTimeout) * time.Second
}

// RatesCacheDuration Время жизни курсов в кэше.
func (c Config) RatesCacheDuration() time.Duration {
	return time.Duration(c.RatesCachePeriod) * time.Minute
}

// RatesUpdateDuration Периодичность обновления курсов.
func (c Config) RatesUpdateDuration() time.Duration {
	return time.Duration(c.RatesUpdatePeriod) * time.Minute
}
