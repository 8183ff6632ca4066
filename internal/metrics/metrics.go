// Package metrics Метрики обработки сообщений и HTTP-сервер для их выгрузки.
package metrics

import (
	"context"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ellavs/tg-finance-assistant/internal/clients/tg"
	"github.com/ellavs/tg-finance-assistant/internal/logger"
	"github.com/ellavs/tg-finance-assistant/internal/model/messages"
)

// Метрики.
var (
	InFlightRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "tg",
		Subsystem: "messages",
		Name:      "in_flight", // Сообщения в обработке.
	})
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tg",
			Subsystem: "messages",
			Name:      "messages_total", // Общее количество сообщений.
		},
		[]string{"cmd"},
	)
	HistogramResponseTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tg",
			Subsystem: "messages",
			Name:      "histogram_response_time_seconds", // Время обработки сообщений.
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"cmd"},
	)
)

// NewServer HTTP-сервер метрик (адрес вида "0.0.0.0:8080", путь /metrics).
func NewServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// StartServer Запуск сервера метрик в отдельной горутине.
func StartServer(addr string) *http.Server {
	srv := NewServer(addr)
	logger.Info("Старт сервиса метрик.", "addr", addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Metrics public error", "err", err)
		}
	}()
	return srv
}

// MetricsMiddleware Функция сбора метрик.
func MetricsMiddleware(next tg.HandlerFunc) tg.HandlerFunc {
	return func(ctx context.Context, tgUpdate tgbotapi.Update, c *tg.Client, msgModel *messages.Model) {
		InFlightRequests.Inc()
		defer InFlightRequests.Dec()

		// Сохранение времени начала обработки сообщения.
		startTime := time.Now()
		// Выполнение процесса обработки сообщения.
		next.RunFunc(ctx, tgUpdate, c, msgModel)
		// Расчет продолжительности обработки сообщения.
		duration := time.Since(startTime)

		cmd := commandLabel(tgUpdate)
		MessagesTotal.WithLabelValues(cmd).Inc()
		HistogramResponseTime.
			WithLabelValues(cmd).
			Observe(duration.Seconds())
	}
}

// commandLabel Определение команды для сохранения в метрике.
func commandLabel(tgUpdate tgbotapi.Update) string {
	if tgUpdate.Message == nil {
		return "none"
	}
	return messages.CommandLabel(tgUpdate.Message.Text)
}
