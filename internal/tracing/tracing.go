// Package tracing Трейсинг обработки сообщений (jaeger).
package tracing

import (
	"context"
	"io"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	"github.com/uber/jaeger-client-go/config"

	"github.com/ellavs/tg-finance-assistant/internal/clients/tg"
	"github.com/ellavs/tg-finance-assistant/internal/logger"
	"github.com/ellavs/tg-finance-assistant/internal/model/messages"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init Инициализация глобального трейсера. Параметры агента берутся из окружения (JAEGER_AGENT_HOST и др.).
// При enabled == false остается трейсер по умолчанию, спаны никуда не отправляются.
func Init(serviceName string, enabled bool) (io.Closer, error) {
	if !enabled {
		return nopCloser{}, nil
	}
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, errors.Wrap(err, "jaeger config from env")
	}
	cfg.ServiceName = serviceName
	cfg.Sampler = &config.SamplerConfig{
		Type:  "const",
		Param: 1,
	}

	closer, err := cfg.InitGlobalTracer(serviceName)
	if err != nil {
		return nil, errors.Wrap(err, "init global tracer")
	}
	return closer, nil
}

// TracingMiddleware Функция трейсинга.
func TracingMiddleware(next tg.HandlerFunc) tg.HandlerFunc {
	return func(ctx context.Context, tgUpdate tgbotapi.Update, c *tg.Client, msgModel *messages.Model) {
		span, ctx := opentracing.StartSpanFromContext(ctx, "ProcessingMessages")
		defer span.Finish()
		ext.SpanKindRPCServer.Set(span)
		if spanContext, ok := span.Context().(jaeger.SpanContext); ok {
			logger.Debug("start span trace", "traceId", spanContext.TraceID().String())
		}
		if tgUpdate.Message != nil && tgUpdate.Message.From != nil {
			span.SetTag("userID", tgUpdate.Message.From.ID)
		}
		// Выполнение процесса обработки сообщения.
		next.RunFunc(ctx, tgUpdate, c, msgModel)
	}
}
