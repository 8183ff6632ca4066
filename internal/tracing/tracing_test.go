package tracing

import (
	"context"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellavs/tg-finance-assistant/internal/clients/tg"
	"github.com/ellavs/tg-finance-assistant/internal/model/messages"
)

func Test_TracingMiddleware_ShouldStartSpan(t *testing.T) {
	tracer := mocktracer.New()
	prev := opentracing.GlobalTracer()
	opentracing.SetGlobalTracer(tracer)
	defer opentracing.SetGlobalTracer(prev)

	handler := TracingMiddleware(func(ctx context.Context, tgUpdate tgbotapi.Update, c *tg.Client, msgModel *messages.Model) {
		assert.NotNil(t, opentracing.SpanFromContext(ctx))
	})
	handler.RunFunc(context.Background(), tgbotapi.Update{
		Message: &tgbotapi.Message{Text: "/start", From: &tgbotapi.User{ID: 123}},
	}, nil, nil)

	spans := tracer.FinishedSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "ProcessingMessages", spans[0].OperationName)
	assert.Equal(t, int64(123), spans[0].Tag("userID"))
}

func Test_Init_ShouldReturnNopCloser_WhenDisabled(t *testing.T) {
	closer, err := Init("tg-finance-assistant", false)

	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}
