// Package events Событие о сохранении расходов: кодирование и отправка в очередь сообщений.
package events

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	types "github.com/ellavs/tg-finance-assistant/internal/model/bottypes"
)

// MessageProducer Отправка сообщения в топик (kafka.KafkaProducer).
type MessageProducer interface {
	SendMessage(key string, value string) (partition int32, offset int64, err error)
}

// Publisher Отправка событий FinancesCommitted в кафку. Ключ сообщения - идентификатор пользователя.
type Publisher struct {
	producer MessageProducer
}

func NewPublisher(producer MessageProducer) *Publisher {
	return &Publisher{producer: producer}
}

// PublishFinancesCommitted Отправка события о сохранении расходов.
func (p *Publisher) PublishFinancesCommitted(ctx context.Context, event types.FinancesCommittedEvent) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "PublishFinancesCommitted")
	defer span.Finish()

	value, err := Encode(event)
	if err != nil {
		return err
	}
	if _, _, err := p.producer.SendMessage(Key(event.UserID), value); err != nil {
		return errors.Wrap(err, "publish finances committed")
	}
	return nil
}

// NopPublisher Отправка событий отключена (список брокеров не задан).
type NopPublisher struct{}

func (NopPublisher) PublishFinancesCommitted(context.Context, types.FinancesCommittedEvent) error {
	return nil
}

// Key Ключ сообщения для пользователя.
func Key(userID int64) string {
	return strconv.FormatInt(userID, 10)
}

// Encode Сериализация события в JSON.
func Encode(event types.FinancesCommittedEvent) (string, error) {
	raw, err := json.Marshal(event)
	if err != nil {
		return "", errors.Wrap(err, "encode finances committed event")
	}
	return string(raw), nil
}

// Decode Разбор события из сообщения кафки. eventId должен быть UUID, ключ должен совпадать с пользователем события.
func Decode(key string, value string) (types.FinancesCommittedEvent, error) {
	var event types.FinancesCommittedEvent
	if err := json.Unmarshal([]byte(value), &event); err != nil {
		return event, errors.Wrap(err, "decode finances committed event")
	}
	if _, err := uuid.Parse(event.EventID); err != nil {
		return event, errors.Wrapf(err, "invalid eventId %q", event.EventID)
	}
	if key != Key(event.UserID) {
		return event, errors.Errorf("message key %q does not match user %d", key, event.UserID)
	}
	return event, nil
}
