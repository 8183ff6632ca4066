// Package kafka Хелпер для работы с кафкой
package kafka

import (
	"context"
	"time"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"

	"github.com/ellavs/tg-finance-assistant/internal/logger"
)

// Пауза перед повторным подключением к группе после ошибки.
const retryBackoff = 2 * time.Second

// HandlerFunc Обработка сообщения. Сообщение с ошибкой обработки не подтверждается
// и будет прочитано повторно.
type HandlerFunc func(ctx context.Context, key string, value string) error

type KafkaConsumer struct {
	consumer sarama.ConsumerGroup
	topic    string
}

// NewConsumer Группа потребителей groupID для топика topic.
func NewConsumer(brokerList []string, topic string, groupID string) (*KafkaConsumer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Consumer.Offsets.Initial = sarama.OffsetOldest
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.BalanceStrategyRange}

	consumerGroup, err := sarama.NewConsumerGroup(brokerList, topic+"-"+groupID, config)
	if err != nil {
		return nil, errors.Wrap(err, "Starting consumer group")
	}

	return &KafkaConsumer{
		consumer: consumerGroup,
		topic:    topic,
	}, nil
}

// RunConsume Чтение сообщений до отмены контекста.
// Consume завершается при перебалансировке группы, поэтому вызывается в цикле.
func (c *KafkaConsumer) RunConsume(ctx context.Context, handlerFunc HandlerFunc) error {
	handler := &Consumer{handlerFunc: handlerFunc}
	for {
		err := c.consumer.Consume(ctx, []string{c.topic}, handler)
		if ctx.Err() != nil {
			return nil
		}
		if errors.Is(err, sarama.ErrClosedConsumerGroup) {
			return errors.Wrap(err, "consuming via handler")
		}
		if err != nil {
			logger.Error("Ошибка чтения кафки", "topic", c.topic, "err", err)
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(retryBackoff):
			}
		}
	}
}

func (c *KafkaConsumer) Close() error {
	return c.consumer.Close()
}

// Consumer represents a Sarama consumer group consumer.
type Consumer struct {
	handlerFunc HandlerFunc
}

// Setup is run at the beginning of a new session, before ConsumeClaim.
func (consumer *Consumer) Setup(session sarama.ConsumerGroupSession) error {
	logger.Info("consumer - setup", "memberID", session.MemberID())
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(session sarama.ConsumerGroupSession) error {
	logger.Info("consumer - cleanup", "memberID", session.MemberID())
	return nil
}

// ConsumeClaim must start a consumer loop of ConsumerGroupClaim's Messages().
// При ошибке обработки сессия завершается, чтение продолжится с последнего подтвержденного сообщения.
func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case <-session.Context().Done():
			return nil
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := consumer.handlerFunc(session.Context(), string(message.Key), string(message.Value)); err != nil {
				return errors.Wrapf(err, "handling message offset %d", message.Offset)
			}
			session.MarkMessage(message, "")
		}
	}
}
