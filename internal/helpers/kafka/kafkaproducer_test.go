package kafka

import (
	"testing"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func Test_KafkaProducer_SendMessage(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, NewProducerConfig())
	mockProducer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"userId":123}` {
			return errors.Errorf("unexpected value %s", val)
		}
		return nil
	})
	producer := NewProducer(mockProducer, "tgfinance")

	_, _, err := producer.SendMessage("123", `{"userId":123}`)

	assert.NoError(t, err)
	assert.Equal(t, "tgfinance", producer.GetTopic())
	assert.NoError(t, producer.Close())
}

func Test_KafkaProducer_SendMessage_ShouldReturnError(t *testing.T) {
	mockProducer := mocks.NewSyncProducer(t, NewProducerConfig())
	mockProducer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	producer := NewProducer(mockProducer, "tgfinance")

	_, _, err := producer.SendMessage("123", "{}")

	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	assert.NoError(t, producer.Close())
}
