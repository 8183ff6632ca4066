// Package kafka Хелпер для работы с кафкой
package kafka

import (
	"time"

	"github.com/Shopify/sarama"
	"github.com/pkg/errors"
)

type KafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducerConfig Настройки синхронного продюсера.
func NewProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V2_8_0_0
	// Ждем подтверждения от всех синхронных реплик.
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Retry.Backoff = time.Millisecond * 250
	// Обязательно для SyncProducer.
	config.Producer.Return.Successes = true
	// Партиция выбирается по хэшу ключа: события одного пользователя идут по порядку.
	config.Producer.Partitioner = sarama.NewHashPartitioner
	return config
}

func NewSyncProducer(brokerList []string, topic string) (*KafkaProducer, error) {
	producer, err := sarama.NewSyncProducer(brokerList, NewProducerConfig())
	if err != nil {
		return nil, errors.Wrap(err, "Starting Sarama producer")
	}
	return NewProducer(producer, topic), nil
}

// NewProducer Обертка над готовым продюсером (в тестах - sarama/mocks).
func NewProducer(producer sarama.SyncProducer, topic string) *KafkaProducer {
	return &KafkaProducer{
		producer: producer,
		topic:    topic,
	}
}

func (k *KafkaProducer) SendMessage(key string, value string) (partition int32, offset int64, err error) {
	msg := sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.StringEncoder(value),
	}
	p, o, err := k.producer.SendMessage(&msg)
	if err != nil {
		return 0, 0, errors.Wrap(err, "sending message")
	}
	return p, o, nil
}

func (k *KafkaProducer) GetTopic() string {
	return k.topic
}

func (k *KafkaProducer) Close() error {
	return k.producer.Close()
}
