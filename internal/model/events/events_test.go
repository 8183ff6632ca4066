package events

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/ellavs/tg-finance-assistant/internal/model/bottypes"
)

type sentMessage struct {
	key   string
	value string
}

type fakeProducer struct {
	sent []sentMessage
	err  error
}

func (p *fakeProducer) SendMessage(key string, value string) (int32, int64, error) {
	if p.err != nil {
		return 0, 0, p.err
	}
	p.sent = append(p.sent, sentMessage{key: key, value: value})
	return 0, int64(len(p.sent)), nil
}

var testEvent = types.FinancesCommittedEvent{
	EventID: "0d9f7f3c-5a4e-4a51-9d0a-8c1f3e2b7a10",
	UserID:  123,
	Categories: [types.CategoriesCount]types.CategorySlot{
		{Label: "Food", Amount: 50.5},
		{Label: "Rent", Amount: 1200},
		{Label: "Fun", Amount: 20},
	},
	CommittedAt: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	Period:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
}

func Test_Publisher_ShouldSendEventWithUserKey(t *testing.T) {
	producer := &fakeProducer{}
	publisher := NewPublisher(producer)

	err := publisher.PublishFinancesCommitted(context.Background(), testEvent)

	require.NoError(t, err)
	require.Len(t, producer.sent, 1)
	assert.Equal(t, "123", producer.sent[0].key)
	assert.Contains(t, producer.sent[0].value, `"label":"Food"`)

	decoded, err := Decode(producer.sent[0].key, producer.sent[0].value)
	require.NoError(t, err)
	assert.Equal(t, testEvent, decoded)
}

func Test_Publisher_ShouldReturnProducerError(t *testing.T) {
	producerErr := errors.New("kafka: client has run out of available brokers")
	publisher := NewPublisher(&fakeProducer{err: producerErr})

	err := publisher.PublishFinancesCommitted(context.Background(), testEvent)

	assert.ErrorIs(t, err, producerErr)
}

func Test_Decode_ShouldRejectInvalidMessages(t *testing.T) {
	value, err := Encode(testEvent)
	require.NoError(t, err)

	_, err = Decode("456", value)
	assert.Error(t, err)

	_, err = Decode("123", "not json")
	assert.Error(t, err)

	_, err = Decode("123", `{"userId":123}`)
	assert.Error(t, err)

	_, err = Decode("123", `{"eventId":"not-a-uuid","userId":123}`)
	assert.Error(t, err)
}

func Test_NopPublisher(t *testing.T) {
	assert.NoError(t, NopPublisher{}.PublishFinancesCommitted(context.Background(), testEvent))
}
