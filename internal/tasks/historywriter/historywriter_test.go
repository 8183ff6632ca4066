package historywriter

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	types "github.com/ellavs/tg-finance-assistant/internal/model/bottypes"
	"github.com/ellavs/tg-finance-assistant/internal/model/events"
)

type fakeStorage struct {
	inserted []types.FinancesCommittedEvent
	err      error
}

func (s *fakeStorage) InsertSnapshot(ctx context.Context, event types.FinancesCommittedEvent) error {
	if s.err != nil {
		return s.err
	}
	s.inserted = append(s.inserted, event)
	return nil
}

func testMessage(t *testing.T) (string, string, types.FinancesCommittedEvent) {
	event := types.FinancesCommittedEvent{
		EventID:     "4c1b8a1e-0a43-4f59-b4a4-3a1e2f5b9c77",
		UserID:      123,
		Categories:  [types.CategoriesCount]types.CategorySlot{{Label: "Food", Amount: 50.5}},
		CommittedAt: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		Period:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	value, err := events.Encode(event)
	require.NoError(t, err)
	return events.Key(event.UserID), value, event
}

func Test_HandleMessage_ShouldInsertSnapshot(t *testing.T) {
	storage := &fakeStorage{}
	key, value, event := testMessage(t)

	err := New(storage).HandleMessage(context.Background(), key, value)

	assert.NoError(t, err)
	assert.Equal(t, []types.FinancesCommittedEvent{event}, storage.inserted)
}

func Test_HandleMessage_ShouldSkipInvalidMessage(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "некорректный JSON", value: "{broken"},
		{name: "eventId не UUID", value: `{"eventId":"42","userId":123}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Хранилище вернуло бы ошибку, и сообщение читалось бы повторно.
			storage := &fakeStorage{err: types.ErrStorageUnavailable}

			err := New(storage).HandleMessage(context.Background(), "123", tt.value)

			assert.NoError(t, err)
			assert.Empty(t, storage.inserted)
		})
	}
}

func Test_HandleMessage_ShouldReturnStorageError(t *testing.T) {
	storageErr := types.Classify(types.ErrStorageUnavailable, errors.New("connection refused"), "insert")
	key, value, _ := testMessage(t)

	err := New(&fakeStorage{err: storageErr}).HandleMessage(context.Background(), key, value)

	assert.ErrorIs(t, err, types.ErrStorageUnavailable)
}
