// Package historywriter Запись событий о сохранении расходов в историю (сервис истории).
package historywriter

import (
	"context"

	"github.com/pkg/errors"

	"github.com/ellavs/tg-finance-assistant/internal/logger"
	types "github.com/ellavs/tg-finance-assistant/internal/model/bottypes"
	"github.com/ellavs/tg-finance-assistant/internal/model/events"
)

// SnapshotStorage Хранилище истории расходов.
type SnapshotStorage interface {
	InsertSnapshot(ctx context.Context, event types.FinancesCommittedEvent) error
}

type Writer struct {
	storage SnapshotStorage
}

func New(storage SnapshotStorage) *Writer {
	return &Writer{storage: storage}
}

// HandleMessage Обработка сообщения кафки. Некорректное сообщение пропускается,
// ошибка хранилища возвращается, чтобы сообщение было прочитано повторно.
func (w *Writer) HandleMessage(ctx context.Context, key string, value string) error {
	event, err := events.Decode(key, value)
	if err != nil {
		logger.Error("[History service] Некорректное сообщение кафки.", "key", key, "err", err)
		return nil
	}
	if err := w.storage.InsertSnapshot(ctx, event); err != nil {
		return errors.Wrap(err, "insert snapshot")
	}
	logger.Debug("[History service] Расходы записаны в историю.", "userID", event.UserID, "eventID", event.EventID)
	return nil
}
