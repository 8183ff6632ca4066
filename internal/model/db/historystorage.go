package db

// Работа с хранилищем истории сохранённых расходов.

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/ellavs/tg-finance-assistant/internal/helpers/dbutils"
	types "github.com/ellavs/tg-finance-assistant/internal/model/bottypes"
)

// HistoryStorage Тип для хранилища истории расходов.
type HistoryStorage struct {
	db *sqlx.DB
}

// NewHistoryStorage Инициализация хранилища истории расходов.
func NewHistoryStorage(db *sqlx.DB) *HistoryStorage {
	return &HistoryStorage{
		db: db,
	}
}

// InsertSnapshot Добавление снимка расходов из события. Повторная доставка события ничего не меняет.
func (storage *HistoryStorage) InsertSnapshot(ctx context.Context, event types.FinancesCommittedEvent) error {
	const sqlString = `
		INSERT INTO finance_history (event_id, tg_id,
		                             category1, expenses1, category2, expenses2, category3, expenses3,
		                             committed_at, period)
			VALUES (:event_id, :tg_id,
			        :category1, :expenses1, :category2, :expenses2, :category3, :expenses3,
			        :committed_at, :period)
			 ON CONFLICT (event_id) DO NOTHING;`

	args := map[string]any{
		"event_id":     event.EventID,
		"tg_id":        event.UserID,
		"category1":    event.Categories[0].Label,
		"expenses1":    event.Categories[0].Amount,
		"category2":    event.Categories[1].Label,
		"expenses2":    event.Categories[1].Amount,
		"category3":    event.Categories[2].Label,
		"expenses3":    event.Categories[2].Amount,
		"committed_at": event.CommittedAt,
		"period":       event.Period,
	}

	if _, err := dbutils.NamedExec(ctx, storage.db, sqlString, args); err != nil {
		return types.Classify(types.ErrStorageUnavailable, err, "insert finance snapshot")
	}
	return nil
}

