// Package db - Работа с хранилищами (базой данных).
package db

// Работа с хранилищем информации о пользователях.

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/ellavs/tg-finance-assistant/internal/helpers/dbutils"
	types "github.com/ellavs/tg-finance-assistant/internal/model/bottypes"
)

// UserRecordDB - Тип, принимающий структуру строки таблицы пользователей.
type UserRecordDB struct {
	UserID    int64           `db:"tg_id"`
	Name      string          `db:"name"`
	Category1 sql.NullString  `db:"category1"`
	Expenses1 sql.NullFloat64 `db:"expenses1"`
	Category2 sql.NullString  `db:"category2"`
	Expenses2 sql.NullFloat64 `db:"expenses2"`
	Category3 sql.NullString  `db:"category3"`
	Expenses3 sql.NullFloat64 `db:"expenses3"`
}

// UserStorage - Тип для хранилища информации о пользователях.
type UserStorage struct {
	db *sqlx.DB
}

// NewUserStorage - Инициализация хранилища информации о пользователях.
// db - *sqlx.DB - ссылка на подключение к БД.
func NewUserStorage(db *sqlx.DB) *UserStorage {
	return &UserStorage{
		db: db,
	}
}

// Ping Проверка доступности БД.
func (storage *UserStorage) Ping(ctx context.Context) error {
	return storage.db.PingContext(ctx)
}

// Register Регистрация пользователя (все категории пустые).
// Повторный вызов для того же пользователя ничего не меняет и возвращает AlreadyExists.
func (storage *UserStorage) Register(ctx context.Context, userID int64, displayName string) (types.RegisterResult, error) {
	const sqlString = `
		INSERT INTO users (tg_id, name)
			VALUES ($1, $2)
			 ON CONFLICT (tg_id) DO NOTHING;`

	affected, err := dbutils.ExecAffected(ctx, storage.db, sqlString, userID, displayName)
	if err != nil {
		return types.AlreadyExists, types.Classify(types.ErrStorageUnavailable, err, "register user")
	}
	if affected == 0 {
		return types.AlreadyExists, nil
	}
	return types.Created, nil
}

// IsRegistered Проверка существования пользователя в базе данных.
func (storage *UserStorage) IsRegistered(ctx context.Context, userID int64) (bool, error) {
	const sqlString = `SELECT COUNT(id) AS countusers FROM users WHERE tg_id = $1;`

	cnt, err := dbutils.GetMap(ctx, storage.db, sqlString, userID)
	if err != nil {
		return false, types.Classify(types.ErrStorageUnavailable, err, "check user")
	}
	countusers, ok := cnt["countusers"].(int64)
	if !ok {
		return false, types.Classify(types.ErrStorageUnavailable, nil, "unexpected countusers type")
	}
	return countusers > 0, nil
}

// CommitFinances Перезапись всех трёх категорий пользователя одним обновлением (в транзакции).
func (storage *UserStorage) CommitFinances(ctx context.Context, userID int64, slots [types.CategoriesCount]types.CategorySlot) error {
	const sqlString = `
		UPDATE users
		SET category1 = :category1, expenses1 = :expenses1,
		    category2 = :category2, expenses2 = :expenses2,
		    category3 = :category3, expenses3 = :expenses3
		WHERE tg_id = :tg_id;`

	args := map[string]any{
		"tg_id":     userID,
		"category1": slots[0].Label,
		"expenses1": slots[0].Amount,
		"category2": slots[1].Label,
		"expenses2": slots[1].Amount,
		"category3": slots[2].Label,
		"expenses3": slots[2].Amount,
	}

	var affected int64
	err := dbutils.RunTx(ctx, storage.db,
		// Если функция вернет ошибку, произойдет откат транзакции.
		func(tx *sqlx.Tx) error {
			res, err := dbutils.NamedExec(ctx, tx, sqlString, args)
			if err != nil {
				return err
			}
			affected, err = res.RowsAffected()
			if err != nil {
				return err
			}
			if affected == 0 {
				return types.ErrNotRegistered
			}
			return nil
		})
	if errors.Is(err, types.ErrNotRegistered) {
		return types.ErrNotRegistered
	}
	if err != nil {
		return types.Classify(types.ErrStorageUnavailable, err, "commit finances")
	}
	return nil
}

// GetUser Получение записи пользователя.
func (storage *UserStorage) GetUser(ctx context.Context, userID int64) (types.UserRecord, error) {
	const sqlString = `
		SELECT tg_id, name, category1, expenses1, category2, expenses2, category3, expenses3
		FROM users
		WHERE tg_id = $1;`

	var rec UserRecordDB
	if err := dbutils.Get(ctx, storage.db, &rec, sqlString, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.UserRecord{}, types.ErrNotRegistered
		}
		return types.UserRecord{}, types.Classify(types.ErrStorageUnavailable, err, "get user")
	}
	return rec.toUserRecord(), nil
}

// toUserRecord Преобразование строки таблицы в запись пользователя.
func (rec UserRecordDB) toUserRecord() types.UserRecord {
	res := types.UserRecord{UserID: rec.UserID, DisplayName: rec.Name}
	labels := [types.CategoriesCount]sql.NullString{rec.Category1, rec.Category2, rec.Category3}
	amounts := [types.CategoriesCount]sql.NullFloat64{rec.Expenses1, rec.Expenses2, rec.Expenses3}
	for i := range labels {
		if labels[i].Valid && amounts[i].Valid {
			res.Categories[i] = &types.CategorySlot{Label: labels[i].String, Amount: amounts[i].Float64}
		}
	}
	return res
}
