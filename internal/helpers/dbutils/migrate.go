package dbutils

// Применение миграций схемы БД (golang-migrate).

import (
	"io/fs"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/ellavs/tg-finance-assistant/internal/logger"
)

// RunMigrations Применение всех up-миграций из migrations (корень fs - каталог с *.sql).
func RunMigrations(db *sqlx.DB, migrations fs.FS) error {
	src, err := iofs.New(migrations, ".")
	if err != nil {
		return errors.Wrap(err, "open migrations source")
	}
	driver, err := migratepgx.WithInstance(db.DB, &migratepgx.Config{})
	if err != nil {
		return errors.Wrap(err, "init migrations driver")
	}
	m, err := migrate.NewWithInstance("iofs", src, "pgx", driver)
	if err != nil {
		return errors.Wrap(err, "init migrations")
	}

	fromVer, _, _ := m.Version()
	start := time.Now()
	upErr := m.Up()
	switch {
	case upErr == nil:
	case errors.Is(upErr, migrate.ErrNoChange):
		logger.Info("Миграции не требуются", "version", fromVer)
		return nil
	default:
		logger.Error("Ошибка применения миграций", "err", upErr)
		return errors.Wrap(upErr, "apply migrations")
	}

	toVer, _, _ := m.Version()
	logger.Info("Миграции применены", "from", fromVer, "to", toVer, "duration", time.Since(start))
	return nil
}
