// Package exchangeuploader Периодическое обновление курсов валют в кэше.
package exchangeuploader

import (
	"context"
	"time"

	"github.com/ellavs/tg-finance-assistant/internal/logger"
)

type ExchangeRates interface {
	UpdateExchangeRates(ctx context.Context) error
}

// ExchangeRatesUpdater Процедура периодического обновления курсов валют из внешнего источника.
// Первая загрузка выполняется сразу, чтобы первый запрос пользователя не ждал источник.
func ExchangeRatesUpdater(ctx context.Context, exchangeRates ExchangeRates, updatePeriod time.Duration) <-chan struct{} {
	done := make(chan struct{})
	// Запускаем горутину, обновляющую курсы валют по таймеру.
	go func() {
		defer close(done)
		update(ctx, exchangeRates)

		ticker := time.NewTicker(updatePeriod)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				// Завершение горутины.
				return
			case <-ticker.C:
				update(ctx, exchangeRates)
			}
		}
	}()
	return done
}

func update(ctx context.Context, exchangeRates ExchangeRates) {
	logger.Info("Загрузка курсов валют.")
	if err := exchangeRates.UpdateExchangeRates(ctx); err != nil {
		logger.Error("Ошибка загрузки курсов валют:", "err", err)
	}
}
