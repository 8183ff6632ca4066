package exchangerates

// Пакет для работы с курсами валют

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/ellavs/tg-finance-assistant/internal/logger"
	types "github.com/ellavs/tg-finance-assistant/internal/model/bottypes"
)

//go:generate mockgen -source=exchangerates.go -destination=../../mocks/exchangerates/exchangerates_mocks.go -package=mocks

// Ключ таблицы курсов в кэше.
const cacheKey = "rates:USD"

// RatesClient Загрузка таблицы курсов относительно USD из внешнего источника.
type RatesClient interface {
	LoadExchangeRates(ctx context.Context) (types.ExchangeRate, time.Time, error)
}

// LRUCache Интерфейс кэша.
type LRUCache interface {
	Add(key string, value any)
	Get(key string) any
}

// cachedTable Таблица курсов в кэше с моментом загрузки.
type cachedTable struct {
	rates    types.ExchangeRate
	loadedAt time.Time
}

// ExchangeRates Получение курсов валют с кэшированием последней таблицы.
type ExchangeRates struct {
	client      RatesClient
	cache       LRUCache
	timeout     time.Duration    // Ограничение времени запроса к источнику.
	cachePeriod time.Duration    // Время жизни таблицы в кэше.
	now         func() time.Time // Текущее время (подменяется в тестах).
}

// New Инициализация экземпляра получения курсов валют.
func New(client RatesClient, cache LRUCache, timeout time.Duration, cachePeriod time.Duration) *ExchangeRates {
	return &ExchangeRates{
		client:      client,
		cache:       cache,
		timeout:     timeout,
		cachePeriod: cachePeriod,
		now:         time.Now,
	}
}

// GetCrossRates Кросс-курсы к рублю: из кэша, если таблица свежая, иначе из источника.
func (e *ExchangeRates) GetCrossRates(ctx context.Context) (CrossRates, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "GetCrossRates")
	defer span.Finish()

	if table, ok := e.cached(); ok {
		return DeriveCrossRates(table)
	}
	table, err := e.load(ctx)
	if err != nil {
		return CrossRates{}, err
	}
	return DeriveCrossRates(table)
}

// UpdateExchangeRates Принудительная загрузка курсов из источника в кэш.
func (e *ExchangeRates) UpdateExchangeRates(ctx context.Context) error {
	_, err := e.load(ctx)
	return err
}

// cached Таблица из кэша, если она не устарела.
func (e *ExchangeRates) cached() (types.ExchangeRate, bool) {
	value := e.cache.Get(cacheKey)
	if value == nil {
		return nil, false
	}
	table, ok := value.(cachedTable)
	if !ok {
		logger.Error("Ошибка приведения значения кэша к таблице курсов.")
		return nil, false
	}
	if e.now().Sub(table.loadedAt) >= e.cachePeriod {
		return nil, false
	}
	return table.rates, true
}

// load Загрузка таблицы из источника с ограничением времени.
// В кэш попадает только таблица, по которой считаются кросс-курсы.
func (e *ExchangeRates) load(ctx context.Context) (types.ExchangeRate, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	table, _, err := e.client.LoadExchangeRates(ctx)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, types.Classify(types.ErrRateFetchTimeout, err, "load exchange rates")
		}
		return nil, types.Classify(types.ErrRateFetchFailed, err, "load exchange rates")
	}
	if _, err := DeriveCrossRates(table); err != nil {
		logger.Warn("Таблица курсов неполная", "err", err)
		return nil, err
	}
	e.cache.Add(cacheKey, cachedTable{rates: table, loadedAt: e.now()})
	return table, nil
}
