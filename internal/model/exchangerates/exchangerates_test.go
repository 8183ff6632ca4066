package exchangerates

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ellavs/tg-finance-assistant/internal/cache"
	mocks "github.com/ellavs/tg-finance-assistant/internal/mocks/exchangerates"
	types "github.com/ellavs/tg-finance-assistant/internal/model/bottypes"
)

var testTable = types.ExchangeRate{"RUB": 90, "EUR": 1.1, "CNY": 7.2, "GBP": 0.79}

func Test_DeriveCrossRates_ShouldCalculateRubRates(t *testing.T) {
	rates, err := DeriveCrossRates(types.ExchangeRate{"RUB": 90, "EUR": 1.1, "CNY": 7.2})

	require.NoError(t, err)
	assert.Equal(t, 90.0, rates.USDToRUB)
	assert.InDelta(t, 81.8181818, rates.EURToRUB, 1e-6)
	assert.InDelta(t, 12.5, rates.CNYToRUB, 1e-9)
}

func Test_DeriveCrossRates_ShouldFail_WhenRateMissing(t *testing.T) {
	tests := []struct {
		name  string
		table types.ExchangeRate
	}{
		{name: "Нет RUB", table: types.ExchangeRate{"EUR": 1.1, "CNY": 7.2}},
		{name: "Нет EUR", table: types.ExchangeRate{"RUB": 90, "CNY": 7.2}},
		{name: "Нет CNY", table: types.ExchangeRate{"RUB": 90, "EUR": 1.1}},
		{name: "Нулевой курс", table: types.ExchangeRate{"RUB": 90, "EUR": 0, "CNY": 7.2}},
		{name: "Пустая таблица", table: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveCrossRates(tt.table)
			assert.True(t, errors.Is(err, types.ErrMissingRate), "err = %v", err)
		})
	}
}

func Test_GetCrossRates_ShouldLoadOnceAndUseCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockRatesClient(ctrl)
	// Источник вызывается один раз, второй запрос обслуживается кэшем.
	client.EXPECT().LoadExchangeRates(gomock.Any()).Return(testTable, time.Now(), nil).Times(1)

	exchangeRates := New(client, cache.NewLRU(5), time.Second, time.Hour)

	first, err := exchangeRates.GetCrossRates(context.Background())
	require.NoError(t, err)
	second, err := exchangeRates.GetCrossRates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 90.0, second.USDToRUB)
}

func Test_GetCrossRates_ShouldReload_WhenCacheExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockRatesClient(ctrl)
	client.EXPECT().LoadExchangeRates(gomock.Any()).Return(testTable, time.Now(), nil).Times(2)

	exchangeRates := New(client, cache.NewLRU(5), time.Second, 30*time.Minute)
	current := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	exchangeRates.now = func() time.Time { return current }

	_, err := exchangeRates.GetCrossRates(context.Background())
	require.NoError(t, err)

	current = current.Add(31 * time.Minute)
	_, err = exchangeRates.GetCrossRates(context.Background())
	require.NoError(t, err)
}

func Test_GetCrossRates_ShouldReturnFetchFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockRatesClient(ctrl)
	client.EXPECT().LoadExchangeRates(gomock.Any()).Return(nil, time.Time{}, errors.New("status 500"))

	exchangeRates := New(client, cache.NewLRU(5), time.Second, time.Hour)
	_, err := exchangeRates.GetCrossRates(context.Background())

	assert.True(t, errors.Is(err, types.ErrRateFetchFailed), "err = %v", err)
	assert.False(t, errors.Is(err, types.ErrRateFetchTimeout))
}

func Test_GetCrossRates_ShouldReturnTimeout_WhenSourceHangs(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockRatesClient(ctrl)
	// Источник отвечает только по истечении контекста.
	client.EXPECT().LoadExchangeRates(gomock.Any()).DoAndReturn(
		func(ctx context.Context) (types.ExchangeRate, time.Time, error) {
			<-ctx.Done()
			return nil, time.Time{}, ctx.Err()
		})

	exchangeRates := New(client, cache.NewLRU(5), 20*time.Millisecond, time.Hour)
	_, err := exchangeRates.GetCrossRates(context.Background())

	assert.True(t, errors.Is(err, types.ErrRateFetchTimeout), "err = %v", err)
}

func Test_GetCrossRates_ShouldNotCacheIncompleteTable(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockRatesClient(ctrl)
	client.EXPECT().LoadExchangeRates(gomock.Any()).Return(types.ExchangeRate{"RUB": 90}, time.Now(), nil).Times(2)

	lru := cache.NewLRU(5)
	exchangeRates := New(client, lru, time.Second, time.Hour)

	_, err := exchangeRates.GetCrossRates(context.Background())
	assert.True(t, errors.Is(err, types.ErrMissingRate))
	_, err = exchangeRates.GetCrossRates(context.Background())
	assert.True(t, errors.Is(err, types.ErrMissingRate))
	assert.Equal(t, 0, lru.Len())
}

func Test_UpdateExchangeRates_ShouldWarmCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockRatesClient(ctrl)
	client.EXPECT().LoadExchangeRates(gomock.Any()).Return(testTable, time.Now(), nil).Times(1)

	exchangeRates := New(client, cache.NewLRU(5), time.Second, time.Hour)
	require.NoError(t, exchangeRates.UpdateExchangeRates(context.Background()))

	rates, err := exchangeRates.GetCrossRates(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 12.5, rates.CNYToRUB, 1e-9)
}
