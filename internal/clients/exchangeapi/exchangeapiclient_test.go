package exchangeapi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	types "github.com/ellavs/tg-finance-assistant/internal/model/bottypes"
)

// fakeHTTPClient Подмена HTTP клиента, возвращающая заданный ответ.
type fakeHTTPClient struct {
	gotURL string
	resp   ExchangeRatesJson
	err    error
}

func (f *fakeHTTPClient) GetJsonByURL(ctx context.Context, url string, jsonStruct *ExchangeRatesJson) error {
	f.gotURL = url
	if f.err != nil {
		return f.err
	}
	*jsonStruct = f.resp
	return nil
}

func Test_LoadExchangeRates_ShouldBuildURLAndReturnRates(t *testing.T) {
	fake := &fakeHTTPClient{resp: ExchangeRatesJson{
		TimeLastUpdate:  1700000000,
		ConversionRates: types.ExchangeRate{"RUB": 90, "EUR": 1.1, "CNY": 7.2},
	}}
	client := New("https://example.test/v6", "key", fake)

	rates, period, err := client.LoadExchangeRates(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "https://example.test/v6/key/latest/USD", fake.gotURL)
	assert.Equal(t, types.ExchangeRate{"RUB": 90, "EUR": 1.1, "CNY": 7.2}, rates)
	assert.Equal(t, time.Unix(1700000000, 0), period)
}

func Test_LoadExchangeRates_ShouldFail_WhenEmptyRates(t *testing.T) {
	client := New("https://example.test/v6", "key", &fakeHTTPClient{})

	_, _, err := client.LoadExchangeRates(context.Background())

	assert.Error(t, err)
}

func Test_LoadExchangeRates_ShouldPassHTTPError(t *testing.T) {
	httpErr := errors.New("connection refused")
	client := New("https://example.test/v6", "key", &fakeHTTPClient{err: httpErr})

	_, _, err := client.LoadExchangeRates(context.Background())

	assert.ErrorIs(t, err, httpErr)
}
