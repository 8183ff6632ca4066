package exchangeapi

// Пакет для загрузки курсов валют из источника:
// https://v6.exchangerate-api.com/v6/<ключ>/latest/USD

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/ellavs/tg-finance-assistant/internal/logger"
	types "github.com/ellavs/tg-finance-assistant/internal/model/bottypes"
)

// Базовая валюта запрашиваемой таблицы курсов.
const BaseCurrency = "USD"

type httpClient[T any] interface {
	GetJsonByURL(ctx context.Context, url string, jsonStruct *T) error
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpClient[ExchangeRatesJson]
}

// Структура для загрузки курса валют из JSON.
type ExchangeRatesJson struct {
	Result          string             `json:"result"`
	TimeLastUpdate  int64              `json:"time_last_update_unix"`
	BaseCode        string             `json:"base_code"`
	ConversionRates types.ExchangeRate `json:"conversion_rates"`
}

func New(baseURL string, apiKey string, httpClient httpClient[ExchangeRatesJson]) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// LoadExchangeRates Загрузка таблицы курсов относительно USD.
func (c *Client) LoadExchangeRates(ctx context.Context) (types.ExchangeRate, time.Time, error) {
	var curExchangeRates ExchangeRatesJson
	url := c.baseURL + "/" + c.apiKey + "/latest/" + BaseCurrency
	if err := c.httpClient.GetJsonByURL(ctx, url, &curExchangeRates); err != nil {
		logger.Error("Ошибка получения данных курсов валют по URL", "err", err)
		return nil, time.Time{}, err
	}
	if len(curExchangeRates.ConversionRates) == 0 {
		return nil, time.Time{}, errors.New("empty conversion_rates in response")
	}
	period := time.Now()
	if curExchangeRates.TimeLastUpdate > 0 {
		period = time.Unix(curExchangeRates.TimeLastUpdate, 0)
	}
	return curExchangeRates.ConversionRates, period, nil
}
