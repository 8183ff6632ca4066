package exchangerates

import (
	types "github.com/ellavs/tg-finance-assistant/internal/model/bottypes"
)

// Коды валют таблицы курсов.
const (
	CurrencyRUB = "RUB"
	CurrencyEUR = "EUR"
	CurrencyCNY = "CNY"
)

// CrossRates Стоимость одной единицы валюты в рублях.
type CrossRates struct {
	USDToRUB float64
	EURToRUB float64
	CNYToRUB float64
}

// DeriveCrossRates Расчет кросс-курсов к рублю по таблице курсов относительно USD.
// table[X] - количество единиц X за 1 USD, поэтому 1 EUR = table[RUB] / table[EUR] RUB.
func DeriveCrossRates(table types.ExchangeRate) (CrossRates, error) {
	rub, err := rateOf(table, CurrencyRUB)
	if err != nil {
		return CrossRates{}, err
	}
	eur, err := rateOf(table, CurrencyEUR)
	if err != nil {
		return CrossRates{}, err
	}
	cny, err := rateOf(table, CurrencyCNY)
	if err != nil {
		return CrossRates{}, err
	}
	return CrossRates{
		USDToRUB: rub,
		EURToRUB: rub / eur,
		CNYToRUB: rub / cny,
	}, nil
}

// rateOf Курс валюты из таблицы. Отсутствующий или неположительный курс - ErrMissingRate.
func rateOf(table types.ExchangeRate, currency string) (float64, error) {
	rate, ok := table[currency]
	if !ok || rate <= 0 {
		return 0, types.Classify(types.ErrMissingRate, nil, currency)
	}
	return rate, nil
}
