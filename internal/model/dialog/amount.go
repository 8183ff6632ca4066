package dialog

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	types "github.com/ellavs/tg-finance-assistant/internal/model/bottypes"
)

// Ограничения суммы расходов.
const (
	maxAmountText = 32 // Длина текста суммы.
	minExponent   = -maxAmountText
	maxExponent   = 12
)

// MaxAmount Наибольшая допустимая сумма расходов.
var MaxAmount = decimal.New(1, maxExponent)

// Причины отказа вместе с ErrValidation.
var (
	ErrNegativeAmount   = errors.New("negative amount")
	ErrAmountOutOfRange = errors.New("amount is out of range")
)

// ParseAmount Разбор суммы расходов: неотрицательное число, допускается запятая как разделитель.
func ParseAmount(text string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	if normalized == "" {
		return 0, types.Classify(types.ErrValidation, nil, "empty amount")
	}
	if len(normalized) > maxAmountText {
		return 0, types.Classify(types.ErrValidation, ErrAmountOutOfRange, "amount text")
	}
	amount, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0, types.Classify(types.ErrValidation, err, "amount is not a number")
	}
	if amount.IsNegative() {
		return 0, types.Classify(types.ErrValidation, ErrNegativeAmount, "amount")
	}
	// Экспонента проверяется до сравнения и перевода во float64: оба вычисляют 10^exp.
	if exp := amount.Exponent(); exp < minExponent || exp > maxExponent || amount.GreaterThan(MaxAmount) {
		return 0, types.Classify(types.ErrValidation, ErrAmountOutOfRange, "amount")
	}
	value, _ := amount.Float64()
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, types.Classify(types.ErrValidation, ErrAmountOutOfRange, "amount is not finite")
	}
	return value, nil
}

// ParseLabel Разбор названия категории: любой непустой текст.
func ParseLabel(text string) (string, error) {
	label := strings.TrimSpace(text)
	if label == "" {
		return "", types.Classify(types.ErrValidation, nil, "empty category")
	}
	return label, nil
}
