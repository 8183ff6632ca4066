package dialog

import (
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	types "github.com/ellavs/tg-finance-assistant/internal/model/bottypes"
)

func Test_ParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    float64
		wantErr error
	}{
		{name: "целое число", text: "1200", want: 1200},
		{name: "дробное число", text: "50.5", want: 50.5},
		{name: "запятая как разделитель", text: "350,50", want: 350.5},
		{name: "пробелы по краям", text: "  20 ", want: 20},
		{name: "ноль", text: "0", want: 0},
		{name: "не число", text: "abc", wantErr: types.ErrValidation},
		{name: "пустая строка", text: "   ", wantErr: types.ErrValidation},
		{name: "отрицательное число", text: "-5", wantErr: ErrNegativeAmount},
		{name: "наибольшая сумма", text: "1000000000000", want: 1e12},
		{name: "больше наибольшей суммы", text: "1000000000000.01", wantErr: ErrAmountOutOfRange},
		{name: "переполнение float64", text: "1e400", wantErr: ErrAmountOutOfRange},
		{name: "огромная экспонента", text: "1e20000000", wantErr: ErrAmountOutOfRange},
		{name: "огромная отрицательная экспонента", text: "1e-20000000", wantErr: ErrAmountOutOfRange},
		{name: "слишком длинный текст", text: "1" + strings.Repeat("0", 40), wantErr: ErrAmountOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			got, err := ParseAmount(tt.text)
			assert.Less(t, time.Since(start), 100*time.Millisecond)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "ошибка %v", err)
				assert.True(t, errors.Is(err, types.ErrValidation))
				return
			}
			assert.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func Test_ParseLabel(t *testing.T) {
	label, err := ParseLabel("  Food ")
	assert.NoError(t, err)
	assert.Equal(t, "Food", label)

	_, err = ParseLabel(" \t ")
	assert.True(t, errors.Is(err, types.ErrValidation))
}
