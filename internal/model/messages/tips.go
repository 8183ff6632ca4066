package messages

import "math/rand"

// DefaultTips Советы по экономии.
var DefaultTips = []string{
	"Совет 1: Ведите бюджет и следите за своими расходами.",
	"Совет 2: Откладывайте часть доходов на сбережения.",
	"Совет 3: Покупайте товары по скидкам и распродажам.",
	"Совет 4: Избегайте импульсивных покупок.",
	"Совет 5: Используйте общественный транспорт вместо личного автомобиля.",
}

// Tips Случайный выбор совета из фиксированного списка.
type Tips struct {
	list []string
	intn func(n int) int
}

// NewTips Создание списка советов. При intn == nil используется rand.Intn.
func NewTips(list []string, intn func(n int) int) *Tips {
	if intn == nil {
		intn = rand.Intn
	}
	return &Tips{list: list, intn: intn}
}

// Random Случайный совет.
func (t *Tips) Random() string {
	if len(t.list) == 0 {
		return ""
	}
	return t.list[t.intn(len(t.list))]
}
