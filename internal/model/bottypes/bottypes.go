package bottypes

import (
	"time"
)

// Количество категорий расходов, собираемых за один диалог.
const CategoriesCount = 3

// Слот категории расходов: название и сумма записываются только вместе.
type CategorySlot struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Тип для записи пользователя.
type UserRecord struct {
	UserID      int64
	DisplayName string
	Categories  [CategoriesCount]*CategorySlot // nil - слот не заполнен.
}

// Результат регистрации пользователя.
type RegisterResult int

const (
	Created RegisterResult = iota
	AlreadyExists
)

// Событие о сохранении расходов пользователя (отправляется в кафку).
type FinancesCommittedEvent struct {
	EventID     string                        `json:"eventId"`
	UserID      int64                         `json:"userId"`
	Categories  [CategoriesCount]CategorySlot `json:"categories"`
	CommittedAt time.Time                     `json:"committedAt"`
	Period      time.Time                     `json:"period"`
}

// Кнопка клавиатуры меню.
type TgKeyboardButton struct {
	DisplayName string
}

// Строка с кнопками клавиатуры.
type TgRowButtons []TgKeyboardButton

// Тип для хранения курса валюты в формате "RUB" = 90.5 (единиц валюты за 1 USD).
type ExchangeRate map[string]float64
