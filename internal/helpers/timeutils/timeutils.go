// Package timeutils Хелпер для операций с датами и временем
package timeutils

import "time"

// BeginOfMonth Начало месяца указанной даты (UTC), период снимков истории расходов.
// Например, при t = "16.10.2022 15:22:30" функция вернет дату "01.10.2022 00:00:00"
func BeginOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
