package dialog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Метрики диалога.
var (
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tg",
			Subsystem: "dialog",
			Name:      "transitions_total", // Переходы между шагами (to - шаг после обработки сообщения).
		},
		[]string{"from", "to"},
	)
	CommitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tg",
			Subsystem: "dialog",
			Name:      "commits_total", // Попытки сохранения расходов по результату.
		},
		[]string{"result"},
	)
)
