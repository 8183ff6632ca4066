package bottypes

import (
	"github.com/pkg/errors"
)

// Ошибки, которые различает логика диалога и запросов.
var (
	ErrValidation         = errors.New("validation error")
	ErrNotRegistered      = errors.New("user is not registered")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrMissingRate        = errors.New("missing exchange rate")
	ErrRateFetchFailed    = errors.New("exchange rates fetch failed")
	ErrRateFetchTimeout   = errors.New("exchange rates fetch timeout")
)

// classifiedError Ошибка с отнесением к одной из ошибок выше и исходной причиной.
type classifiedError struct {
	kind  error
	msg   string
	cause error
}

func (e *classifiedError) Error() string {
	if e.cause == nil {
		return e.msg + ": " + e.kind.Error()
	}
	return e.msg + ": " + e.kind.Error() + ": " + e.cause.Error()
}

// Is Сравнение с ошибкой-классом (errors.Is).
func (e *classifiedError) Is(target error) bool {
	return target == e.kind
}

// Unwrap Исходная причина (errors.Is / errors.As дойдут до неё).
func (e *classifiedError) Unwrap() error {
	return e.cause
}

// Classify Оборачивание ошибки cause в класс kind с пояснением msg.
// errors.Is(err, kind) и errors.Is(err, cause) оба верны для результата.
func Classify(kind error, cause error, msg string) error {
	return &classifiedError{kind: kind, msg: msg, cause: cause}
}
