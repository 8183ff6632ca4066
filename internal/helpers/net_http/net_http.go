package net_http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// Ограничение времени запроса на уровне клиента (вызывающий может задать меньшее через ctx).
const clientTimeout = 30 * time.Second

// StatusError Ответ сервера с кодом, отличным от 200.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.URL, e.StatusCode)
}

type HttpClient[T any] struct {
	HttpClient http.Client
}

func New[T any]() *HttpClient[T] {
	return &HttpClient[T]{
		HttpClient: http.Client{
			Timeout: clientTimeout,
		},
	}
}

// GetJsonByURL Отправка запроса по указанному URL, получение JSON и запись в указанную структуру.
func (clt *HttpClient[T]) GetJsonByURL(ctx context.Context, url string, jsonStruct *T) error {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "build request")
	}

	res, err := clt.HttpClient.Do(request)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return &StatusError{URL: url, StatusCode: res.StatusCode}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "read body")
	}

	if err := json.Unmarshal(body, jsonStruct); err != nil {
		return errors.Wrap(err, "decode json")
	}

	return nil
}
