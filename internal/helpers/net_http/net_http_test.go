package net_http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Rates map[string]float64 `json:"conversion_rates"`
}

func Test_GetJsonByURL_ShouldDecodeBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"conversion_rates":{"RUB":90,"EUR":1.1}}`))
	}))
	defer srv.Close()

	var got payload
	err := New[payload]().GetJsonByURL(context.Background(), srv.URL, &got)

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"RUB": 90, "EUR": 1.1}, got.Rates)
}

func Test_GetJsonByURL_ShouldFail_WhenStatusNotOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	var got payload
	err := New[payload]().GetJsonByURL(context.Background(), srv.URL, &got)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
}

func Test_GetJsonByURL_ShouldFail_WhenBodyIsNotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	var got payload
	err := New[payload]().GetJsonByURL(context.Background(), srv.URL, &got)

	assert.Error(t, err)
}
