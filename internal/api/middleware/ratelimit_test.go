package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

type stubRateLimitStore struct {
	count int64
	err   error
}

func (s *stubRateLimitStore) Incr(context.Context, string, time.Duration) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.count++
	return s.count, nil
}

func TestRateLimit_UnderLimit(t *testing.T) {
	e := echo.New()
	store := &stubRateLimitStore{}
	mw := RateLimit(store, 2, time.Minute)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		if err := handler(c); err != nil {
			t.Fatalf("request %d rejected: %v", i+1, err)
		}
	}
}

func TestRateLimit_OverLimit(t *testing.T) {
	e := echo.New()
	store := &stubRateLimitStore{count: 2}
	mw := RateLimit(store, 2, time.Minute)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %v", err)
	}
}

func TestRateLimit_FailsOpen(t *testing.T) {
	e := echo.New()
	store := &stubRateLimitStore{err: errors.New("redis down")}
	mw := RateLimit(store, 1, time.Minute)

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("store failure must not reject the request: %v", err)
	}
	if !called {
		t.Fatalf("next not called on store failure")
	}
}
