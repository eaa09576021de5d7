package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

func setupEcho(rdb *redis.Client, ttl time.Duration, handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(IdempotencyMiddleware(rdb, ttl))
	e.POST("/leads", handler)
	e.GET("/leads", handler)
	return e
}

func mkJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, e *echo.Echo, method, path string, body io.Reader, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func okCreatedHandler(c echo.Context) error {
	return c.JSON(http.StatusCreated, map[string]any{"ok": true})
}

func validHeaders() map[string]string {
	return map[string]string{
		"Ax-Request-Id": strings.Repeat("a", 32),
		"Ax-Request-At": time.Now().UTC().Format(time.RFC3339),
		"Ax-User-Id":    "rm-042",
	}
}

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func Test_BypassOnGET_NoHeadersRequired(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "get ok"})
	})
	if rec := doReq(t, e, http.MethodGet, "/leads", nil, nil); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func Test_ValidationFailures(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	cases := []struct {
		name   string
		mutate func(h map[string]string)
	}{
		{"missing Ax-Request-Id", func(h map[string]string) { delete(h, "Ax-Request-Id") }},
		{"invalid Ax-Request-Id", func(h map[string]string) { h["Ax-Request-Id"] = "NOT-VALID" }},
		{"invalid Ax-Request-At", func(h map[string]string) { h["Ax-Request-At"] = "not-a-time" }},
		{"skewed Ax-Request-At", func(h map[string]string) {
			h["Ax-Request-At"] = time.Now().UTC().Add(-maxClockSkew - time.Minute).Format(time.RFC3339)
		}},
		{"missing Ax-User-Id", func(h map[string]string) { delete(h, "Ax-User-Id") }},
		{"invalid Ax-User-Id", func(h map[string]string) { h["Ax-User-Id"] = "has spaces" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := validHeaders()
			tc.mutate(h)
			rec := doReq(t, e, http.MethodPost, "/leads", mkJSONBody(t, map[string]int{"x": 1}), h)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("want 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}

func Test_HappyPath_Then_Replay(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 2*time.Minute, okCreatedHandler)

	h := validHeaders()
	body := map[string]any{"loan_amount": 5000000}

	rec1 := doReq(t, e, http.MethodPost, "/leads", mkJSONBody(t, body), h)
	if rec1.Code != http.StatusCreated {
		t.Fatalf("first request => want 201, got %d: %s", rec1.Code, rec1.Body.String())
	}

	// same headers and body replays the stored response
	rec2 := doReq(t, e, http.MethodPost, "/leads", mkJSONBody(t, body), h)
	if rec2.Code != http.StatusCreated {
		t.Fatalf("replay => want 201, got %d: %s", rec2.Code, rec2.Body.String())
	}
	if rec1.Body.String() != rec2.Body.String() {
		t.Fatalf("replay body mismatch: %q vs %q", rec1.Body.String(), rec2.Body.String())
	}
}

func Test_ReusedRequestID_DifferentBody(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 2*time.Minute, okCreatedHandler)

	h := validHeaders()
	rec := doReq(t, e, http.MethodPost, "/leads", mkJSONBody(t, map[string]int{"x": 1}), h)
	if rec.Code != http.StatusCreated {
		t.Fatalf("first request => want 201, got %d", rec.Code)
	}

	rec = doReq(t, e, http.MethodPost, "/leads", mkJSONBody(t, map[string]int{"x": 2}), h)
	if rec.Code != http.StatusConflict {
		t.Fatalf("mismatched body => want 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func Test_DifferentUsers_DoNotCollide(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 2*time.Minute, okCreatedHandler)

	body := map[string]int{"x": 1}

	h1 := validHeaders()
	if rec := doReq(t, e, http.MethodPost, "/leads", mkJSONBody(t, body), h1); rec.Code != http.StatusCreated {
		t.Fatalf("user 1 => want 201, got %d", rec.Code)
	}

	// same request id, different principal gets its own slot
	h2 := validHeaders()
	h2["Ax-User-Id"] = "rm-007"
	if rec := doReq(t, e, http.MethodPost, "/leads", mkJSONBody(t, body), h2); rec.Code != http.StatusCreated {
		t.Fatalf("user 2 => want 201, got %d", rec.Code)
	}
}
