package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func rateLimitedApp(t *testing.T, maxPerMin int) *fiber.App {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	app := fiber.New()
	app.Post("/auth/login", LoginRateLimit(cache, maxPerMin), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func attemptLogin(t *testing.T, app *fiber.App, email string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/auth/login", strings.NewReader(`{"email":"`+email+`"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()
	return resp.StatusCode
}

func TestLoginRateLimitBlocksAfterMax(t *testing.T) {
	app := rateLimitedApp(t, 3)

	for i := 0; i < 3; i++ {
		if status := attemptLogin(t, app, "r@x.com"); status != fiber.StatusOK {
			t.Fatalf("attempt %d: expected 200 got %d", i+1, status)
		}
	}
	if status := attemptLogin(t, app, "r@x.com"); status != fiber.StatusTooManyRequests {
		t.Fatalf("expected 429 got %d", status)
	}

	// A different subject is unaffected.
	if status := attemptLogin(t, app, "other@x.com"); status != fiber.StatusOK {
		t.Fatalf("expected other subject to pass, got %d", status)
	}
}

func TestLoginRateLimitWithoutRedisIsNoOp(t *testing.T) {
	app := fiber.New()
	app.Post("/auth/login", LoginRateLimit(nil, 1), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 5; i++ {
		if status := attemptLogin(t, app, "r@x.com"); status != fiber.StatusOK {
			t.Fatalf("expected fail-open without redis, got %d", status)
		}
	}
}
