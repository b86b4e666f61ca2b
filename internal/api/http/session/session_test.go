package session

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	store := NewStore(Config{CookieName: "sid"}, nil)
	app := fiber.New()

	app.Get("/bind/:id", func(c *fiber.Ctx) error {
		slot, err := store.Slot(c)
		if err != nil {
			return err
		}
		if err := slot.SetUserID(uuid.MustParse(c.Params("id"))); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/whoami", func(c *fiber.Ctx) error {
		slot, err := store.Slot(c)
		if err != nil {
			return err
		}
		id, ok := slot.UserID()
		if !ok {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendString(id.String())
	})
	app.Get("/clear", func(c *fiber.Ctx) error {
		slot, err := store.Slot(c)
		if err != nil {
			return err
		}
		if err := slot.Clear(); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func do(t *testing.T, app *fiber.App, path string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == "sid" && c.Value != "" {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestSlot_Lifecycle(t *testing.T) {
	t.Parallel()

	app := newApp(t)
	id := uuid.New()

	resp := do(t, app, "/whoami", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = do(t, app, "/bind/"+id.String(), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	cookie := sessionCookie(t, resp)
	assert.True(t, cookie.HttpOnly)

	resp = do(t, app, "/whoami", cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, id.String(), string(body))

	resp = do(t, app, "/clear", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = do(t, app, "/whoami", cookie)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = do(t, app, "/clear", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSlot_BindRotatesSessionID(t *testing.T) {
	t.Parallel()

	app := newApp(t)

	first := sessionCookie(t, do(t, app, "/bind/"+uuid.NewString(), nil))
	second := sessionCookie(t, do(t, app, "/bind/"+uuid.NewString(), first))
	assert.NotEqual(t, first.Value, second.Value)
}
