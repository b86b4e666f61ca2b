package handler

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/dtroode/bookshelf-server/internal/api/http/context"
)

// newApp returns an app that treats every request as made by caller.
// uuid.Nil means anonymous.
func newApp(caller uuid.UUID, routes func(app *fiber.App)) *fiber.App {
	cm := httpcontext.NewManager()
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if caller != uuid.Nil {
			c.SetUserContext(cm.SetUserIDToContext(c.UserContext(), caller))
		}
		return c.Next()
	})
	routes(app)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(out)
}
