package router

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpcontext "github.com/dtroode/bookshelf-server/internal/api/http/context"
	"github.com/dtroode/bookshelf-server/internal/api/http/session"
	"github.com/dtroode/bookshelf-server/internal/mocks"
	"github.com/dtroode/bookshelf-server/internal/model"
	"github.com/dtroode/bookshelf-server/internal/testutil"
)

type deps struct {
	users  *mocks.UserService
	books  *mocks.BookService
	auth   *mocks.AuthService
	pinger *mocks.Pinger
}

func newTestApp(t *testing.T) (*fiber.App, deps) {
	t.Helper()
	d := deps{
		users:  mocks.NewUserService(t),
		books:  mocks.NewBookService(t),
		auth:   mocks.NewAuthService(t),
		pinger: mocks.NewPinger(t),
	}
	d.auth.On("CurrentUser", mock.Anything, mock.Anything).Return(func(_ context.Context, slot model.IdentitySlot) (uuid.UUID, error) {
		id, ok := slot.UserID()
		if !ok {
			return uuid.Nil, model.ErrUnauthorized
		}
		return id, nil
	}).Maybe()

	r := New(d.users, d.books, d.auth,
		session.NewStore(session.Config{CookieName: "sid"}, nil),
		httpcontext.NewManager(), d.pinger, testutil.MakeNoopLogger(), Options{})
	return r.Register(), d
}

func send(t *testing.T, app *fiber.App, method, path, body string, cookie *http.Cookie) (*http.Response, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(out)
}

func TestRouter_SessionFlow(t *testing.T) {
	t.Parallel()

	app, d := newTestApp(t)
	userID := uuid.New()

	resp, body := send(t, app, http.MethodGet, "/books", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, body)

	d.auth.On("Login", mock.Anything, mock.Anything, model.Credentials{Email: "a@x.com", Password: "p"}).
		Run(func(args mock.Arguments) {
			require.NoError(t, args.Get(1).(model.IdentitySlot).SetUserID(userID))
		}).
		Return(model.User{ID: userID, Email: "a@x.com"}, nil)

	resp, _ = send(t, app, http.MethodPost, "/login", `{"email":"a@x.com","password":"p"}`, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "sid" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)

	d.books.On("List", mock.Anything, userID).Return(model.Books{{ID: uuid.New(), AuthorID: userID}}, nil)
	resp, _ = send(t, app, http.MethodGet, "/books", "", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	d.users.On("Get", mock.Anything, userID, userID).Return(model.User{ID: userID}, nil)
	resp, _ = send(t, app, http.MethodGet, "/users/"+userID.String(), "", cookie)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRouter_OpenRoutes(t *testing.T) {
	t.Parallel()

	app, d := newTestApp(t)

	d.users.On("List", mock.Anything).Return(nil, model.ErrNotFound)
	resp, _ := send(t, app, http.MethodGet, "/users", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	id := uuid.New()
	d.users.On("Delete", mock.Anything, id).Return(nil)
	resp, _ = send(t, app, http.MethodDelete, "/users/"+id.String(), "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	d.auth.On("Logout", mock.Anything).Return(nil)
	resp, _ = send(t, app, http.MethodGet, "/logout", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRouter_ProtectedRoutes(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	id := uuid.NewString()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/books"},
		{http.MethodPost, "/books"},
		{http.MethodGet, "/books/" + id},
		{http.MethodPut, "/books/" + id},
		{http.MethodDelete, "/books/" + id},
		{http.MethodGet, "/users/" + id},
		{http.MethodPut, "/users/" + id},
	}

	for _, rt := range routes {
		resp, _ := send(t, app, rt.method, rt.path, `{"title":"x"}`, nil)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", rt.method, rt.path)
	}
}

func TestRouter_Ops(t *testing.T) {
	t.Parallel()

	app, d := newTestApp(t)

	d.pinger.On("Ping", mock.Anything).Return(nil)
	resp, body := send(t, app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, body)

	resp, body = send(t, app, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "bookshelf_http_requests_total")
}

func TestRouter_Errors(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	app.Get("/boom", func(c *fiber.Ctx) error { panic("boom") })

	resp, body := send(t, app, http.MethodGet, "/nowhere", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, `"error"`)

	resp, body = send(t, app, http.MethodGet, "/boom", "", nil)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"An error occurred"}`, body)
}
