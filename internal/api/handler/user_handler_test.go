package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/securebase/user-api/internal/core/domain"
	"github.com/securebase/user-api/internal/core/ports"
)

type stubUserService struct {
	listFn   func(ctx context.Context, actor *domain.User) ([]*domain.User, error)
	getFn    func(ctx context.Context, actor *domain.User, id string) (*domain.User, error)
	createFn func(ctx context.Context, actor *domain.User, email, password string) (*domain.User, error)
	updateFn func(ctx context.Context, actor *domain.User, id string, input ports.UpdateUserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, actor *domain.User, id string) error
}

func (s *stubUserService) List(ctx context.Context, actor *domain.User) ([]*domain.User, error) {
	return s.listFn(ctx, actor)
}

func (s *stubUserService) Get(ctx context.Context, actor *domain.User, id string) (*domain.User, error) {
	return s.getFn(ctx, actor, id)
}

func (s *stubUserService) Create(ctx context.Context, actor *domain.User, email, password string) (*domain.User, error) {
	return s.createFn(ctx, actor, email, password)
}

func (s *stubUserService) Update(ctx context.Context, actor *domain.User, id string, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, actor, id, input)
}

func (s *stubUserService) Delete(ctx context.Context, actor *domain.User, id string) error {
	return s.deleteFn(ctx, actor, id)
}

func newUserContext(method, target, body string, actor *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actor != nil {
		c.Set("user", actor)
	}
	return c, rec
}

func TestUserHandler_List(t *testing.T) {
	admin := &domain.User{ID: "a1", Role: domain.RoleAdmin}
	stub := &stubUserService{
		listFn: func(_ context.Context, actor *domain.User) ([]*domain.User, error) {
			if actor != admin {
				t.Fatalf("actor not forwarded")
			}
			return []*domain.User{
				{ID: "u1", Email: "one@test.com", Role: domain.RoleUser},
				{ID: "u2", Email: "two@test.com", Role: domain.RoleUser},
			}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newUserContext(http.MethodGet, "/api/v1/users", "", admin)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	stub := &stubUserService{
		getFn: func(context.Context, *domain.User, string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	h := NewUserHandler(stub)

	c, _ := newUserContext(http.MethodGet, "/api/v1/users/missing", "", &domain.User{ID: "u1", Role: domain.RoleUser})
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_Create(t *testing.T) {
	admin := &domain.User{ID: "a1", Role: domain.RoleAdmin}
	stub := &stubUserService{
		createFn: func(_ context.Context, actor *domain.User, email, password string) (*domain.User, error) {
			return &domain.User{ID: "u9", Email: email, Role: domain.RoleUser}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newUserContext(http.MethodPost, "/api/v1/users",
		`{"email":"new@test.com","password":"StrongPass#123"}`, admin)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestUserHandler_Create_Forbidden(t *testing.T) {
	user := &domain.User{ID: "u1", Role: domain.RoleUser}
	stub := &stubUserService{
		createFn: func(context.Context, *domain.User, string, string) (*domain.User, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewUserHandler(stub)

	c, _ := newUserContext(http.MethodPost, "/api/v1/users",
		`{"email":"new@test.com","password":"StrongPass#123"}`, user)
	if err := h.Create(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserHandler_Update(t *testing.T) {
	admin := &domain.User{ID: "a1", Role: domain.RoleAdmin}
	stub := &stubUserService{
		updateFn: func(_ context.Context, _ *domain.User, id string, input ports.UpdateUserInput) (*domain.User, error) {
			if id != "u1" {
				t.Fatalf("unexpected id %q", id)
			}
			if input.Email == nil || *input.Email != "renamed@test.com" {
				t.Fatalf("email not forwarded: %+v", input)
			}
			if input.Password != nil {
				t.Fatalf("password should be nil when omitted")
			}
			return &domain.User{ID: id, Email: *input.Email, Role: domain.RoleUser}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newUserContext(http.MethodPut, "/api/v1/users/u1", `{"email":"renamed@test.com"}`, admin)
	c.SetParamNames("id")
	c.SetParamValues("u1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestUserHandler_Delete(t *testing.T) {
	admin := &domain.User{ID: "a1", Role: domain.RoleAdmin}

	stub := &stubUserService{
		deleteFn: func(_ context.Context, _ *domain.User, id string) error {
			if id == "a2" {
				return domain.ErrForbidden
			}
			return nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newUserContext(http.MethodDelete, "/api/v1/users/u1", "", admin)
	c.SetParamNames("id")
	c.SetParamValues("u1")
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	c, _ = newUserContext(http.MethodDelete, "/api/v1/users/a2", "", admin)
	c.SetParamNames("id")
	c.SetParamValues("a2")
	if err := h.Delete(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserHandler_MissingActor(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, _ := newUserContext(http.MethodGet, "/api/v1/users", "", nil)
	if err := h.List(c); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
