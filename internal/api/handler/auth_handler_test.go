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

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
	"github.com/KiwiRant/Kitchen-database/internal/core/ports"
)

type stubAuthService struct {
	loginFn      func(ctx context.Context, identifier, password string) (string, *domain.User, error)
	createUserFn func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, identifier, password)
}

func (s *stubAuthService) CreateUser(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createUserFn(ctx, input)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, identifier, password string) (string, *domain.User, error) {
			if identifier != "alice" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", identifier, password)
			}
			return "token123", &domain.User{ID: 1, Identifier: "alice", Role: domain.RoleAdmin}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/login", `{"username":"alice","password":"secret"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true || resp["token"] != "token123" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["identifier"] != "alice" || user["role"] != "admin" {
		t.Fatalf("unexpected user payload: %+v", user)
	}
}

// The login handle is accepted under identifier, username or email.
func TestAuthHandler_Login_HandleAliases(t *testing.T) {
	for _, body := range []string{
		`{"identifier":"alice","password":"secret"}`,
		`{"username":"alice","password":"secret"}`,
		`{"email":"alice","password":"secret"}`,
	} {
		var got string
		stub := &stubAuthService{
			loginFn: func(ctx context.Context, identifier, password string) (string, *domain.User, error) {
				got = identifier
				return "t", &domain.User{Identifier: identifier}, nil
			},
		}
		handler := NewAuthHandler(stub)

		c, rec := newTestContext(t, http.MethodPost, "/api/login", body)
		if err := handler.Login(c); err != nil {
			t.Fatalf("handler error for %s: %v", body, err)
		}
		if rec.Code != http.StatusOK || got != "alice" {
			t.Fatalf("body %s: code=%d identifier=%q", body, rec.Code, got)
		}
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, identifier, password string) (string, *domain.User, error) {
			t.Fatal("should not be called")
			return "", nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	for _, body := range []string{`{}`, `{"username":"alice"}`, `{"password":"secret"}`} {
		c, _ := newTestContext(t, http.MethodPost, "/api/login", body)
		err := handler.Login(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400 error, got %v", body, err)
		}
	}
}

func TestAuthHandler_Login_ServiceErrorsPassThrough(t *testing.T) {
	for _, want := range []error{domain.ErrInvalidCredentials, domain.ErrUserNotFound} {
		stub := &stubAuthService{
			loginFn: func(ctx context.Context, identifier, password string) (string, *domain.User, error) {
				return "", nil, want
			},
		}
		handler := NewAuthHandler(stub)

		c, _ := newTestContext(t, http.MethodPost, "/api/login", `{"username":"alice","password":"bad"}`)
		if err := handler.Login(c); !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
	}
}

func TestAuthHandler_AddUser_Success(t *testing.T) {
	stub := &stubAuthService{
		createUserFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			if input.Identifier != "bob" || input.Role != "staff" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.User{ID: 2, Identifier: "bob", Role: "staff"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/add-user", `{"username":"bob","password":"pw","role":"staff"}`)
	if err := handler.AddUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_AddUser_EmailAsIdentifier(t *testing.T) {
	stub := &stubAuthService{
		createUserFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			if input.Identifier != "bob@example.com" {
				t.Fatalf("unexpected identifier: %q", input.Identifier)
			}
			return &domain.User{ID: 2, Identifier: input.Identifier, Role: "staff"}, nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/add-user", `{"email":"bob@example.com","password":"pw"}`)
	if err := handler.AddUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestAuthHandler_AddUser_Validation(t *testing.T) {
	stub := &stubAuthService{
		createUserFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	cases := map[string]string{
		"missing password":   `{"username":"bob"}`,
		"bad role":           `{"username":"bob","password":"pw","role":"owner"}`,
		"missing identifier": `{"password":"pw"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newTestContext(t, http.MethodPost, "/api/add-user", body)
			err := handler.AddUser(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 error, got %v", err)
			}
		})
	}
}

func TestAuthHandler_AddUser_DuplicatePassesThrough(t *testing.T) {
	stub := &stubAuthService{
		createUserFn: func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
			return nil, &domain.DuplicateError{Column: "username"}
		},
	}
	handler := NewAuthHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/add-user", `{"username":"bob","password":"pw"}`)
	err := handler.AddUser(c)
	var dup *domain.DuplicateError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateError, got %v", err)
	}
}
