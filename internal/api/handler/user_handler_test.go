package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/wellnesshub/employee-api/internal/core/domain"
	"github.com/wellnesshub/employee-api/internal/core/ports"
)

type stubUserService struct {
	getProfileFn      func(ctx context.Context, id int64) (*domain.User, error)
	listUsersFn       func(ctx context.Context) ([]domain.User, error)
	deleteUserFn      func(ctx context.Context, id int64) error
	updateProfileFn   func(ctx context.Context, input ports.UpdateProfileInput) error
	updateUserAdminFn func(ctx context.Context, input ports.UpdateUserAdminInput) error
}

func (s *stubUserService) GetProfile(ctx context.Context, id int64) (*domain.User, error) {
	return s.getProfileFn(ctx, id)
}

func (s *stubUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.listUsersFn(ctx)
}

func (s *stubUserService) DeleteUser(ctx context.Context, id int64) error {
	return s.deleteUserFn(ctx, id)
}

func (s *stubUserService) UpdateProfile(ctx context.Context, input ports.UpdateProfileInput) error {
	return s.updateProfileFn(ctx, input)
}

func (s *stubUserService) UpdateUserAdmin(ctx context.Context, input ports.UpdateUserAdminInput) error {
	return s.updateUserAdminFn(ctx, input)
}

func TestUserHandler_ViewProfile(t *testing.T) {
	stub := &stubUserService{
		getProfileFn: func(ctx context.Context, id int64) (*domain.User, error) {
			if id != 42 {
				t.Fatalf("unexpected id: %d", id)
			}
			return &domain.User{ID: 42, Email: "alice@example.com", Role: domain.RoleEmployee, PasswordHash: "hash"}, nil
		},
	}
	h := NewUserHandler(stub, nil)

	c, rec := newTestContext(t, http.MethodGet, "/viewProfile/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.ViewProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "alice@example.com" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, leaked := resp["password_hash"]; leaked {
		t.Fatalf("password hash must not be serialized")
	}
}

func TestUserHandler_ViewProfile_BadID(t *testing.T) {
	h := NewUserHandler(&stubUserService{}, nil)

	c, _ := newTestContext(t, http.MethodGet, "/viewProfile/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.ViewProfile(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_DeleteProfile(t *testing.T) {
	stub := &stubUserService{
		deleteUserFn: func(ctx context.Context, id int64) error { return nil },
	}
	h := NewUserHandler(stub, nil)

	c, rec := newTestContext(t, http.MethodDelete, "/deleteProfile/7", "")
	c.SetParamNames("id")
	c.SetParamValues("7")

	if err := h.DeleteProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Body.String() != "Profile deleted successfully!" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestUserHandler_DeleteUserAdmin_NotFound(t *testing.T) {
	stub := &stubUserService{
		deleteUserFn: func(ctx context.Context, id int64) error { return domain.ErrUserNotFound },
	}
	h := NewUserHandler(stub, nil)

	c, _ := newTestContext(t, http.MethodDelete, "/deleteUserAdmin/999", "")
	c.SetParamNames("id")
	c.SetParamValues("999")

	if err := h.DeleteUserAdmin(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserHandler_UpdateProfile(t *testing.T) {
	stub := &stubUserService{
		updateProfileFn: func(ctx context.Context, input ports.UpdateProfileInput) error {
			if input.Email != "alice@example.com" || input.Department != "Sales" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return nil
		},
	}
	h := NewUserHandler(stub, nil)

	c, rec := newTestContext(t, http.MethodPut, "/updateProfile",
		`{"email":"alice@example.com","name":"Alice","department":"Sales","password":"newpass"}`)
	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Body.String() != "User updated successfully!" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestUserHandler_UpdateUserAdmin(t *testing.T) {
	stub := &stubUserService{
		updateUserAdminFn: func(ctx context.Context, input ports.UpdateUserAdminInput) error {
			if input.Role != domain.RoleManager || input.Status != domain.StatusInactive {
				t.Fatalf("unexpected input: %+v", input)
			}
			return nil
		},
	}
	h := NewUserHandler(stub, nil)

	c, rec := newTestContext(t, http.MethodPut, "/updateUserAdmin",
		`{"email":"bob@example.com","department":"Ops","role":"MANAGER","status":"INACTIVE"}`)
	if err := h.UpdateUserAdmin(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Body.String() != "User updated successfully!" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}

func TestUserHandler_UpdateUserAdmin_BadRole(t *testing.T) {
	h := NewUserHandler(&stubUserService{}, nil)

	c, _ := newTestContext(t, http.MethodPut, "/updateUserAdmin",
		`{"email":"bob@example.com","department":"Ops","role":"SUPERUSER","status":"ACTIVE"}`)
	err := h.UpdateUserAdmin(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_ViewAllUsers(t *testing.T) {
	stub := &stubUserService{
		listUsersFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{
				{ID: 1, Email: "a@example.com", Role: domain.RoleEmployee},
				{ID: 2, Email: "b@example.com", Role: domain.RoleAdmin},
			}, nil
		},
	}
	h := NewUserHandler(stub, nil)

	c, rec := newTestContext(t, http.MethodGet, "/viewAllUsers", "")
	if err := h.ViewAllUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var users []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &users); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestUserHandler_ViewAllUsers_EmptyIsArray(t *testing.T) {
	stub := &stubUserService{
		listUsersFn: func(ctx context.Context) ([]domain.User, error) { return nil, nil },
	}
	h := NewUserHandler(stub, nil)

	c, rec := newTestContext(t, http.MethodGet, "/viewAllUsers", "")
	if err := h.ViewAllUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := rec.Body.String(); body != "[]\n" && body != "[]" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}
