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

	"github.com/lumopress/user-directory/internal/core/domain"
	"github.com/lumopress/user-directory/internal/core/ports"
)

type stubDirectoryService struct {
	setRoleFn      func(ctx context.Context, actor domain.AuthContext, in ports.SetUserRoleInput) (*ports.CommandResult, error)
	toggleStatusFn func(ctx context.Context, actor domain.AuthContext, in ports.ToggleUserStatusInput) (*ports.CommandResult, error)
	deleteFn       func(ctx context.Context, actor domain.AuthContext, uid string) (*ports.CommandResult, error)
	getAllFn       func(ctx context.Context, actor domain.AuthContext) ([]ports.UserRecord, error)
}

func (s *stubDirectoryService) SetUserRole(ctx context.Context, actor domain.AuthContext, in ports.SetUserRoleInput) (*ports.CommandResult, error) {
	return s.setRoleFn(ctx, actor, in)
}

func (s *stubDirectoryService) ToggleUserStatus(ctx context.Context, actor domain.AuthContext, in ports.ToggleUserStatusInput) (*ports.CommandResult, error) {
	return s.toggleStatusFn(ctx, actor, in)
}

func (s *stubDirectoryService) DeleteUser(ctx context.Context, actor domain.AuthContext, uid string) (*ports.CommandResult, error) {
	return s.deleteFn(ctx, actor, uid)
}

func (s *stubDirectoryService) GetAllUsers(ctx context.Context, actor domain.AuthContext) ([]ports.UserRecord, error) {
	return s.getAllFn(ctx, actor)
}

// adminContext builds an echo context carrying the claims the Auth
// middleware would have injected for an authenticated admin.
func adminContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("uid", "admin_1")
	c.Set("role", domain.RoleAdmin)
	return c, rec
}

func TestAdminHandler_SetRole_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubDirectoryService{
		setRoleFn: func(_ context.Context, actor domain.AuthContext, in ports.SetUserRoleInput) (*ports.CommandResult, error) {
			if actor.SubjectID != "admin_1" || actor.Role != domain.RoleAdmin {
				t.Fatalf("unexpected actor: %+v", actor)
			}
			if in.UID != "user_9" || in.NewRole != domain.RoleEditor {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.CommandResult{Message: "Successfully updated role to editor for user user_9."}, nil
		},
	}
	handler := NewAdminHandler(stub)

	c, rec := adminContext(e, http.MethodPut, "/v1/admin/users/user_9/role", `{"new_role":"editor"}`)
	c.SetParamNames("uid")
	c.SetParamValues("user_9")

	if err := handler.SetRole(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Successfully updated role to editor for user user_9." {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestAdminHandler_SetRole_PermissionDenied(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubDirectoryService{
		setRoleFn: func(_ context.Context, _ domain.AuthContext, _ ports.SetUserRoleInput) (*ports.CommandResult, error) {
			return nil, domain.ErrPermissionDenied
		},
	}
	handler := NewAdminHandler(stub)

	c, _ := adminContext(e, http.MethodPut, "/v1/admin/users/user_9/role", `{"new_role":"editor"}`)
	c.SetParamNames("uid")
	c.SetParamValues("user_9")

	err := handler.SetRole(c)
	if !errors.Is(err, domain.ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestAdminHandler_SetRole_InvalidPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubDirectoryService{
		setRoleFn: func(_ context.Context, _ domain.AuthContext, _ ports.SetUserRoleInput) (*ports.CommandResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewAdminHandler(stub)

	c, _ := adminContext(e, http.MethodPut, "/v1/admin/users/user_9/role", "not-json")
	c.SetParamNames("uid")
	c.SetParamValues("user_9")

	err := handler.SetRole(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAdminHandler_SetRole_MissingClaims(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubDirectoryService{
		setRoleFn: func(_ context.Context, _ domain.AuthContext, _ ports.SetUserRoleInput) (*ports.CommandResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewAdminHandler(stub)

	req := httptest.NewRequest(http.MethodPut, "/v1/admin/users/user_9/role", strings.NewReader(`{"new_role":"editor"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.SetRole(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestAdminHandler_ToggleStatus_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubDirectoryService{
		toggleStatusFn: func(_ context.Context, _ domain.AuthContext, in ports.ToggleUserStatusInput) (*ports.CommandResult, error) {
			if in.UID != "user_9" || !in.Disabled {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.CommandResult{Message: "Successfully disabled user user_9."}, nil
		},
	}
	handler := NewAdminHandler(stub)

	c, rec := adminContext(e, http.MethodPut, "/v1/admin/users/user_9/status", `{"disabled":true}`)
	c.SetParamNames("uid")
	c.SetParamValues("user_9")

	if err := handler.ToggleStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Successfully disabled user user_9.") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAdminHandler_ToggleStatus_MissingFlag(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubDirectoryService{
		toggleStatusFn: func(_ context.Context, _ domain.AuthContext, _ ports.ToggleUserStatusInput) (*ports.CommandResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewAdminHandler(stub)

	c, _ := adminContext(e, http.MethodPut, "/v1/admin/users/user_9/status", `{}`)
	c.SetParamNames("uid")
	c.SetParamValues("user_9")

	err := handler.ToggleStatus(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestAdminHandler_Delete_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubDirectoryService{
		deleteFn: func(_ context.Context, _ domain.AuthContext, uid string) (*ports.CommandResult, error) {
			if uid != "user_9" {
				t.Fatalf("unexpected uid: %s", uid)
			}
			return &ports.CommandResult{Message: "Successfully deleted user user_9."}, nil
		},
	}
	handler := NewAdminHandler(stub)

	c, rec := adminContext(e, http.MethodDelete, "/v1/admin/users/user_9", "")
	c.SetParamNames("uid")
	c.SetParamValues("user_9")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAdminHandler_Delete_NotFound(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	stub := &stubDirectoryService{
		deleteFn: func(_ context.Context, _ domain.AuthContext, _ string) (*ports.CommandResult, error) {
			return nil, domain.ErrAccountNotFound
		},
	}
	handler := NewAdminHandler(stub)

	c, _ := adminContext(e, http.MethodDelete, "/v1/admin/users/ghost", "")
	c.SetParamNames("uid")
	c.SetParamValues("ghost")

	if err := handler.Delete(c); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAdminHandler_List_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()

	created := "2024-05-01T10:00:00Z"
	stub := &stubDirectoryService{
		getAllFn: func(_ context.Context, _ domain.AuthContext) ([]ports.UserRecord, error) {
			return []ports.UserRecord{
				{UID: "user_2", DisplayName: "Bea", Email: "bea@example.com", Role: domain.RoleEditor, CreatedAt: &created},
				{UID: "user_1", DisplayName: "Ada", Email: "ada@example.com", Role: domain.RoleViewer, Disabled: true},
			}, nil
		},
	}
	handler := NewAdminHandler(stub)

	c, rec := adminContext(e, http.MethodGet, "/v1/admin/users", "")

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Users []map[string]any `json:"users"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp.Users))
	}
	if resp.Users[0]["uid"] != "user_2" || resp.Users[0]["created_at"] != created {
		t.Fatalf("unexpected first user: %+v", resp.Users[0])
	}
	if resp.Users[1]["disabled"] != true {
		t.Fatalf("expected second user disabled: %+v", resp.Users[1])
	}
	if _, ok := resp.Users[1]["created_at"]; ok && resp.Users[1]["created_at"] != nil {
		t.Fatalf("expected nil created_at: %+v", resp.Users[1])
	}
}
